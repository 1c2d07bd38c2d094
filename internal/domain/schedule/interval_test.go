package schedule

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(w Window, step, duration int) []string {
	var out []string
	for t := range EnumerateSlots(w, step, duration) {
		out = append(out, t.String())
	}
	return out
}

func TestEnumerateSlots_DurationFit(t *testing.T) {
	w := Window{Start: MustParse("09:00"), End: MustParse("18:00")}

	slots := collect(w, 30, 45)

	assert.Len(t, slots, 17)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "17:30")

	for _, s := range slots {
		assert.LessOrEqual(t, MustParse(s).Add(45), w.End, "slot %s overflows window", s)
	}
}

func TestEnumerateSlots_LastSlotEndsExactlyAtClose(t *testing.T) {
	w := Window{Start: MustParse("09:15"), End: MustParse("18:00")}

	slots := collect(w, 30, 45)

	assert.Equal(t, "17:15", slots[len(slots)-1])
	assert.NotContains(t, slots, "17:45")
}

func TestEnumerateSlots_Empty(t *testing.T) {
	short := Window{Start: MustParse("09:00"), End: MustParse("09:30")}

	assert.Empty(t, collect(short, 30, 45))
	assert.Empty(t, collect(short, 0, 15))
	assert.Empty(t, collect(short, 15, 0))
}

func TestEnumerateSlots_DurationLongerThanWindow(t *testing.T) {
	w := Window{Start: MustParse("09:00"), End: MustParse("18:00")}

	assert.Empty(t, collect(w, 30, 9*60+1))
	assert.Empty(t, collect(w, 30, MaxDurationMinutes))
	assert.Empty(t, collect(w, 30, math.MaxInt))
	assert.Equal(t, []string{"09:00"}, collect(w, math.MaxInt, 30))
}

func TestEnumerateSlots_Restartable(t *testing.T) {
	seq := EnumerateSlots(Window{Start: MustParse("10:00"), End: MustParse("12:00")}, 30, 30)

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, first, second)
	assert.Len(t, first, 4)

	// interrompe cedo sem afetar a próxima iteração
	for range seq {
		break
	}
	assert.Equal(t, first, slices.Collect(seq))
}

func TestOverlaps(t *testing.T) {
	booking := MustParse("10:00")

	tests := []struct {
		name  string
		start string
		dur   int
		want  bool
	}{
		{name: "ends when booking starts", start: "09:30", dur: 30, want: false},
		{name: "runs into booking", start: "09:45", dur: 30, want: true},
		{name: "same start", start: "10:00", dur: 30, want: true},
		{name: "inside booking", start: "10:15", dur: 15, want: true},
		{name: "starts when booking ends", start: "10:45", dur: 30, want: false},
		{name: "wraps booking", start: "09:00", dur: 180, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(MustParse(tt.start), tt.dur, booking, 45))
			assert.Equal(t, tt.want, Overlaps(booking, 45, MustParse(tt.start), tt.dur))
		})
	}
}

func TestOverlaps_HugeDurations(t *testing.T) {
	assert.True(t, Overlaps(MustParse("09:00"), math.MaxInt, MustParse("17:00"), 30))
	assert.True(t, Overlaps(MustParse("17:00"), 30, MustParse("09:00"), math.MaxInt))
	assert.False(t, Overlaps(MustParse("08:00"), 30, MustParse("09:00"), math.MaxInt))
}

func TestWindowCovers(t *testing.T) {
	w := Window{Start: MustParse("09:00"), End: MustParse("12:00")}

	assert.False(t, w.Covers(MustParse("09:00"), math.MaxInt))

	assert.True(t, w.Covers(MustParse("09:00"), 60))
	assert.True(t, w.Covers(MustParse("11:00"), 60))
	assert.False(t, w.Covers(MustParse("11:30"), 60))
	assert.False(t, w.Covers(MustParse("08:30"), 30))
}

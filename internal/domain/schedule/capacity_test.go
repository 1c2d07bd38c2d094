package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCapacityMode(t *testing.T) {
	m, ok := ParseCapacityMode(" Identity ")
	assert.True(t, ok)
	assert.Equal(t, CapacityIdentity, m)

	m, ok = ParseCapacityMode("headcount")
	assert.True(t, ok)
	assert.Equal(t, CapacityHeadcount, m)

	m, ok = ParseCapacityMode("bipartite")
	assert.False(t, ok)
	assert.Equal(t, CapacityHeadcount, m)
}

func TestResolver_SpecificBarberNeedsCoveringWindow(t *testing.T) {
	day := time.Tuesday
	barbers := []Barber{barberOn(1, day, window("09:00", "12:00"))}

	r := NewResolver(CapacityHeadcount, day, barbers, nil, ptr(1))

	assert.True(t, r.Available(MustParse("11:00"), 60))
	assert.False(t, r.Available(MustParse("11:30"), 60))
	assert.False(t, r.Available(MustParse("13:00"), 30))
}

func TestResolver_BarberlessBookingDoesNotBlockSpecificBarber(t *testing.T) {
	day := time.Tuesday
	barbers := []Barber{barberOn(1, day, window("09:00", "12:00"))}
	bookings := []BookedInterval{booking(nil, "10:00", 30)}

	r := NewResolver(CapacityHeadcount, day, barbers, bookings, ptr(1))

	assert.True(t, r.Available(MustParse("10:00"), 30))
}

func TestResolver_HeadcountVersusIdentity(t *testing.T) {
	day := time.Tuesday
	// só o barbeiro 1 trabalha de manhã
	barbers := []Barber{
		barberOn(1, day, window("09:00", "12:00")),
		barberOn(2, day, window("14:00", "18:00")),
	}
	bookings := []BookedInterval{booking(nil, "10:00", 30)}

	headcount := NewResolver(CapacityHeadcount, day, barbers, bookings, nil)
	identity := NewResolver(CapacityIdentity, day, barbers, bookings, nil)

	assert.True(t, headcount.Available(MustParse("10:00"), 30))
	assert.False(t, identity.Available(MustParse("10:00"), 30))

	assert.True(t, identity.Available(MustParse("09:00"), 30))
	assert.True(t, identity.Available(MustParse("15:00"), 30))
}

func TestResolver_IdentityCountsOwnBookings(t *testing.T) {
	day := time.Tuesday
	barbers := []Barber{
		barberOn(1, day, window("09:00", "12:00")),
		barberOn(2, day, window("09:00", "12:00")),
	}

	oneBusy := NewResolver(CapacityIdentity, day, barbers, []BookedInterval{
		booking(ptr(1), "10:00", 60),
	}, nil)
	assert.True(t, oneBusy.Available(MustParse("10:00"), 30))

	bothBusy := NewResolver(CapacityIdentity, day, barbers, []BookedInterval{
		booking(ptr(1), "10:00", 60),
		booking(nil, "10:15", 30),
	}, nil)
	assert.False(t, bothBusy.Available(MustParse("10:00"), 30))
	assert.True(t, bothBusy.Available(MustParse("11:00"), 30))
}

func TestResolver_NoBarbersIsSingleChair(t *testing.T) {
	r := NewResolver(CapacityIdentity, time.Tuesday, nil, []BookedInterval{
		booking(nil, "10:00", 30),
	}, nil)

	assert.False(t, r.Available(MustParse("10:00"), 30))
	assert.True(t, r.Available(MustParse("10:30"), 30))
}

package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, "America/Sao_Paulo", Location("").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
	assert.Equal(t, "America/Sao_Paulo", Location("Mars/Olympus").String())
}

func TestSetDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(DefaultTimezone) })

	SetDefault("America/Manaus")
	assert.Equal(t, "America/Manaus", Location("").String())

	SetDefault("not-a-zone")
	assert.Equal(t, "America/Manaus", Default())
}

func TestParseDateAndStartOfDay(t *testing.T) {
	loc := Location("America/Sao_Paulo")

	d, err := ParseDate("2026-03-10", loc)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, loc, d.Location())

	noon := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, d, StartOfDay(noon.In(loc), loc))

	_, err = ParseDate("10/03/2026", loc)
	assert.Error(t, err)
}

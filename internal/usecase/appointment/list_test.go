package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frenetico9/Corte-Digital/internal/domain/schedule"
)

func TestListAppointments(t *testing.T) {
	repo := seededRepo()
	f := newFixture(t, repo, dayBefore)
	ctx := context.Background()

	_, err := f.create.Execute(ctx, createInput(uptr(1), "10:00", 10, 11))
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, createInput(uptr(2), "14:00", 10))
	require.NoError(t, err)

	byDate := NewListAppointmentsByDate(repo)

	all, err := byDate.Execute(ctx, shopID, nil, testDay)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyLeo, err := byDate.Execute(ctx, shopID, uptr(2), testDay)
	require.NoError(t, err)
	require.Len(t, onlyLeo, 1)
	assert.Equal(t, []string{"Corte"}, onlyLeo[0].ServiceNames)
	assert.Equal(t, "Ana", onlyLeo[0].ClientName)

	nextDay, err := byDate.Execute(ctx, shopID, nil, testDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, nextDay)

	byMonth := NewListAppointmentsByMonth(repo)

	march, err := byMonth.Execute(ctx, shopID, nil, 2026, 3)
	require.NoError(t, err)
	assert.Len(t, march, 2)

	april, err := byMonth.Execute(ctx, shopID, nil, 2026, 4)
	require.NoError(t, err)
	assert.Empty(t, april)

	_, err = byMonth.Execute(ctx, shopID, nil, 2026, 13)
	assert.ErrorAs(t, err, new(*schedule.InvalidArgumentError))
}

package appointment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
	"github.com/frenetico9/Corte-Digital/internal/domain/schedule"
	"github.com/frenetico9/Corte-Digital/internal/models"
)

// dayData é o retrato da agenda de um dia, direto do banco.
type dayData struct {
	hours        []models.WorkingHours
	barbers      []models.Barber
	appointments []models.Appointment
}

// loadDay busca expediente, barbeiros e agendamentos ativos do dia. Fora de
// transação as três leituras correm em paralelo; dentro de uma transação
// a conexão é única e as leituras são sequenciais.
func loadDay(
	ctx context.Context,
	repo domain.Repository,
	shopID uint,
	day time.Time,
	concurrent bool,
) (dayData, error) {

	var d dayData
	end := day.AddDate(0, 0, 1)

	loadHours := func(ctx context.Context) (err error) {
		d.hours, err = repo.GetWorkingHours(ctx, shopID)
		if err != nil {
			return fmt.Errorf("load working hours: %w", err)
		}
		return nil
	}
	loadBarbers := func(ctx context.Context) (err error) {
		d.barbers, err = repo.ListBarbers(ctx, shopID)
		if err != nil {
			return fmt.Errorf("load barbers: %w", err)
		}
		return nil
	}
	loadAppointments := func(ctx context.Context) (err error) {
		d.appointments, err = repo.ListActiveAppointments(ctx, shopID, day, end)
		if err != nil {
			return fmt.Errorf("load appointments: %w", err)
		}
		return nil
	}

	if !concurrent {
		for _, load := range []func(context.Context) error{loadHours, loadBarbers, loadAppointments} {
			if err := load(ctx); err != nil {
				return dayData{}, err
			}
		}
		return d, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loadHours(gctx) })
	g.Go(func() error { return loadBarbers(gctx) })
	g.Go(func() error { return loadAppointments(gctx) })

	if err := g.Wait(); err != nil {
		return dayData{}, err
	}
	return d, nil
}

// query monta a consulta pura do motor. Janelas malformadas são registradas
// e descartadas; o resto da agenda continua valendo.
func (s Settings) query(
	log *zap.Logger,
	shop *models.Barbershop,
	day time.Time,
	d dayData,
) schedule.Query {

	hours, errs := domain.WorkingHoursWindows(d.hours)
	logConfigErrors(log, shop.ID, "working_hours", errs)

	barbers, errs := domain.Barbers(d.barbers)
	logConfigErrors(log, shop.ID, "barber_availability", errs)

	return schedule.Query{
		Date:         day,
		MinAdvance:   time.Duration(shop.MinAdvanceMinutes) * time.Minute,
		StepMinutes:  s.StepMinutes,
		Mode:         s.Mode,
		WorkingHours: hours,
		Barbers:      barbers,
		Bookings:     domain.BookedIntervals(d.appointments, day.Location()),
	}
}

func logConfigErrors(log *zap.Logger, shopID uint, source string, errs []error) {
	for _, err := range errs {
		log.Warn("skipping malformed schedule window",
			zap.Uint("barbershop_id", shopID),
			zap.String("source", source),
			zap.Error(err),
		)
	}
}

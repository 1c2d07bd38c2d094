package appointment

import (
	"time"

	"github.com/frenetico9/Corte-Digital/internal/domain/schedule"
	"github.com/frenetico9/Corte-Digital/internal/models"
)

// ======================================================
// Linhas do banco -> tipos da agenda
// ======================================================
// Janelas inválidas não derrubam a consulta: voltam em errs para serem
// registradas e o restante segue valendo.

func WorkingHoursWindows(rows []models.WorkingHours) (out []schedule.WorkingHoursWindow, errs []error) {
	out = make([]schedule.WorkingHoursWindow, 0, len(rows))
	for _, r := range rows {
		wh, err := schedule.NewWorkingHoursWindow(r.Weekday, r.IsOpen, r.StartTime, r.EndTime)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, wh)
	}
	return out, errs
}

func Barbers(rows []models.Barber) (out []schedule.Barber, errs []error) {
	out = make([]schedule.Barber, 0, len(rows))
	for i := range rows {
		r := &rows[i]

		b := schedule.Barber{
			ID:         r.ID,
			ServiceIDs: r.ServiceIDs(),
		}
		for _, av := range r.Availability {
			w, err := schedule.NewBarberAvailability(av.Weekday, av.StartTime, av.EndTime)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			b.Availability = append(b.Availability, w)
		}
		out = append(out, b)
	}
	return out, errs
}

// BookedIntervals converte agendamentos para o relógio local da barbearia.
func BookedIntervals(aps []models.Appointment, loc *time.Location) []schedule.BookedInterval {
	out := make([]schedule.BookedInterval, 0, len(aps))
	for _, ap := range aps {
		dur := ap.DurationMin
		if dur <= 0 {
			dur = int(ap.EndTime.Sub(ap.StartTime) / time.Minute)
		}
		out = append(out, schedule.BookedInterval{
			BarberID:        ap.BarberID,
			Start:           schedule.FromClock(ap.StartTime.In(loc)),
			DurationMinutes: dur,
		})
	}
	return out
}

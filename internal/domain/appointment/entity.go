package appointment

import (
	"time"

	"github.com/frenetico9/Corte-Digital/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// LocalDate é o dia do agendamento no fuso da barbearia, no formato do
// cache de horários.
func LocalDate(ap *models.Appointment, loc *time.Location) string {
	return ap.StartTime.In(loc).Format(DateLayout)
}

package appointment

import (
	"context"
	"time"

	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
	"github.com/frenetico9/Corte-Digital/internal/dto"
	"github.com/frenetico9/Corte-Digital/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute lista os agendamentos do dia (qualquer status). barberID nil
// traz a barbearia inteira.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID *uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	start := timezone.StartOfDay(date, timezone.Location(shop.Timezone))
	end := start.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, barbershopID, barberID, start, end)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}

package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/frenetico9/Corte-Digital/internal/audit"
	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
	"github.com/frenetico9/Corte-Digital/internal/models"
	"github.com/frenetico9/Corte-Digital/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	cache domain.SlotCache
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	cache domain.SlotCache,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
		log:   log,
		now:   time.Now,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	barbershopID uint,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, barbershopID, appointmentID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)
	if err := domain.Complete(ap, uc.now().In(loc)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// concluído não ocupa mais a agenda
	invalidateDay(ctx, uc.cache, uc.log, shop.ID, domain.LocalDate(ap, loc))

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "appointment_completed",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}

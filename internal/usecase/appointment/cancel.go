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

type CancelAppointment struct {
	repo  domain.Repository
	cache domain.SlotCache
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	cache domain.SlotCache,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
		log:   log,
		now:   time.Now,
	}
}

func (uc *CancelAppointment) Execute(
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
	if err := domain.Cancel(ap, uc.now().In(loc)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// o horário volta a ficar livre
	invalidateDay(ctx, uc.cache, uc.log, shop.ID, domain.LocalDate(ap, loc))

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}

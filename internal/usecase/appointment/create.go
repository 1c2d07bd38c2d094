package appointment

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/frenetico9/Corte-Digital/internal/audit"
	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
	"github.com/frenetico9/Corte-Digital/internal/domain/schedule"
	"github.com/frenetico9/Corte-Digital/internal/httperr"
	"github.com/frenetico9/Corte-Digital/internal/metrics"
	"github.com/frenetico9/Corte-Digital/internal/models"
	"github.com/frenetico9/Corte-Digital/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint
	// nil = qualquer barbeiro
	BarberID *uint

	ServiceIDs []uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	Date  string
	Time  string
	Notes string

	// ActorID é o usuário logado; nil no agendamento público.
	ActorID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	cache    domain.SlotCache
	audit    *audit.Dispatcher
	metrics  *metrics.Metrics
	log      *zap.Logger
	settings Settings
	now      func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	cache domain.SlotCache,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	log *zap.Logger,
	settings Settings,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		cache:    cache,
		audit:    audit,
		metrics:  m,
		log:      log,
		settings: settings,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.execute(ctx, in)

	var business httperr.BusinessError
	switch {
	case err == nil:
		uc.metrics.Booking("created")
	case errors.As(err, &business):
		uc.metrics.Booking(business.Code)
	default:
		uc.metrics.Booking("error")
	}

	return ap, err
}

func (uc *CreateAppointment) execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.ClientName == "" || in.ClientPhone == "" {
		return nil, &schedule.InvalidArgumentError{Field: "client", Reason: "name and phone are required"}
	}

	// --------------------------------------------------
	// 1️⃣ Barbearia
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no fuso da barbearia
	// --------------------------------------------------
	loc := timezone.Location(shop.Timezone)

	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	day := timezone.StartOfDay(start, loc)

	// --------------------------------------------------
	// 3️⃣ Serviços
	// --------------------------------------------------
	services, err := resolveServices(ctx, uc.repo, shop.ID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	duration, price := serviceTotals(services)
	if duration > schedule.MaxDurationMinutes {
		return nil, &schedule.InvalidArgumentError{Field: "duration_minutes", Reason: "must not exceed one day"}
	}

	// --------------------------------------------------
	// 4️⃣ Barbeiro (quando escolhido)
	// --------------------------------------------------
	if in.BarberID != nil {
		barber, err := uc.repo.GetBarber(ctx, *in.BarberID)
		if err != nil {
			return nil, err
		}
		if barber.BarbershopID != shop.ID {
			return nil, &schedule.NotFoundError{Entity: "barber", ID: *in.BarberID}
		}

		offer := schedule.Barber{ID: barber.ID, ServiceIDs: barber.ServiceIDs()}
		for _, s := range services {
			if !offer.Offers(s.ID) {
				return nil, httperr.ErrBusiness("barber_not_assigned")
			}
		}
	}

	// --------------------------------------------------
	// 5️⃣ Revalida o horário e grava, com a agenda travada
	// --------------------------------------------------
	var ap *models.Appointment

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.LockBarbershop(ctx, shop.ID); err != nil {
			return err
		}

		d, err := loadDay(ctx, tx, shop.ID, day, false)
		if err != nil {
			return err
		}

		q := uc.settings.query(uc.log, shop, day, d)
		q.DurationMinutes = duration
		q.BarberID = in.BarberID
		q.Now = uc.now()

		if !slices.Contains(schedule.AvailableSlots(q), start.Format(schedule.LayoutHM)) {
			return httperr.ErrBusiness("slot_unavailable")
		}

		client, err := tx.GetOrCreateClient(ctx, shop.ID, in.ClientName, in.ClientPhone, in.ClientEmail)
		if err != nil {
			return err
		}

		ap = &models.Appointment{
			BarbershopID: shop.ID,
			BarberID:     in.BarberID,
			ClientID:     client.ID,
			Client:       *client,
			Services:     services,
			StartTime:    start,
			EndTime:      start.Add(time.Duration(duration) * time.Minute),
			DurationMin:  duration,
			TotalPrice:   price,
			Status:       string(domain.StatusScheduled),
			Notes:        in.Notes,
		}

		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Cache + auditoria
	// --------------------------------------------------
	invalidateDay(ctx, uc.cache, uc.log, shop.ID, day.Format(domain.DateLayout))

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		UserID:       in.ActorID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
		Metadata: map[string]any{
			"date":      in.Date,
			"time":      start.Format(schedule.LayoutHM),
			"barber_id": in.BarberID,
			"duration":  duration,
		},
	})

	return ap, nil
}

func invalidateDay(ctx context.Context, cache domain.SlotCache, log *zap.Logger, shopID uint, date string) {
	if err := cache.InvalidateDay(ctx, shopID, date); err != nil {
		log.Warn("slot cache invalidation failed",
			zap.Uint("barbershop_id", shopID),
			zap.String("date", date),
			zap.Error(err),
		)
	}
}

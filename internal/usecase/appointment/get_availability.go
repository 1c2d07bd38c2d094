package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
	"github.com/frenetico9/Corte-Digital/internal/domain/schedule"
	"github.com/frenetico9/Corte-Digital/internal/metrics"
	"github.com/frenetico9/Corte-Digital/internal/models"
	"github.com/frenetico9/Corte-Digital/internal/timezone"
)

type GetAvailability struct {
	repo     domain.Repository
	cache    domain.SlotCache
	metrics  *metrics.Metrics
	log      *zap.Logger
	settings Settings
	now      func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	cache domain.SlotCache,
	m *metrics.Metrics,
	log *zap.Logger,
	settings Settings,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		cache:    cache,
		metrics:  m,
		log:      log,
		settings: settings,
		now:      time.Now,
	}
}

// Execute devolve os horários de início livres do dia, em ordem crescente
// ("HH:MM"). Nunca devolve nil.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	started := time.Now()

	// --------------------------------------------------
	// 1️⃣ Validação (antes de qualquer I/O)
	// --------------------------------------------------
	if in.DurationMinutes <= 0 {
		return nil, &schedule.InvalidArgumentError{Field: "duration_minutes", Reason: "must be positive"}
	}
	if in.DurationMinutes > schedule.MaxDurationMinutes {
		return nil, &schedule.InvalidArgumentError{Field: "duration_minutes", Reason: "must not exceed one day"}
	}
	if in.Date.IsZero() {
		return nil, &schedule.InvalidArgumentError{Field: "date", Reason: "is required"}
	}

	// --------------------------------------------------
	// 2️⃣ Barbearia e fuso
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)
	day := timezone.StartOfDay(in.Date, loc)
	in.Date = day

	// --------------------------------------------------
	// 3️⃣ Barbeiro pedido
	// --------------------------------------------------
	if in.BarberID != nil {
		barber, err := uc.repo.GetBarber(ctx, *in.BarberID)
		if err != nil {
			return nil, err
		}
		if barber.BarbershopID != shop.ID {
			return []string{}, nil
		}
	}

	// --------------------------------------------------
	// 4️⃣ Candidatos (cache ou cálculo)
	// --------------------------------------------------
	key := domain.NewSlotKey(in)

	candidates, ok := uc.cached(ctx, key)
	if !ok {
		candidates, err = uc.candidates(ctx, shop, day, in)
		if err != nil {
			return nil, err
		}
		uc.store(ctx, key, candidates)
	}

	// --------------------------------------------------
	// 5️⃣ Corte de "agora" (sempre na leitura)
	// --------------------------------------------------
	cutoff := uc.now().Add(time.Duration(shop.MinAdvanceMinutes) * time.Minute)
	slots := schedule.DropPast(candidates, day, cutoff)

	uc.metrics.ObserveAvailability(time.Since(started), len(slots))

	return slots, nil
}

func (uc *GetAvailability) candidates(
	ctx context.Context,
	shop *models.Barbershop,
	day time.Time,
	in domain.AvailabilityInput,
) ([]string, error) {

	if uc.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.settings.Timeout)
		defer cancel()
	}

	d, err := loadDay(ctx, uc.repo, shop.ID, day, true)
	if err != nil {
		return nil, err
	}

	q := uc.settings.query(uc.log, shop, day, d)
	q.DurationMinutes = in.DurationMinutes
	q.BarberID = in.BarberID

	return schedule.Candidates(q), nil
}

func (uc *GetAvailability) cached(ctx context.Context, key domain.SlotKey) ([]string, bool) {
	slots, ok, err := uc.cache.Get(ctx, key)
	switch {
	case err != nil:
		uc.metrics.SlotCache("error")
		uc.log.Warn("slot cache read failed", zap.Uint("barbershop_id", key.BarbershopID), zap.Error(err))
		return nil, false
	case !ok:
		uc.metrics.SlotCache("miss")
		return nil, false
	}

	uc.metrics.SlotCache("hit")
	return slots, true
}

func (uc *GetAvailability) store(ctx context.Context, key domain.SlotKey, slots []string) {
	if err := uc.cache.Set(ctx, key, slots); err != nil {
		uc.metrics.SlotCache("error")
		uc.log.Warn("slot cache write failed", zap.Uint("barbershop_id", key.BarbershopID), zap.Error(err))
	}
}

// ServiceDuration soma a duração dos serviços ativos escolhidos.
func (uc *GetAvailability) ServiceDuration(
	ctx context.Context,
	barbershopID uint,
	serviceIDs []uint,
) (int, error) {

	services, err := resolveServices(ctx, uc.repo, barbershopID, serviceIDs)
	if err != nil {
		return 0, err
	}

	minutes, _ := serviceTotals(services)
	return minutes, nil
}

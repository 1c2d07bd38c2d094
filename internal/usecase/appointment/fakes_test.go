package appointment

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/frenetico9/Corte-Digital/internal/audit"
	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
	"github.com/frenetico9/Corte-Digital/internal/infra/repository/repositorytest"
	"github.com/frenetico9/Corte-Digital/internal/metrics"
	"github.com/frenetico9/Corte-Digital/internal/models"
)

// ======================================================
// Repositório em memória
// ======================================================
// memRepo acrescenta latência, falha e contagem de leituras de barbeiros
// ao repositório em memória.

type memRepo struct {
	*repositorytest.MemoryRepository

	mu           sync.Mutex
	barbersDelay time.Duration
	barbersErr   error
	listBarbers  int
}

func (r *memRepo) ListBarbers(ctx context.Context, shopID uint) ([]models.Barber, error) {
	r.mu.Lock()
	r.listBarbers++
	delay, fail := r.barbersDelay, r.barbersErr
	r.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if fail != nil {
		return nil, fail
	}
	return r.MemoryRepository.ListBarbers(ctx, shopID)
}

// ======================================================
// Cache em memória
// ======================================================

type memCache struct {
	mu      sync.Mutex
	entries map[string][]string
	hits    int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]string{}}
}

func cacheKey(shopID uint, date string) string {
	return fmt.Sprintf("%d|%s|", shopID, date)
}

func (c *memCache) Get(_ context.Context, k domain.SlotKey) ([]string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[cacheKey(k.BarbershopID, k.Date)+k.Field()]
	if ok {
		c.hits++
	}
	return slices.Clone(v), ok, nil
}

func (c *memCache) Set(_ context.Context, k domain.SlotKey, slots []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(k.BarbershopID, k.Date)+k.Field()] = slices.Clone(slots)
	return nil
}

func (c *memCache) InvalidateDay(_ context.Context, shopID uint, date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := cacheKey(shopID, date)
	for k := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *memCache) InvalidateShop(_ context.Context, shopID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := fmt.Sprintf("%d|", shopID)
	for k := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
		}
	}
	return nil
}

type nopAudit struct{}

func (nopAudit) Write(context.Context, audit.Event) error { return nil }

// ======================================================
// Cenário padrão
// ======================================================
// Barbearia 1 em São Paulo, terça 2026-03-10. Barbeiro 1 faz corte (30min)
// e barba (15min) das 09:00 às 12:00; barbeiro 2 só faz corte, das 14:00
// às 16:00.

const shopID uint = 1

var saoPaulo = mustLoad("America/Sao_Paulo")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

var (
	testDay       = time.Date(2026, 3, 10, 0, 0, 0, 0, saoPaulo)
	dayBefore     = time.Date(2026, 3, 9, 12, 0, 0, 0, saoPaulo)
	serviceCut    = models.Service{ID: 10, BarbershopID: shopID, Name: "Corte", DurationMin: 30, Price: 40, Active: true}
	serviceBeard  = models.Service{ID: 11, BarbershopID: shopID, Name: "Barba", DurationMin: 15, Price: 25, Active: true}
	serviceHidden = models.Service{ID: 12, BarbershopID: shopID, Name: "Pigmentação", DurationMin: 60, Active: false}
)

func uptr(v uint) *uint { return &v }

func seededRepo() *memRepo {
	r := &memRepo{MemoryRepository: repositorytest.NewMemoryRepository()}
	r.Shops[shopID] = models.Barbershop{ID: shopID, Slug: "navalha", Timezone: "America/Sao_Paulo"}
	r.Shops[2] = models.Barbershop{ID: 2, Slug: "outra", Timezone: "America/Sao_Paulo"}
	r.Hours[shopID] = models.DefaultWorkingHours(shopID)
	r.Services = []models.Service{serviceCut, serviceBeard, serviceHidden}
	r.Barbers = []models.Barber{
		{
			ID: 1, BarbershopID: shopID, Name: "Zé",
			Availability: []models.BarberAvailability{{Weekday: 2, StartTime: "09:00", EndTime: "12:00"}},
			Services:     []models.Service{serviceCut, serviceBeard},
		},
		{
			ID: 2, BarbershopID: shopID, Name: "Léo",
			Availability: []models.BarberAvailability{{Weekday: 2, StartTime: "14:00", EndTime: "16:00"}},
			Services:     []models.Service{serviceCut},
		},
		{ID: 3, BarbershopID: 2, Name: "Outro"},
	}
	return r
}

type fixture struct {
	repo     *memRepo
	cache    *memCache
	avail    *GetAvailability
	create   *CreateAppointment
	cancel   *CancelAppointment
	complete *CompleteAppointment
}

func newFixture(t *testing.T, repo *memRepo, now time.Time) *fixture {
	t.Helper()

	log := zap.NewNop()
	m := metrics.Nop()
	c := newMemCache()
	d := audit.NewDispatcher(nopAudit{}, log)
	t.Cleanup(d.Close)

	clock := func() time.Time { return now }

	f := &fixture{
		repo:     repo,
		cache:    c,
		avail:    NewGetAvailability(repo, c, m, log, DefaultSettings()),
		create:   NewCreateAppointment(repo, c, d, m, log, DefaultSettings()),
		cancel:   NewCancelAppointment(repo, c, d, log),
		complete: NewCompleteAppointment(repo, c, d, log),
	}
	f.avail.now = clock
	f.create.now = clock
	f.cancel.now = clock
	f.complete.now = clock
	return f
}

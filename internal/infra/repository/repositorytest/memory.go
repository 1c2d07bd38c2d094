// Package repositorytest oferece um domain.Repository em memória para os
// testes de usecases e handlers.
package repositorytest

import (
	"context"
	"slices"
	"sync"
	"time"

	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
	"github.com/frenetico9/Corte-Digital/internal/domain/schedule"
	"github.com/frenetico9/Corte-Digital/internal/models"
)

// MemoryRepository implementa domain.Repository em memória, para testes.
// Transaction serializa as transações, o que equivale ao lock da barbearia.
type MemoryRepository struct {
	mu   sync.Mutex
	txMu sync.Mutex

	Shops        map[uint]models.Barbershop
	Hours        map[uint][]models.WorkingHours
	Barbers      []models.Barber
	Services     []models.Service
	Clients      []models.Client
	Appointments []models.Appointment

	nextID uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		Shops:  map[uint]models.Barbershop{},
		Hours:  map[uint][]models.WorkingHours{},
		nextID: 100,
	}
}

func (r *MemoryRepository) Transaction(_ context.Context, fn func(tx domain.Repository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	return fn(r)
}

func (r *MemoryRepository) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.Shops[id]
	if !ok {
		return nil, &schedule.NotFoundError{Entity: "barbershop", ID: id}
	}
	return &s, nil
}

func (r *MemoryRepository) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.Shops {
		if s.Slug == slug {
			return &s, nil
		}
	}
	return nil, &schedule.NotFoundError{Entity: "barbershop", ID: slug}
}

func (r *MemoryRepository) LockBarbershop(ctx context.Context, id uint) error {
	_, err := r.GetBarbershopByID(ctx, id)
	return err
}

func (r *MemoryRepository) GetWorkingHours(_ context.Context, shopID uint) ([]models.WorkingHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.Hours[shopID]), nil
}

func (r *MemoryRepository) ListBarbers(_ context.Context, shopID uint) ([]models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Barber
	for _, b := range r.Barbers {
		if b.BarbershopID == shopID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryRepository) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.Barbers {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, &schedule.NotFoundError{Entity: "barber", ID: id}
}

func (r *MemoryRepository) ListActiveAppointments(_ context.Context, shopID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.Appointments {
		if ap.BarbershopID != shopID || !domain.Status(ap.Status).Blocks() {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *MemoryRepository) ListServices(_ context.Context, shopID uint, ids []uint) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Service
	for _, s := range r.Services {
		if s.BarbershopID == shopID && s.Active && slices.Contains(ids, s.ID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemoryRepository) GetOrCreateClient(_ context.Context, shopID uint, name, phone, email string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Clients {
		if c.BarbershopID == shopID && c.Phone == phone {
			return &c, nil
		}
	}
	r.nextID++
	c := models.Client{ID: r.nextID, BarbershopID: shopID, Name: name, Phone: phone, Email: email}
	r.Clients = append(r.Clients, c)
	return &c, nil
}

func (r *MemoryRepository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ap.ID = r.nextID
	r.Appointments = append(r.Appointments, *ap)
	return nil
}

func (r *MemoryRepository) GetAppointment(_ context.Context, shopID, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.Appointments {
		if ap.ID == id && ap.BarbershopID == shopID {
			return &ap, nil
		}
	}
	return nil, &schedule.NotFoundError{Entity: "appointment", ID: id}
}

func (r *MemoryRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Appointments {
		if r.Appointments[i].ID == ap.ID {
			r.Appointments[i] = *ap
			return nil
		}
	}
	return &schedule.NotFoundError{Entity: "appointment", ID: ap.ID}
}

func (r *MemoryRepository) ListAppointmentsForPeriod(_ context.Context, shopID uint, barberID *uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.Appointments {
		if ap.BarbershopID != shopID || ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		if barberID != nil && (ap.BarberID == nil || *ap.BarberID != *barberID) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

// AppointmentCount é seguro para uso concorrente.
func (r *MemoryRepository) AppointmentCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Appointments)
}

var _ domain.Repository = (*MemoryRepository)(nil)

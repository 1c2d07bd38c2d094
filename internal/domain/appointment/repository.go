package appointment

import (
	"context"
	"time"

	"github.com/frenetico9/Corte-Digital/internal/models"
)

// Repository é o acesso a dados da agenda. Registros ausentes voltam como
// *schedule.NotFoundError.
type Repository interface {
	// Transaction executa fn com um Repository preso a uma única transação.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// LockBarbershop serializa escritas de agenda da barbearia até o fim
	// da transação corrente.
	LockBarbershop(
		ctx context.Context,
		id uint,
	) error

	// -------- Schedule --------
	GetWorkingHours(
		ctx context.Context,
		barbershopID uint,
	) ([]models.WorkingHours, error)

	ListBarbers(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Barber, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// ListActiveAppointments devolve apenas agendamentos "scheduled" com
	// início em [start, end).
	ListActiveAppointments(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Service --------
	ListServices(
		ctx context.Context,
		barbershopID uint,
		ids []uint,
	) ([]models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		barbershopID uint,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		barbershopID uint,
		barberID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}

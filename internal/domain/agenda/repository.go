package agenda

import (
	"context"
	"time"

	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

// ScheduleFilter enumera critérios opcionais de busca. Campo nil = sem
// filtro naquele eixo.
type ScheduleFilter struct {
	PractitionerID  *uint
	LocationID      *uint
	SpecialtyID     *uint
	Modality        *string
	IncludeDisabled bool
}

type Repository interface {
	// -------- Schedule --------
	CreateSchedule(
		ctx context.Context,
		sch *models.Schedule,
	) error

	GetScheduleByID(
		ctx context.Context,
		id uint,
	) (*models.Schedule, error)

	ListSchedules(
		ctx context.Context,
		filter ScheduleFilter,
	) ([]models.Schedule, error)

	UpdateSchedule(
		ctx context.Context,
		sch *models.Schedule,
	) error

	// -------- Booking (commit / ocupação) --------

	// CreateBookingWithinCapacity recontará a ocupação do slot numa leitura
	// consistente (transação) e insere a reserva só se sobrar vaga;
	// caso contrário devolve *CapacityExceededError.
	CreateBookingWithinCapacity(
		ctx context.Context,
		b *models.Booking,
		capacity int,
	) error

	GetBookingByCode(
		ctx context.Context,
		code string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (consulta) --------

	// ListActiveBookingsInRange devolve reservas não canceladas dos
	// schedules indicados com SlotStart em [from, to).
	ListActiveBookingsInRange(
		ctx context.Context,
		scheduleIDs []uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	ListBookingsForPractitioner(
		ctx context.Context,
		practitionerID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)
}

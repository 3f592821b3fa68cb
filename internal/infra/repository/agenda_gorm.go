package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

type AgendaGormRepository struct {
	db *gorm.DB
}

func NewAgendaGormRepository(db *gorm.DB) *AgendaGormRepository {
	return &AgendaGormRepository{db: db}
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *AgendaGormRepository) CreateSchedule(
	ctx context.Context,
	sch *models.Schedule,
) error {
	return r.db.WithContext(ctx).Create(sch).Error
}

func (r *AgendaGormRepository) GetScheduleByID(
	ctx context.Context,
	id uint,
) (*models.Schedule, error) {

	var sch models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Location").
		First(&sch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}
	return &sch, nil
}

func (r *AgendaGormRepository) ListSchedules(
	ctx context.Context,
	filter domain.ScheduleFilter,
) ([]models.Schedule, error) {

	q := r.db.WithContext(ctx).Model(&models.Schedule{})

	if !filter.IncludeDisabled {
		q = q.Where("status = ?", models.ScheduleActive)
	}
	if filter.PractitionerID != nil {
		q = q.Where("practitioner_id = ?", *filter.PractitionerID)
	}
	if filter.LocationID != nil {
		q = q.Where("location_id = ?", *filter.LocationID)
	}
	if filter.SpecialtyID != nil {
		q = q.Where("specialty_id = ?", *filter.SpecialtyID)
	}
	if filter.Modality != nil {
		q = q.Where("modality = ?", *filter.Modality)
	}

	var schedules []models.Schedule
	if err := q.Preload("Location").Order("id ASC").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *AgendaGormRepository) UpdateSchedule(
	ctx context.Context,
	sch *models.Schedule,
) error {
	return r.db.WithContext(ctx).Save(sch).Error
}

// --------------------------------------------------
// Booking (commit)
// --------------------------------------------------

// CreateBookingWithinCapacity reconta a ocupação dentro de uma transação,
// segurando FOR UPDATE sobre as reservas existentes do slot. O FOR UPDATE
// não tranca nada quando o slot ainda está vazio — a exclusão mútua nesse
// caso vem do lock por slot que o caminho de commit segura por fora.
func (r *AgendaGormRepository) CreateBookingWithinCapacity(
	ctx context.Context,
	b *models.Booking,
	capacity int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"schedule_id = ? AND slot_start = ? AND slot_end = ? AND status <> ?",
				b.ScheduleID,
				b.SlotStart,
				b.SlotEnd,
				string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count >= int64(capacity) {
			return &domain.CapacityExceededError{
				ScheduleID: b.ScheduleID,
				SlotStart:  b.SlotStart,
			}
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (estado / consulta)
// --------------------------------------------------

func (r *AgendaGormRepository) GetBookingByCode(
	ctx context.Context,
	code string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *AgendaGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *AgendaGormRepository) ListActiveBookingsInRange(
	ctx context.Context,
	scheduleIDs []uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	if len(scheduleIDs) == 0 {
		return nil, nil
	}

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("schedule_id", "slot_start", "slot_end", "status").
		Where(
			"schedule_id IN ? AND status <> ? AND slot_start >= ? AND slot_start < ?",
			scheduleIDs,
			string(domain.StatusCancelled),
			from,
			to,
		).
		Order("slot_start ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *AgendaGormRepository) ListBookingsForPractitioner(
	ctx context.Context,
	practitionerID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Schedule").
		Where(
			"practitioner_id = ? AND slot_start >= ? AND slot_start < ?",
			practitionerID,
			from,
			to,
		).
		Order("slot_start ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*AgendaGormRepository)(nil)

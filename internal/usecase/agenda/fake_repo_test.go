package agenda

import (
	"context"
	"sync"
	"time"

	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

// fakeRepo implementa domain.Repository em memória. A recontagem +
// insert de CreateBookingWithinCapacity é atômica sob mutex, espelhando
// a transação com FOR UPDATE do repositório real.
type fakeRepo struct {
	mu        sync.Mutex
	schedules map[uint]*models.Schedule
	bookings  []models.Booking
	nextID    uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{schedules: make(map[uint]*models.Schedule)}
}

func (r *fakeRepo) CreateSchedule(_ context.Context, sch *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	sch.ID = r.nextID
	r.schedules[sch.ID] = sch
	return nil
}

func (r *fakeRepo) GetScheduleByID(_ context.Context, id uint) (*models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sch, ok := r.schedules[id]
	if !ok {
		return nil, domain.ErrScheduleNotFound
	}
	return sch, nil
}

func (r *fakeRepo) ListSchedules(_ context.Context, filter domain.ScheduleFilter) ([]models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Schedule
	for _, sch := range r.schedules {
		if !filter.IncludeDisabled && sch.Status != models.ScheduleActive {
			continue
		}
		if filter.PractitionerID != nil && sch.PractitionerID != *filter.PractitionerID {
			continue
		}
		if filter.SpecialtyID != nil && sch.SpecialtyID != *filter.SpecialtyID {
			continue
		}
		if filter.Modality != nil && sch.Modality != *filter.Modality {
			continue
		}
		if filter.LocationID != nil && (sch.LocationID == nil || *sch.LocationID != *filter.LocationID) {
			continue
		}
		out = append(out, *sch)
	}
	return out, nil
}

func (r *fakeRepo) UpdateSchedule(_ context.Context, sch *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.schedules[sch.ID] = sch
	return nil
}

func (r *fakeRepo) CreateBookingWithinCapacity(_ context.Context, b *models.Booking, capacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, existing := range r.bookings {
		if existing.ScheduleID == b.ScheduleID &&
			existing.SlotStart.Equal(b.SlotStart) &&
			existing.SlotEnd.Equal(b.SlotEnd) &&
			existing.Status != string(domain.StatusCancelled) {
			count++
		}
	}
	if count >= capacity {
		return &domain.CapacityExceededError{
			ScheduleID: b.ScheduleID,
			SlotStart:  b.SlotStart,
		}
	}

	r.nextID++
	b.ID = r.nextID
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) GetBookingByCode(_ context.Context, code string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].Code == code {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return domain.ErrBookingNotFound
}

func (r *fakeRepo) ListActiveBookingsInRange(
	_ context.Context,
	scheduleIDs []uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make(map[uint]bool, len(scheduleIDs))
	for _, id := range scheduleIDs {
		ids[id] = true
	}

	var out []models.Booking
	for _, b := range r.bookings {
		if !ids[b.ScheduleID] || b.Status == string(domain.StatusCancelled) {
			continue
		}
		if b.SlotStart.Before(from) || !b.SlotStart.Before(to) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForPractitioner(
	_ context.Context,
	practitionerID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.PractitionerID != practitionerID {
			continue
		}
		if b.SlotStart.Before(from) || !b.SlotStart.Before(to) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

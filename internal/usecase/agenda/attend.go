package agenda

import (
	"context"

	"github.com/h3nr7M3d/Praxia-sub000/internal/audit"
	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
	"github.com/h3nr7M3d/Praxia-sub000/internal/timezone"
)

type AttendBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAttendBooking(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *AttendBooking {
	return &AttendBooking{
		repo:  repo,
		audit: auditor,
	}
}

func (uc *AttendBooking) Execute(
	ctx context.Context,
	code string,
	actorID *uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := domain.Attend(b, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  actorID,
			Action:   "booking_attended",
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	return b, nil
}

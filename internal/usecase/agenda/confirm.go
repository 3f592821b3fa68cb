package agenda

import (
	"context"

	"github.com/h3nr7M3d/Praxia-sub000/internal/audit"
	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
	"github.com/h3nr7M3d/Praxia-sub000/internal/timezone"
)

type ConfirmBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmBooking(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		audit: auditor,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	code string,
	actorID *uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := domain.Confirm(b, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  actorID,
			Action:   "booking_confirmed",
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	return b, nil
}

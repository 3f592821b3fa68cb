package agenda

import (
	"context"

	"github.com/h3nr7M3d/Praxia-sub000/internal/audit"
	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
	"github.com/h3nr7M3d/Praxia-sub000/internal/timezone"
)

type MarkNoShow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{
		repo:  repo,
		audit: auditor,
	}
}

// Execute marca falta; só é válido depois que o horário da consulta já
// passou (guarda no domínio).
func (uc *MarkNoShow) Execute(
	ctx context.Context,
	code string,
	actorID *uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := domain.MarkNoShow(b, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  actorID,
			Action:   "booking_no_show",
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	return b, nil
}

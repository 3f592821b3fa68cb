package agenda

import (
	"context"

	"github.com/h3nr7M3d/Praxia-sub000/internal/audit"
	"github.com/h3nr7M3d/Praxia-sub000/internal/cache"
	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
	"github.com/h3nr7M3d/Praxia-sub000/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditor *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		cache: availCache,
		audit: auditor,
	}
}

// Execute é idempotente: cancelar uma reserva já cancelada é sucesso
// sem efeito, nunca erro — um cancel duplicado jamais pode corromper a
// contagem de ocupação.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	code string,
	actorID *uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if b.Status == string(domain.StatusCancelled) {
		return b, nil
	}

	if err := domain.Cancel(b, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  actorID,
			Action:   "booking_cancelled",
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}
	if uc.cache != nil {
		uc.cache.Bump(ctx, b.PractitionerID)
	}

	return b, nil
}

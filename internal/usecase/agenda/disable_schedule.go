package agenda

import (
	"context"

	"github.com/h3nr7M3d/Praxia-sub000/internal/audit"
	"github.com/h3nr7M3d/Praxia-sub000/internal/cache"
	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

type DisableSchedule struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewDisableSchedule(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditor *audit.Dispatcher,
) *DisableSchedule {
	return &DisableSchedule{
		repo:  repo,
		cache: availCache,
		audit: auditor,
	}
}

// Execute desabilita logicamente: o schedule some da geração de slots mas
// as reservas existentes ficam intactas (exclusão física nunca acontece,
// para preservar o histórico). Idempotente.
func (uc *DisableSchedule) Execute(
	ctx context.Context,
	scheduleID uint,
	actorID *uint,
) error {

	sch, err := uc.repo.GetScheduleByID(ctx, scheduleID)
	if err != nil {
		return err
	}

	if sch.Status == models.ScheduleDisabled {
		return nil
	}

	sch.Status = models.ScheduleDisabled
	if err := uc.repo.UpdateSchedule(ctx, sch); err != nil {
		return err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  actorID,
			Action:   "schedule_disabled",
			Entity:   "schedule",
			EntityID: &sch.ID,
		})
	}
	if uc.cache != nil {
		uc.cache.Bump(ctx, sch.PractitionerID)
	}

	return nil
}

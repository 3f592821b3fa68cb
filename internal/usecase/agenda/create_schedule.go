package agenda

import (
	"context"

	"github.com/h3nr7M3d/Praxia-sub000/internal/audit"
	"github.com/h3nr7M3d/Praxia-sub000/internal/cache"
	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

type CreateSchedule struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCreateSchedule(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditor *audit.Dispatcher,
) *CreateSchedule {
	return &CreateSchedule{
		repo:  repo,
		cache: availCache,
		audit: auditor,
	}
}

// Execute valida todos os invariantes de construção de uma vez (o
// ValidationError lista cada campo violado) antes de persistir.
func (uc *CreateSchedule) Execute(
	ctx context.Context,
	sch *models.Schedule,
	actorID *uint,
) (*models.Schedule, error) {

	if sch.Status == "" {
		sch.Status = models.ScheduleActive
	}

	if err := domain.ValidateSchedule(sch); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateSchedule(ctx, sch); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  actorID,
			Action:   "schedule_created",
			Entity:   "schedule",
			EntityID: &sch.ID,
		})
	}
	if uc.cache != nil {
		uc.cache.Bump(ctx, sch.PractitionerID)
	}

	return sch, nil
}

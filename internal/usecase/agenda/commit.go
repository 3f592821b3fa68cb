package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/h3nr7M3d/Praxia-sub000/internal/audit"
	"github.com/h3nr7M3d/Praxia-sub000/internal/cache"
	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/httperr"
	"github.com/h3nr7M3d/Praxia-sub000/internal/lock"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
	"github.com/h3nr7M3d/Praxia-sub000/internal/timezone"
)

const (
	// TTL do lock por slot; maior que qualquer transação de insert sadia
	slotLockTTL = 5 * time.Second

	// espera máxima pela seção crítica antes de devolver ErrSlotBusy
	slotLockWait  = 2 * time.Second
	slotLockRetry = 50 * time.Millisecond
)

// ======================================================
// USE CASE
// ======================================================

// CommitBooking é o único caminho de escrita que disputa capacidade.
// A serialização é por (scheduleID, slotStart): commits de slots
// diferentes nunca se bloqueiam.
type CommitBooking struct {
	repo   domain.Repository
	locker lock.Locker
	cache  *cache.AvailabilityCache
	audit  *audit.Dispatcher
}

func NewCommitBooking(
	repo domain.Repository,
	locker lock.Locker,
	availCache *cache.AvailabilityCache,
	auditor *audit.Dispatcher,
) *CommitBooking {
	return &CommitBooking{
		repo:   repo,
		locker: locker,
		cache:  availCache,
		audit:  auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CommitBooking) Execute(
	ctx context.Context,
	patientID uint,
	scheduleID uint,
	slotStart time.Time,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Schedule e slot alvo
	// --------------------------------------------------
	sch, err := uc.repo.GetScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	if sch.Status != models.ScheduleActive {
		return nil, httperr.ErrBusiness("schedule_disabled")
	}

	// slotStart na localidade da sede: a grade é calculada no fuso do
	// atendimento, não no do cliente
	loc := scheduleLocation(sch)
	slotStart = slotStart.In(loc)

	if slotStart.Before(time.Now().In(loc)) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	// O fim do slot vem sempre do Schedule; um start fora da grade
	// nunca vira reserva
	slot, ok := domain.ResolveSlot(sch, slotStart)
	if !ok {
		return nil, httperr.ErrBusiness("slot_not_in_schedule")
	}

	// --------------------------------------------------
	// 2️⃣ Seção crítica por (schedule, slotStart)
	// --------------------------------------------------
	lockKey := fmt.Sprintf("slot:%d:%d", sch.ID, slot.Start.Unix())

	if err := uc.acquireSlot(ctx, lockKey); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Recontagem consistente + insert condicionado
	// --------------------------------------------------
	booking := &models.Booking{
		Code:           uuid.NewString(),
		PatientID:      patientID,
		PractitionerID: sch.PractitionerID,
		ScheduleID:     sch.ID,
		SlotStart:      slot.Start,
		SlotEnd:        slot.End,
		Status:         string(domain.InitialStatus()),
		Modality:       sch.Modality,
	}

	err = uc.repo.CreateBookingWithinCapacity(ctx, booking, sch.SlotCapacity)

	// solta o lock antes de qualquer outro I/O (audit, cache)
	_ = uc.locker.Release(ctx, lockKey)

	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria + invalidação de cache
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  &patientID,
			Action:   "booking_reserved",
			Entity:   "booking",
			EntityID: &booking.ID,
		})
	}
	if uc.cache != nil {
		uc.cache.Bump(ctx, sch.PractitionerID)
	}

	return booking, nil
}

// acquireSlot re-tenta o lock até slotLockWait; depois disso devolve
// ErrSlotBusy em vez de bloquear para sempre.
func (uc *CommitBooking) acquireSlot(ctx context.Context, key string) error {
	deadline := time.Now().Add(slotLockWait)

	for {
		ok, err := uc.locker.Acquire(ctx, key, slotLockTTL)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return domain.ErrSlotBusy
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(slotLockRetry):
		}
	}
}

func scheduleLocation(sch *models.Schedule) *time.Location {
	if sch.Location != nil && sch.Location.Timezone != "" {
		return timezone.Location(sch.Location.Timezone)
	}
	return timezone.Location("")
}

package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/h3nr7M3d/Praxia-sub000/internal/cache"
	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AvailabilityInput struct {
	PractitionerID *uint
	LocationID     *uint
	SpecialtyID    *uint
	Modality       *string

	// DateFrom zero = hoje; DateTo zero = DateFrom + horizonte padrão.
	// DateTo é inclusivo (último dia consultado).
	DateFrom time.Time
	DateTo   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type ListAvailability struct {
	repo        domain.Repository
	cache       *cache.AvailabilityCache
	horizonDays int
}

func NewListAvailability(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	horizonDays int,
) *ListAvailability {
	return &ListAvailability{
		repo:        repo,
		cache:       availCache,
		horizonDays: horizonDays,
	}
}

// Execute é o caminho de consulta: carrega os schedules ativos que batem
// com o filtro, expande cada um em slots, funde tudo numa sequência
// ordenada e anota a ocupação com as reservas correntes. Nenhum schedule
// casando com o filtro = sequência vazia, não erro.
func (uc *ListAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
	now time.Time,
) ([]domain.Slot, error) {

	from := in.DateFrom
	if from.IsZero() {
		from = now
	}
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, now.Location())

	to := in.DateTo
	if to.IsZero() {
		to = from.AddDate(0, 0, uc.horizonDays)
	}
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, now.Location())
	if to.Before(from) {
		return []domain.Slot{}, nil
	}

	// horizonte em dias de calendário; contar por horas erraria no dia da
	// virada de horário de verão
	horizon := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		horizon++
	}

	cacheKey := ""
	if uc.cache != nil {
		ver := uc.cache.Version(ctx, in.PractitionerID)
		cacheKey = availabilityKey(in, from, to, ver)

		var cached []domain.Slot
		if uc.cache.Get(ctx, cacheKey, &cached) {
			return cached, nil
		}
	}

	schedules, err := uc.repo.ListSchedules(ctx, domain.ScheduleFilter{
		PractitionerID: in.PractitionerID,
		LocationID:     in.LocationID,
		SpecialtyID:    in.SpecialtyID,
		Modality:       in.Modality,
	})
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return []domain.Slot{}, nil
	}

	groups := make([][]domain.Slot, 0, len(schedules))
	scheduleIDs := make([]uint, 0, len(schedules))
	for i := range schedules {
		// a grade vive no fuso da sede, o mesmo cálculo que o commit
		// refaz ao validar o slotStart
		schLoc := scheduleLocation(&schedules[i])
		dayFrom := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, schLoc)

		groups = append(groups, domain.GenerateSlots(&schedules[i], dayFrom, horizon))
		scheduleIDs = append(scheduleIDs, schedules[i].ID)
	}

	merged := domain.MergeSlots(groups...)
	if len(merged) == 0 {
		return merged, nil
	}

	// janela de reservas derivada dos próprios slots: com sedes em fusos
	// distintos, as bordas de calendário não coincidem
	bookings, err := uc.repo.ListActiveBookingsInRange(
		ctx,
		scheduleIDs,
		merged[0].Start,
		merged[len(merged)-1].End,
	)
	if err != nil {
		return nil, err
	}

	bySchedule := make(map[uint][]models.Booking, len(scheduleIDs))
	for _, b := range bookings {
		bySchedule[b.ScheduleID] = append(bySchedule[b.ScheduleID], b)
	}

	for i := range merged {
		merged[i] = domain.Annotate(merged[i], bySchedule[merged[i].ScheduleID])
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, cacheKey, merged)
	}

	return merged, nil
}

func availabilityKey(in AvailabilityInput, from, to time.Time, ver int64) string {
	return fmt.Sprintf(
		"avail:%s:%s:%s:%s:%s:%s:v%d",
		uintPtrKey(in.PractitionerID),
		uintPtrKey(in.LocationID),
		uintPtrKey(in.SpecialtyID),
		strPtrKey(in.Modality),
		from.Format("2006-01-02"),
		to.Format("2006-01-02"),
		ver,
	)
}

func uintPtrKey(v *uint) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func strPtrKey(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

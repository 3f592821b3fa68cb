package agenda

import (
	"sort"
	"time"

	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

// ===============================
// Slot (derivado, nunca persistido)
// ===============================

type SlotStatus string

const (
	SlotFree    SlotStatus = "free"
	SlotPartial SlotStatus = "partial"
	SlotFull    SlotStatus = "full"
)

type Slot struct {
	ScheduleID     uint       `json:"schedule_id"`
	PractitionerID uint       `json:"practitioner_id"`
	Modality       string     `json:"modality"`
	Start          time.Time  `json:"start"`
	End            time.Time  `json:"end"`
	Capacity       int        `json:"capacity"`
	OccupiedCount  int        `json:"occupied_count"`
	Status         SlotStatus `json:"status"`
}

func parseHM(hm string, day time.Time) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), true
}

// GenerateSlots ladrilha cada data do horizonte com slots de SlotMinutes a
// partir de StartTime. O último slot parcial é descartado: nunca sai slot
// cujo fim ultrapasse EndTime. Schedule desabilitado ou fora de vigência
// gera sequência vazia (decisão de política, não erro).
// Saída ordenada ascendente por Start.
func GenerateSlots(sch *models.Schedule, today time.Time, horizonDays int) []Slot {
	if sch.Status != models.ScheduleActive {
		return nil
	}

	interval := time.Duration(sch.SlotMinutes) * time.Minute
	if interval <= 0 {
		return nil
	}

	var slots []Slot
	for _, day := range DatesForHorizon(sch, today, horizonDays) {
		dayStart, ok1 := parseHM(sch.StartTime, day)
		dayEnd, ok2 := parseHM(sch.EndTime, day)
		if !ok1 || !ok2 || !dayEnd.After(dayStart) {
			continue
		}

		for cur := dayStart; !cur.Add(interval).After(dayEnd); cur = cur.Add(interval) {
			slots = append(slots, Slot{
				ScheduleID:     sch.ID,
				PractitionerID: sch.PractitionerID,
				Modality:       sch.Modality,
				Start:          cur,
				End:            cur.Add(interval),
				Capacity:       sch.SlotCapacity,
			})
		}
	}
	return slots
}

// ResolveSlot localiza o slot gerado que começa exatamente em slotStart.
// É o guarda do commit: o fim do slot vem sempre do Schedule, nunca do
// cliente, e um start fora da grade não vira reserva fantasma.
func ResolveSlot(sch *models.Schedule, slotStart time.Time) (Slot, bool) {
	for _, s := range GenerateSlots(sch, dateOnly(slotStart, slotStart.Location()), 0) {
		if s.Start.Equal(slotStart) {
			return s, true
		}
	}
	return Slot{}, false
}

// StatusFor deriva o status puramente de ocupação vs capacidade.
func StatusFor(occupied, capacity int) SlotStatus {
	switch {
	case occupied <= 0:
		return SlotFree
	case occupied >= capacity:
		return SlotFull
	default:
		return SlotPartial
	}
}

// Annotate preenche OccupiedCount/Status de um slot contando as reservas
// não canceladas cujo intervalo [SlotStart, SlotEnd) coincide exatamente
// com o do slot. Total sobre qualquer entrada bem formada.
func Annotate(slot Slot, bookings []models.Booking) Slot {
	n := 0
	for _, b := range bookings {
		if b.ScheduleID != slot.ScheduleID {
			continue
		}
		if b.Status == string(StatusCancelled) {
			continue
		}
		if b.SlotStart.Equal(slot.Start) && b.SlotEnd.Equal(slot.End) {
			n++
		}
	}
	slot.OccupiedCount = n
	slot.Status = StatusFor(n, slot.Capacity)
	return slot
}

// MergeSlots junta os slots de vários schedules numa sequência única,
// ascendente por Start e, em empate, por ScheduleID (contrato de ordenação
// do caminho de consulta).
func MergeSlots(groups ...[]Slot) []Slot {
	total := 0
	for _, g := range groups {
		total += len(g)
	}

	merged := make([]Slot, 0, total)
	for _, g := range groups {
		merged = append(merged, g...)
	}

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].Start.Equal(merged[j].Start) {
			return merged[i].Start.Before(merged[j].Start)
		}
		return merged[i].ScheduleID < merged[j].ScheduleID
	})

	return merged
}

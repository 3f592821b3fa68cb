package agenda

import (
	"testing"
	"time"

	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

// 2026-01-09 é sexta-feira
var friday = time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)

func fridaySchedule() *models.Schedule {
	return &models.Schedule{
		ID:             1,
		PractitionerID: 10,
		Modality:       models.ModalityInPerson,
		Weekday:        weekdayPtr(5),
		StartTime:      "09:00",
		EndTime:        "12:00",
		SlotMinutes:    20,
		SlotCapacity:   1,
		EffectiveFrom:  friday.AddDate(0, 0, -30),
		Status:         models.ScheduleActive,
	}
}

func TestGenerateSlotsTiling(t *testing.T) {
	sch := fridaySchedule()

	slots := GenerateSlots(sch, friday, 0)

	// 09:00..11:40 de 20 em 20 = 9 slots
	if len(slots) != 9 {
		t.Fatalf("got %d slots, want 9", len(slots))
	}

	dayStart := time.Date(2026, 1, 9, 9, 0, 0, 0, time.UTC)
	for i, s := range slots {
		wantStart := dayStart.Add(time.Duration(i) * 20 * time.Minute)
		if !s.Start.Equal(wantStart) {
			t.Errorf("slots[%d].Start = %s, want %s", i, s.Start, wantStart)
		}
		if !s.End.Equal(wantStart.Add(20 * time.Minute)) {
			t.Errorf("slots[%d].End = %s, want %s", i, s.End, wantStart.Add(20*time.Minute))
		}
		// sem buracos nem sobreposição
		if i > 0 && !slots[i-1].End.Equal(s.Start) {
			t.Errorf("buraco entre slots[%d] e slots[%d]", i-1, i)
		}
		if s.Capacity != 1 {
			t.Errorf("slots[%d].Capacity = %d, want 1", i, s.Capacity)
		}
	}

	last := slots[len(slots)-1]
	if last.End.After(time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("último slot ultrapassa end_time: %s", last.End)
	}
}

func TestGenerateSlotsDropsTruncatedTail(t *testing.T) {
	sch := fridaySchedule()
	sch.EndTime = "10:30"
	sch.SlotMinutes = 60

	slots := GenerateSlots(sch, friday, 0)

	// 09:00-10:00 cabe; 10:00-11:00 estouraria 10:30 e é descartado
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1: %v", len(slots), slots)
	}
}

func TestGenerateSlotsDisabledSchedule(t *testing.T) {
	sch := fridaySchedule()
	sch.Status = models.ScheduleDisabled

	if slots := GenerateSlots(sch, friday, 14); len(slots) != 0 {
		t.Errorf("schedule desabilitado gerou %d slots", len(slots))
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		occupied, capacity int
		want               SlotStatus
	}{
		{0, 1, SlotFree},
		{0, 5, SlotFree},
		{1, 1, SlotFull},
		{1, 3, SlotPartial},
		{2, 3, SlotPartial},
		{3, 3, SlotFull},
		{4, 3, SlotFull},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.occupied, tt.capacity); got != tt.want {
			t.Errorf("StatusFor(%d, %d) = %s, want %s", tt.occupied, tt.capacity, got, tt.want)
		}
	}
}

func TestAnnotateExactBoundariesOnly(t *testing.T) {
	slot := Slot{
		ScheduleID: 1,
		Start:      time.Date(2026, 1, 9, 9, 0, 0, 0, time.UTC),
		End:        time.Date(2026, 1, 9, 9, 20, 0, 0, time.UTC),
		Capacity:   2,
	}

	bookings := []models.Booking{
		// conta: mesmo schedule, mesmas bordas
		{ScheduleID: 1, SlotStart: slot.Start, SlotEnd: slot.End, Status: string(StatusReserved)},
		// não conta: cancelada
		{ScheduleID: 1, SlotStart: slot.Start, SlotEnd: slot.End, Status: string(StatusCancelled)},
		// não conta: outro schedule
		{ScheduleID: 2, SlotStart: slot.Start, SlotEnd: slot.End, Status: string(StatusReserved)},
		// não conta: outro horário
		{ScheduleID: 1, SlotStart: slot.End, SlotEnd: slot.End.Add(20 * time.Minute), Status: string(StatusConfirmed)},
	}

	got := Annotate(slot, bookings)
	if got.OccupiedCount != 1 {
		t.Errorf("OccupiedCount = %d, want 1", got.OccupiedCount)
	}
	if got.Status != SlotPartial {
		t.Errorf("Status = %s, want %s", got.Status, SlotPartial)
	}
}

func TestMergeSlotsOrdering(t *testing.T) {
	t0 := time.Date(2026, 1, 9, 9, 0, 0, 0, time.UTC)

	a := []Slot{
		{ScheduleID: 2, Start: t0},
		{ScheduleID: 2, Start: t0.Add(40 * time.Minute)},
	}
	b := []Slot{
		{ScheduleID: 1, Start: t0},
		{ScheduleID: 1, Start: t0.Add(20 * time.Minute)},
	}

	merged := MergeSlots(a, b)

	if len(merged) != 4 {
		t.Fatalf("got %d slots, want 4", len(merged))
	}
	// empate em t0 desempata por ScheduleID
	if merged[0].ScheduleID != 1 || merged[1].ScheduleID != 2 {
		t.Errorf("desempate por schedule id quebrado: %+v", merged[:2])
	}
	for i := 1; i < len(merged); i++ {
		if merged[i].Start.Before(merged[i-1].Start) {
			t.Errorf("ordenação por Start quebrada em %d", i)
		}
	}
}

func TestResolveSlot(t *testing.T) {
	sch := fridaySchedule()

	start := time.Date(2026, 1, 9, 9, 20, 0, 0, time.UTC)
	slot, ok := ResolveSlot(sch, start)
	if !ok {
		t.Fatal("slot 09:20 não resolvido")
	}
	if !slot.End.Equal(start.Add(20 * time.Minute)) {
		t.Errorf("End = %s, want %s", slot.End, start.Add(20*time.Minute))
	}

	// fora da grade
	if _, ok := ResolveSlot(sch, start.Add(10*time.Minute)); ok {
		t.Error("start fora da grade foi aceito")
	}

	// dia errado (sábado)
	if _, ok := ResolveSlot(sch, start.AddDate(0, 0, 1)); ok {
		t.Error("dia fora da recorrência foi aceito")
	}
}

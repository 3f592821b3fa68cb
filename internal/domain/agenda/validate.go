package agenda

import (
	"time"

	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

// ValidateSchedule aplica os invariantes de construção de um Schedule e
// devolve um ValidationError com todos os campos violados. Recorrência
// malformada (weekday e fixed_date juntos, ou nenhum) é erro aqui, nunca
// no calendário.
func ValidateSchedule(sch *models.Schedule) error {
	var fields []string

	if sch.PractitionerID == 0 {
		fields = append(fields, "practitioner_id")
	}
	if sch.SpecialtyID == 0 {
		fields = append(fields, "specialty_id")
	}

	switch sch.Modality {
	case models.ModalityInPerson:
		if sch.LocationID == nil {
			fields = append(fields, "location_id")
		}
	case models.ModalityVirtual:
		// remoto: sem sede fixa
	default:
		fields = append(fields, "modality")
	}

	hasWeekday := sch.Weekday != nil
	hasFixed := sch.FixedDate != nil
	if hasWeekday == hasFixed {
		fields = append(fields, "weekday", "fixed_date")
	} else if hasWeekday && (*sch.Weekday < 1 || *sch.Weekday > 7) {
		fields = append(fields, "weekday")
	}

	start, errStart := time.Parse("15:04", sch.StartTime)
	if errStart != nil {
		fields = append(fields, "start_time")
	}
	end, errEnd := time.Parse("15:04", sch.EndTime)
	if errEnd != nil {
		fields = append(fields, "end_time")
	}
	if errStart == nil && errEnd == nil && !end.After(start) {
		fields = append(fields, "start_time", "end_time")
	}

	if sch.SlotMinutes <= 0 {
		fields = append(fields, "slot_minutes")
	}
	if sch.SlotCapacity < 1 {
		fields = append(fields, "slot_capacity")
	}

	if sch.EffectiveFrom.IsZero() {
		fields = append(fields, "effective_from")
	} else if sch.EffectiveUntil != nil && sch.EffectiveUntil.Before(sch.EffectiveFrom) {
		fields = append(fields, "effective_until")
	}

	if sch.Status != "" && sch.Status != models.ScheduleActive && sch.Status != models.ScheduleDisabled {
		fields = append(fields, "status")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

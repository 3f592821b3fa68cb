package dto

import "time"

// AgendaEntryDTO é uma linha da agenda do médico (visão do portal).
type AgendaEntryDTO struct {
	Code        string    `json:"code"`
	SlotStart   time.Time `json:"slot_start"`
	SlotEnd     time.Time `json:"slot_end"`
	Status      string    `json:"status"`
	Modality    string    `json:"modality"`
	PatientName string    `json:"patient_name"`
}

package dto

import "time"

// SlotDTO é o slot anotado mais os nomes de exibição (dados de referência
// decoram o resultado, nunca participam do cálculo).
type SlotDTO struct {
	ScheduleID       uint      `json:"schedule_id"`
	PractitionerID   uint      `json:"practitioner_id"`
	PractitionerName string    `json:"practitioner_name,omitempty"`
	SpecialtyName    string    `json:"specialty_name,omitempty"`
	LocationName     string    `json:"location_name,omitempty"`
	Modality         string    `json:"modality"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	Capacity         int       `json:"capacity"`
	OccupiedCount    int       `json:"occupied_count"`
	Status           string    `json:"status"`
}

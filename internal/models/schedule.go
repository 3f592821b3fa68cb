package models

import "time"

// ===============================
// Schedule (janela de atendimento)
// ===============================

const (
	ScheduleActive   = "active"
	ScheduleDisabled = "disabled"
)

const (
	ModalityInPerson = "in_person"
	ModalityVirtual  = "virtual"
)

// Schedule representa uma janela de atendimento de um médico:
// recorrente (Weekday 1=segunda..7=domingo) ou avulsa (FixedDate).
// Exatamente um dos dois campos de recorrência é preenchido.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PractitionerID uint         `gorm:"index;not null" json:"practitioner_id"`
	Practitioner   Practitioner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"practitioner"`

	// LocationID nulo = atendimento remoto, sem sede fixa
	LocationID *uint     `gorm:"index" json:"location_id"`
	Location   *Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"location"`

	SpecialtyID uint      `gorm:"index;not null" json:"specialty_id"`
	Specialty   Specialty `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"specialty"`

	Modality string `gorm:"size:20;not null" json:"modality"`

	Weekday   *int       `json:"weekday"`
	FixedDate *time.Time `gorm:"type:date" json:"fixed_date"`

	StartTime string `gorm:"size:5;not null" json:"start_time"` // HH:mm
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // HH:mm

	SlotMinutes  int `gorm:"not null" json:"slot_minutes"`
	SlotCapacity int `gorm:"not null;default:1" json:"slot_capacity"`

	EffectiveFrom  time.Time  `gorm:"type:date;not null" json:"effective_from"`
	EffectiveUntil *time.Time `gorm:"type:date" json:"effective_until"`

	Status string `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

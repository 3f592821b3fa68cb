package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Code é o identificador público (UUID); o ID numérico não sai da API.
	Code string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	PatientID uint    `gorm:"index;not null" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	PractitionerID uint         `gorm:"index;not null" json:"practitioner_id"`
	Practitioner   Practitioner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"practitioner"`

	ScheduleID uint     `gorm:"index;not null" json:"schedule_id"`
	Schedule   Schedule `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"schedule"`

	SlotStart time.Time `gorm:"index;not null" json:"slot_start"`
	SlotEnd   time.Time `gorm:"not null" json:"slot_end"`

	Status string `gorm:"size:20;default:'reserved'" json:"status"`

	// Modalidade copiada do Schedule no momento da reserva
	Modality string `gorm:"size:20;not null" json:"modality"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	AttendedAt  *time.Time `json:"attended_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

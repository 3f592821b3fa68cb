package agenda

import (
	"time"

	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(b *models.Booking, now time.Time) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Attend(b *models.Booking, now time.Time) error {
	if err := CanAttend(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusAttended)
	b.AttendedAt = &now
	return nil
}

func MarkNoShow(b *models.Booking, now time.Time) error {
	if err := CanMarkNoShow(Status(b.Status), now, b.SlotEnd); err != nil {
		return err
	}

	b.Status = string(StatusNoShow)
	return nil
}

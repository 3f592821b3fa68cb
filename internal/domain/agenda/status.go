package agenda

import "time"

// ===============================
// Status da reserva
// ===============================

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusAttended  Status = "attended"
	StatusNoShow    Status = "no_show"
)

// Transições válidas:
//   reserved  -> confirmed -> attended  (terminal)
//   reserved|confirmed -> cancelled     (terminal)
//   reserved|confirmed -> no_show       (terminal, só após SlotEnd)
// Qualquer outra tentativa falha com InvalidTransitionError.

func CanConfirm(current Status) error {
	if current != StatusReserved {
		return &InvalidTransitionError{From: current, To: StatusConfirmed}
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusReserved && current != StatusConfirmed {
		return &InvalidTransitionError{From: current, To: StatusCancelled}
	}
	return nil
}

func CanAttend(current Status) error {
	if current != StatusConfirmed {
		return &InvalidTransitionError{From: current, To: StatusAttended}
	}
	return nil
}

func CanMarkNoShow(current Status, now, slotEnd time.Time) error {
	if current != StatusReserved && current != StatusConfirmed {
		return &InvalidTransitionError{From: current, To: StatusNoShow}
	}
	if !now.After(slotEnd) {
		return &InvalidTransitionError{From: current, To: StatusNoShow}
	}
	return nil
}

func InitialStatus() Status {
	return StatusReserved
}

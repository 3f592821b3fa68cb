package agenda

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ===============================
// Erros do motor de agenda
// ===============================

// ValidationError carrega todos os campos violados de uma vez, não só o
// primeiro encontrado.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid schedule: " + strings.Join(e.Fields, ", ")
}

// CapacityExceededError é resultado esperado de negócio, não falha de
// sistema: o slot lotou entre a consulta e o commit.
type CapacityExceededError struct {
	ScheduleID uint
	SlotStart  time.Time
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf(
		"slot %s of schedule %d is at capacity",
		e.SlotStart.Format(time.RFC3339), e.ScheduleID,
	)
}

// InvalidTransitionError nomeia o estado atual e o pretendido.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid booking transition: %s -> %s", e.From, e.To)
}

// ErrSlotBusy: não conseguimos a seção crítica do slot dentro do prazo.
// Retryable pelo chamador com backoff; o motor nunca re-tenta sozinho.
var ErrSlotBusy = errors.New("slot is busy, retry later")

var ErrScheduleNotFound = errors.New("schedule not found")
var ErrBookingNotFound = errors.New("booking not found")

package agenda

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
)

func TestCancelBookingIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	sch := seedFridaySchedule(t, repo, 1)
	ctx := context.Background()

	b, err := newCommitUC(repo).Execute(ctx, 42, sch.ID, futureFridayAt(9, 0))
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	cancelUC := NewCancelBooking(repo, nil, nil)

	first, err := cancelUC.Execute(ctx, b.Code, nil)
	if err != nil {
		t.Fatalf("primeiro cancel: %v", err)
	}
	if first.Status != string(domain.StatusCancelled) || first.CancelledAt == nil {
		t.Errorf("cancel não registrou: %+v", first)
	}

	// repetir é sucesso sem efeito, nunca erro
	second, err := cancelUC.Execute(ctx, b.Code, nil)
	if err != nil {
		t.Fatalf("cancel repetido: %v", err)
	}
	if second.Status != string(domain.StatusCancelled) {
		t.Errorf("cancel repetido mudou status: %+v", second)
	}
}

func TestCancelReleasesCapacity(t *testing.T) {
	repo := newFakeRepo()
	sch := seedFridaySchedule(t, repo, 1)
	ctx := context.Background()
	commitUC := newCommitUC(repo)

	b, err := commitUC.Execute(ctx, 42, sch.ID, futureFridayAt(9, 0))
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	if _, err := NewCancelBooking(repo, nil, nil).Execute(ctx, b.Code, nil); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// a vaga volta: outro paciente ocupa o mesmo slot
	if _, err := commitUC.Execute(ctx, 43, sch.ID, futureFridayAt(9, 0)); err != nil {
		t.Errorf("slot liberado recusou novo commit: %v", err)
	}
}

func TestConfirmThenAttend(t *testing.T) {
	repo := newFakeRepo()
	sch := seedFridaySchedule(t, repo, 1)
	ctx := context.Background()

	b, err := newCommitUC(repo).Execute(ctx, 42, sch.ID, futureFridayAt(9, 0))
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	attendUC := NewAttendBooking(repo, nil)

	// attend direto de reserved é inválido
	if _, err := attendUC.Execute(ctx, b.Code, nil); err == nil {
		t.Error("attend sem confirm deveria falhar")
	}

	confirmed, err := NewConfirmBooking(repo, nil).Execute(ctx, b.Code, nil)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != string(domain.StatusConfirmed) || confirmed.ConfirmedAt == nil {
		t.Errorf("confirm não registrou: %+v", confirmed)
	}

	attended, err := attendUC.Execute(ctx, b.Code, nil)
	if err != nil {
		t.Fatalf("attend: %v", err)
	}
	if attended.Status != string(domain.StatusAttended) || attended.AttendedAt == nil {
		t.Errorf("attend não registrou: %+v", attended)
	}

	// estado terminal
	if _, err := NewConfirmBooking(repo, nil).Execute(ctx, b.Code, nil); err == nil {
		t.Error("confirm sobre attended deveria falhar")
	}
}

func TestMarkNoShowRespectsSlotEnd(t *testing.T) {
	repo := newFakeRepo()
	sch := seedFridaySchedule(t, repo, 1)
	ctx := context.Background()
	noShowUC := NewMarkNoShow(repo, nil)

	// reserva futura: ainda não há falta a registrar
	b, err := newCommitUC(repo).Execute(ctx, 42, sch.ID, futureFridayAt(9, 0))
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	var inv *domain.InvalidTransitionError
	if _, err := noShowUC.Execute(ctx, b.Code, nil); !errors.As(err, &inv) {
		t.Errorf("no_show antes do fim do slot: got %v", err)
	}

	// consulta já encerrada: falta pode ser marcada
	pastStart := futureFridayAt(9, 0).AddDate(0, 0, -7)
	past := models.Booking{
		Code:           "past-booking",
		PatientID:      42,
		PractitionerID: sch.PractitionerID,
		ScheduleID:     sch.ID,
		SlotStart:      pastStart,
		SlotEnd:        pastStart.Add(20 * time.Minute),
		Status:         string(domain.StatusReserved),
	}
	repo.mu.Lock()
	repo.nextID++
	past.ID = repo.nextID
	repo.bookings = append(repo.bookings, past)
	repo.mu.Unlock()

	marked, err := noShowUC.Execute(ctx, past.Code, nil)
	if err != nil {
		t.Fatalf("no_show após o slot: %v", err)
	}
	if marked.Status != string(domain.StatusNoShow) {
		t.Errorf("Status = %s, want no_show", marked.Status)
	}
}

func TestBookingNotFound(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	if _, err := NewCancelBooking(repo, nil, nil).Execute(ctx, "nope", nil); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Errorf("cancel de code inexistente: got %v", err)
	}
	if _, err := NewConfirmBooking(repo, nil).Execute(ctx, "nope", nil); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Errorf("confirm de code inexistente: got %v", err)
	}
}

package agenda

import (
	"context"
	"time"

	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute monta a agenda de um médico num intervalo [from, to).
func (uc *ListBookings) Execute(
	ctx context.Context,
	practitionerID uint,
	from time.Time,
	to time.Time,
) ([]dto.AgendaEntryDTO, error) {

	bookings, err := uc.repo.ListBookingsForPractitioner(ctx, practitionerID, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AgendaEntryDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.AgendaEntryDTO{
			Code:        b.Code,
			SlotStart:   b.SlotStart,
			SlotEnd:     b.SlotEnd,
			Status:      b.Status,
			Modality:    b.Modality,
			PatientName: b.Patient.Name,
		})
	}

	return out, nil
}

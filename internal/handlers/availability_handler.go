package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/dto"
	"github.com/h3nr7M3d/Praxia-sub000/internal/httperr"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
	"github.com/h3nr7M3d/Praxia-sub000/internal/timezone"
	ucAgenda "github.com/h3nr7M3d/Praxia-sub000/internal/usecase/agenda"
)

type AvailabilityHandler struct {
	db   *gorm.DB
	list *ucAgenda.ListAvailability
}

func NewAvailabilityHandler(db *gorm.DB, list *ucAgenda.ListAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, list: list}
}

// List é consulta pública de disponibilidade. Todos os filtros são
// opcionais; sem data o horizonte padrão conta a partir de hoje.
//
// GET /api/public/availability?practitioner_id=&location_id=&specialty_id=&modality=&date_from=&date_to=
func (h *AvailabilityHandler) List(c *gin.Context) {

	in := ucAgenda.AvailabilityInput{}

	var parseErr bool
	in.PractitionerID = queryUint(c, "practitioner_id", &parseErr)
	in.LocationID = queryUint(c, "location_id", &parseErr)
	in.SpecialtyID = queryUint(c, "specialty_id", &parseErr)
	if parseErr {
		httperr.BadRequest(c, "invalid_filter", "Filtro numérico inválido.")
		return
	}

	if m := c.Query("modality"); m != "" {
		if m != models.ModalityInPerson && m != models.ModalityVirtual {
			httperr.BadRequest(c, "invalid_modality", "Modalidade inválida.")
			return
		}
		in.Modality = &m
	}

	now := timezone.Now()

	if d := c.Query("date_from"); d != "" {
		t, err := time.ParseInLocation("2006-01-02", d, now.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_date_from", "Data inicial inválida.")
			return
		}
		in.DateFrom = t
	}
	if d := c.Query("date_to"); d != "" {
		t, err := time.ParseInLocation("2006-01-02", d, now.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_date_to", "Data final inválida.")
			return
		}
		in.DateTo = t
	}

	slots, err := h.list.Execute(c.Request.Context(), in, now)
	if err != nil {
		httperr.FromAgenda(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": h.decorate(slots)})
}

// decorate anexa nomes de médico/especialidade/sede aos slots. Dados de
// referência são só rótulo de exibição; falha aqui não derruba a consulta.
func (h *AvailabilityHandler) decorate(slots []agenda.Slot) []dto.SlotDTO {

	seen := make(map[uint]struct{}, len(slots))
	ids := make([]uint, 0, len(slots))
	for _, s := range slots {
		if _, ok := seen[s.ScheduleID]; ok {
			continue
		}
		seen[s.ScheduleID] = struct{}{}
		ids = append(ids, s.ScheduleID)
	}

	byID := make(map[uint]models.Schedule, len(ids))
	if len(ids) > 0 {
		var schedules []models.Schedule
		if err := h.db.
			Preload("Practitioner").
			Preload("Specialty").
			Preload("Location").
			Where("id IN ?", ids).
			Find(&schedules).Error; err == nil {
			for _, sch := range schedules {
				byID[sch.ID] = sch
			}
		}
	}

	out := make([]dto.SlotDTO, 0, len(slots))
	for _, s := range slots {
		row := dto.SlotDTO{
			ScheduleID:     s.ScheduleID,
			PractitionerID: s.PractitionerID,
			Modality:       s.Modality,
			Start:          s.Start,
			End:            s.End,
			Capacity:       s.Capacity,
			OccupiedCount:  s.OccupiedCount,
			Status:         string(s.Status),
		}
		if sch, ok := byID[s.ScheduleID]; ok {
			row.PractitionerName = sch.Practitioner.Name
			row.SpecialtyName = sch.Specialty.Name
			if sch.Location != nil {
				row.LocationName = sch.Location.Name
			}
		}
		out = append(out, row)
	}
	return out
}

func queryUint(c *gin.Context, name string, parseErr *bool) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		*parseErr = true
		return nil
	}
	u := uint(v)
	return &u
}

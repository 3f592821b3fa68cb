package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/h3nr7M3d/Praxia-sub000/internal/httperr"
	"github.com/h3nr7M3d/Praxia-sub000/internal/middleware"
	"github.com/h3nr7M3d/Praxia-sub000/internal/timezone"
	ucAgenda "github.com/h3nr7M3d/Praxia-sub000/internal/usecase/agenda"
)

// AgendaHandler serve a visão de agenda do portal do médico: as reservas
// de um dia, em ordem de horário.
type AgendaHandler struct {
	list *ucAgenda.ListBookings
}

func NewAgendaHandler(list *ucAgenda.ListBookings) *AgendaHandler {
	return &AgendaHandler{list: list}
}

// GET /api/agenda?date=YYYY-MM-DD&practitioner_id=
// Médico autenticado consulta a própria agenda; recepção/admin indicam o
// médico via practitioner_id.
func (h *AgendaHandler) ListByDate(c *gin.Context) {

	roleVal, _ := c.Get(middleware.ContextUserRole)
	role, _ := roleVal.(string)

	var practitionerID uint
	if role == middleware.RoleMedico {
		userIDVal, _ := c.Get(middleware.ContextUserID)
		practitionerID, _ = userIDVal.(uint)
	} else {
		var parseErr bool
		id := queryUint(c, "practitioner_id", &parseErr)
		if parseErr || id == nil {
			httperr.BadRequest(c, "missing_practitioner_id", "Informe o médico.")
			return
		}
		practitionerID = *id
	}

	now := timezone.Now()

	date := now
	if d := c.Query("date"); d != "" {
		t, err := time.ParseInLocation("2006-01-02", d, now.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		date = t
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	entries, err := h.list.Execute(c.Request.Context(), practitionerID, start, end)
	if err != nil {
		httperr.FromAgenda(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"agenda": entries})
}

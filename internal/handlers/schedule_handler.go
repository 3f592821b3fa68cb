package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
	"github.com/h3nr7M3d/Praxia-sub000/internal/httperr"
	"github.com/h3nr7M3d/Praxia-sub000/internal/models"
	"github.com/h3nr7M3d/Praxia-sub000/internal/timezone"
	ucAgenda "github.com/h3nr7M3d/Praxia-sub000/internal/usecase/agenda"
)

type ScheduleHandler struct {
	repo    domain.Repository
	create  *ucAgenda.CreateSchedule
	disable *ucAgenda.DisableSchedule
}

func NewScheduleHandler(
	repo domain.Repository,
	create *ucAgenda.CreateSchedule,
	disable *ucAgenda.DisableSchedule,
) *ScheduleHandler {
	return &ScheduleHandler{
		repo:    repo,
		create:  create,
		disable: disable,
	}
}

type CreateScheduleRequest struct {
	PractitionerID uint   `json:"practitioner_id" binding:"required"`
	LocationID     *uint  `json:"location_id"`
	SpecialtyID    uint   `json:"specialty_id" binding:"required"`
	Modality       string `json:"modality" binding:"required"`

	Weekday   *int    `json:"weekday"`
	FixedDate *string `json:"fixed_date"` // YYYY-MM-DD

	StartTime string `json:"start_time" binding:"required"` // HH:mm
	EndTime   string `json:"end_time" binding:"required"`   // HH:mm

	SlotMinutes  int `json:"slot_minutes" binding:"required"`
	SlotCapacity int `json:"slot_capacity"`

	EffectiveFrom  string  `json:"effective_from" binding:"required"` // YYYY-MM-DD
	EffectiveUntil *string `json:"effective_until"`
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	loc := timezone.Location("")

	sch := &models.Schedule{
		PractitionerID: req.PractitionerID,
		LocationID:     req.LocationID,
		SpecialtyID:    req.SpecialtyID,
		Modality:       req.Modality,
		Weekday:        req.Weekday,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		SlotMinutes:    req.SlotMinutes,
		SlotCapacity:   req.SlotCapacity,
	}
	if sch.SlotCapacity == 0 {
		sch.SlotCapacity = 1
	}

	if req.FixedDate != nil {
		d, err := time.ParseInLocation("2006-01-02", *req.FixedDate, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_fixed_date", "Data avulsa inválida.")
			return
		}
		sch.FixedDate = &d
	}

	from, err := time.ParseInLocation("2006-01-02", req.EffectiveFrom, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_effective_from", "Início de vigência inválido.")
		return
	}
	sch.EffectiveFrom = from

	if req.EffectiveUntil != nil {
		until, err := time.ParseInLocation("2006-01-02", *req.EffectiveUntil, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_effective_until", "Fim de vigência inválido.")
			return
		}
		sch.EffectiveUntil = &until
	}

	created, err := h.create.Execute(c.Request.Context(), sch, actorID(c))
	if err != nil {
		httperr.FromAgenda(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ScheduleHandler) List(c *gin.Context) {
	var parseErr bool
	filter := domain.ScheduleFilter{
		PractitionerID:  queryUint(c, "practitioner_id", &parseErr),
		LocationID:      queryUint(c, "location_id", &parseErr),
		SpecialtyID:     queryUint(c, "specialty_id", &parseErr),
		IncludeDisabled: c.Query("include_disabled") == "true",
	}
	if parseErr {
		httperr.BadRequest(c, "invalid_filter", "Filtro numérico inválido.")
		return
	}
	if m := c.Query("modality"); m != "" {
		filter.Modality = &m
	}

	schedules, err := h.repo.ListSchedules(c.Request.Context(), filter)
	if err != nil {
		httperr.FromAgenda(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

func (h *ScheduleHandler) Disable(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_schedule_id", "ID inválido.")
		return
	}

	if err := h.disable.Execute(c.Request.Context(), uint(id), actorID(c)); err != nil {
		httperr.FromAgenda(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

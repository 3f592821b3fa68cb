package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/h3nr7M3d/Praxia-sub000/internal/httperr"
	"github.com/h3nr7M3d/Praxia-sub000/internal/middleware"
	ucAgenda "github.com/h3nr7M3d/Praxia-sub000/internal/usecase/agenda"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	commit  *ucAgenda.CommitBooking
	cancel  *ucAgenda.CancelBooking
	confirm *ucAgenda.ConfirmBooking
	attend  *ucAgenda.AttendBooking
	noShow  *ucAgenda.MarkNoShow
}

func NewBookingHandler(
	commit *ucAgenda.CommitBooking,
	cancel *ucAgenda.CancelBooking,
	confirm *ucAgenda.ConfirmBooking,
	attend *ucAgenda.AttendBooking,
	noShow *ucAgenda.MarkNoShow,
) *BookingHandler {
	return &BookingHandler{
		commit:  commit,
		cancel:  cancel,
		confirm: confirm,
		attend:  attend,
		noShow:  noShow,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	PatientID  uint   `json:"patient_id" binding:"required"`
	ScheduleID uint   `json:"schedule_id" binding:"required"`
	SlotStart  string `json:"slot_start" binding:"required"` // RFC 3339
}

////////////////////////////////////////////////////////
// CREATE (commit com disputa de capacidade)
////////////////////////////////////////////////////////

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slotStart, err := time.Parse(time.RFC3339, req.SlotStart)
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_start", "slot_start precisa ser RFC 3339.")
		return
	}

	booking, err := h.commit.Execute(
		c.Request.Context(),
		req.PatientID,
		req.ScheduleID,
		slotStart,
	)
	if err != nil {
		httperr.FromAgenda(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

////////////////////////////////////////////////////////
// TRANSIÇÕES DE ESTADO
////////////////////////////////////////////////////////

func (h *BookingHandler) Cancel(c *gin.Context) {
	actor := actorID(c)

	booking, err := h.cancel.Execute(c.Request.Context(), c.Param("code"), actor)
	if err != nil {
		httperr.FromAgenda(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	actor := actorID(c)

	booking, err := h.confirm.Execute(c.Request.Context(), c.Param("code"), actor)
	if err != nil {
		httperr.FromAgenda(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Attend(c *gin.Context) {
	actor := actorID(c)

	booking, err := h.attend.Execute(c.Request.Context(), c.Param("code"), actor)
	if err != nil {
		httperr.FromAgenda(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) NoShow(c *gin.Context) {
	actor := actorID(c)

	booking, err := h.noShow.Execute(c.Request.Context(), c.Param("code"), actor)
	if err != nil {
		httperr.FromAgenda(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func actorID(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/h3nr7M3d/Praxia-sub000/internal/domain/agenda"
)

type HTTPError struct {
	Code    string   `json:"error_code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromAgenda traduz os erros tipados do motor de agenda para a resposta
// HTTP. Qualquer erro não reconhecido vira 500 sem ser engolido.
func FromAgenda(c *gin.Context, err error) {
	var vErr *agenda.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "validation_failed",
			Message: "Campos inválidos no schedule.",
			Fields:  vErr.Fields,
		})
		return
	}

	var capErr *agenda.CapacityExceededError
	if errors.As(err, &capErr) {
		// resultado esperado de negócio: o cliente deve reconsultar e
		// oferecer outro slot
		Conflict(c, "capacity_exceeded", "O horário acabou de lotar.")
		return
	}

	var trErr *agenda.InvalidTransitionError
	if errors.As(err, &trErr) {
		Write(c, http.StatusUnprocessableEntity, "invalid_state_transition", trErr.Error())
		return
	}

	switch {
	case errors.Is(err, agenda.ErrSlotBusy):
		Write(c, http.StatusLocked, "slot_busy", "Horário em disputa, tente novamente.")
	case errors.Is(err, agenda.ErrScheduleNotFound):
		NotFound(c, "schedule_not_found", "Schedule não encontrado.")
	case errors.Is(err, agenda.ErrBookingNotFound):
		NotFound(c, "booking_not_found", "Reserva não encontrada.")
	default:
		var be BusinessError
		if errors.As(err, &be) {
			BadRequest(c, be.Code, be.Code)
			return
		}
		Internal(c, "internal_error", "Erro interno.")
	}
}

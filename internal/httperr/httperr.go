package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frenetico9/Corte-Digital/internal/domain/schedule"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
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

// ======================================================
// Mapeamento de erros de domínio
// ======================================================

// Códigos de negócio que representam disputa por horário (409).
var conflictCodes = map[string]bool{
	"slot_unavailable": true,
	"time_conflict":    true,
	"invalid_state":    true,
}

var messages = map[string]string{
	"slot_unavailable":     "Horário indisponível.",
	"time_conflict":        "Horário indisponível.",
	"invalid_state":        "O agendamento não pode mudar de status.",
	"barber_not_assigned":  "O barbeiro não realiza um dos serviços escolhidos.",
	"invalid_date_or_time": "Data ou horário inválidos.",
}

// Respond traduz err para a resposta HTTP. Erros desconhecidos viram 500
// sem detalhes para o cliente.
func Respond(c *gin.Context, err error) {
	var (
		invalid  *schedule.InvalidArgumentError
		notFound *schedule.NotFoundError
		cfgErr   *schedule.ConfigError
		business BusinessError
	)

	switch {
	case errors.As(err, &invalid):
		BadRequest(c, "invalid_"+invalid.Field, invalid.Error())
	case errors.As(err, &cfgErr):
		BadRequest(c, "invalid_"+cfgErr.Field, cfgErr.Error())
	case errors.As(err, &notFound):
		NotFound(c, notFound.Entity+"_not_found", notFound.Error())
	case errors.As(err, &business):
		msg := messages[business.Code]
		if msg == "" {
			msg = business.Code
		}
		if conflictCodes[business.Code] {
			Conflict(c, business.Code, msg)
			return
		}
		BadRequest(c, business.Code, msg)
	case IsExclusionConflict(err), IsUniqueViolation(err):
		Conflict(c, "slot_unavailable", messages["slot_unavailable"])
	default:
		Internal(c, "internal_error", "Erro interno.")
	}
}

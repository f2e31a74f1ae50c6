package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MsgInternal is the generic 500 message. Internal error detail never
// reaches the client; it only goes to the log.
const MsgInternal = "Algo deu errado. Tente novamente."

// MsgValidation is the default 400 message for malformed request bodies.
const MsgValidation = "Dados inválidos. Verifique os campos."

// StatusError couples an HTTP status with a client-facing message. Services
// return these for expected conditions (not found, conflict, bad
// credentials); anything else degrades to a generic 500 at the edge.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// BadRequest builds a 400 StatusError.
func BadRequest(message string) *StatusError {
	return &StatusError{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized builds a 401 StatusError.
func Unauthorized(message string) *StatusError {
	return &StatusError{Status: http.StatusUnauthorized, Message: message}
}

// NotFound builds a 404 StatusError.
func NotFound(message string) *StatusError {
	return &StatusError{Status: http.StatusNotFound, Message: message}
}

// Conflict builds a 409 StatusError.
func Conflict(message string) *StatusError {
	return &StatusError{Status: http.StatusConflict, Message: message}
}

// Error maps an error onto the failure envelope: StatusError keeps its
// status and message, everything else becomes a generic 500.
func Error(c *gin.Context, err error) {
	var se *StatusError
	if errors.As(err, &se) {
		Fail(c, se.Status, se.Message)
		return
	}
	Fail(c, http.StatusInternalServerError, MsgInternal)
}

// BareError maps an error onto the bare `{erro: ...}` shape used by the
// transaction routes. fallback is the fixed 500 message for that route.
func BareError(c *gin.Context, err error, fallback string) {
	var se *StatusError
	if errors.As(err, &se) {
		c.JSON(se.Status, gin.H{"erro": se.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"erro": fallback})
}

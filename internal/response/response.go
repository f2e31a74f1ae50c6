package response

import "github.com/gin-gonic/gin"

// The API speaks the envelope `{success, error, message?, ...}` on the
// administrative routes. The dashboard and transaction routes return bare
// objects instead (see Bare* helpers); that asymmetry is part of the wire
// contract the dispenser and the frontend already depend on.

// Success sends a success envelope. Extra keys (e.g. "data", "aluno",
// "token") are merged into the envelope; message is omitted when empty.
func Success(c *gin.Context, statusCode int, message string, extra gin.H) {
	body := gin.H{
		"success": true,
		"error":   false,
	}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Fail sends a failure envelope with a client-facing message.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   true,
		"message": message,
	})
}

// FailWithFields sends a failure envelope with field-level validation detail.
func FailWithFields(c *gin.Context, statusCode int, message string, fields map[string]string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   true,
		"message": message,
		"fields":  fields,
	})
}

// AbortFail aborts the middleware chain and sends a failure envelope.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"error":   true,
		"message": message,
	})
}

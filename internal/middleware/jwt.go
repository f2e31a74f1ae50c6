package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medikit/dispenser-backend/internal/response"
	"github.com/medikit/dispenser-backend/internal/service"
)

const (
	// ContextKeyAdminID is the Gin context key for the authenticated
	// administrator id. Only the numeric id crosses the middleware
	// boundary; handlers load anything else they need themselves.
	ContextKeyAdminID = "admin_id"

	// msgNaoAutorizado is the fixed 401 message. The underlying
	// cryptographic error is never exposed to the client.
	msgNaoAutorizado = "Não autorizado"
)

// RequireJWT validates the bearer token from the Authorization header and
// short-circuits with 401 before any persistence access on failure.
func RequireJWT(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearer(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, msgNaoAutorizado)
			return
		}

		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, msgNaoAutorizado)
			return
		}

		c.Set(ContextKeyAdminID, claims.AdminID)
		c.Next()
	}
}

// GetAdminID retrieves the authenticated administrator id from the context.
func GetAdminID(c *gin.Context) (int, bool) {
	val, exists := c.Get(ContextKeyAdminID)
	if !exists {
		return 0, false
	}
	id, ok := val.(int)
	return id, ok
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"onpauling/internal/pkg/jwt"
	"onpauling/internal/pkg/response"
)

const ctxAdminSubject = "admin_subject"

// AdminAuth requires "Authorization: Bearer <admin token>".
func AdminAuth(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(ctxAdminSubject, claims.Subject)
		c.Next()
	}
}

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"onpauling/internal/pkg/response"
)

const headerRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.Writer.Header().Set(headerRequestID, id)
		c.Next()
	}
}

// RequestLogger logs every request and recovers from panics. 5xx responses
// and gin errors are logged at error level.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("request_error",
					append(requestAttrs(c, start),
						"type", "panic",
						"error", fmt.Sprintf("%v", recovered),
						"stack", string(debug.Stack()),
					)...,
				)
				response.Abort(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
				return
			}

			if len(c.Errors) > 0 {
				for _, err := range c.Errors {
					log.Error("request_error", append(requestAttrs(c, start), "type", fmt.Sprintf("%v", err.Type), "error", err.Error())...)
				}
				return
			}

			if c.Writer.Status() >= http.StatusInternalServerError {
				log.Error("request_error", append(requestAttrs(c, start), "type", "http_error")...)
				return
			}
			log.Info("request", requestAttrs(c, start)...)
		}()

		c.Next()
	}
}

func requestAttrs(c *gin.Context, start time.Time) []any {
	return []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"client_ip", c.ClientIP(),
		"request_id", c.GetString(headerRequestID),
		"latency", time.Since(start),
	}
}

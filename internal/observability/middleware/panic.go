package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasks-management/reminder-engine/internal/observability/logging"
)

// PanicRecoveryGin converts a handler panic into a 500 response after logging
// it with the request's correlation id, then re-panics so the process-level
// recovery still sees it.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				ctx := c.Request.Context()

				slog.ErrorContext(ctx, "panic recovered",
					slog.String("event", "app.panic"),
					slog.String("request_id", logging.RequestIDFromContext(ctx)),
					slog.String("path", c.Request.URL.Path),
					slog.Any("error", rec),
				)

				c.AbortWithStatus(http.StatusInternalServerError)

				panic(rec)
			}
		}()

		c.Next()
	}
}

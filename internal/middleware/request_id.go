package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"personal-assistant/pkg/log"
)

// RequestID tags every request with an id, taken from X-Request-ID when the
// client sends one. The id is echoed back and attached to log lines.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		ctx := log.SetRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

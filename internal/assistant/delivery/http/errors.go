package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/assistant/session"
	"personal-assistant/pkg/response"
)

// respondError writes client errors as 400, unknown sessions as 404 and hides
// everything else behind 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		response.NotFound(c)
	case errors.Is(err, assistant.ErrEmptyInput),
		errors.Is(err, session.ErrInvalidSessionID),
		errors.Is(err, errBadRequest):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "assistant http: %v", err)
		response.InternalError(c, err)
	}
}

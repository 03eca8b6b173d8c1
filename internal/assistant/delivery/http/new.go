package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant/session"
	"personal-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	SendMessage(c *gin.Context)
	Capabilities(c *gin.Context)
	Status(c *gin.Context)
	History(c *gin.Context)
	ResetHistory(c *gin.Context)
	EndSession(c *gin.Context)
}

type handler struct {
	l    log.Logger
	pool *session.Pool
}

// New creates a new HTTP handler serving assistants from pool.
func New(l log.Logger, pool *session.Pool) Handler {
	return &handler{
		l:    l,
		pool: pool,
	}
}

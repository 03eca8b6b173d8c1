package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
)

var (
	errBadRequest     = errors.New("bad request")
	errMissingSession = fmt.Errorf("%w: %s header is required", errBadRequest, HeaderSessionID)
)

// acquire returns the caller's assistant, creating a session when the header
// is absent, and echoes the session id back.
func (h *handler) acquire(c *gin.Context) (*assistant.Assistant, error) {
	a, id, err := h.pool.Acquire(c.Request.Context(), c.GetHeader(HeaderSessionID), c.ClientIP())
	if err != nil {
		return nil, err
	}
	c.Header(HeaderSessionID, id)
	return a, nil
}

// lookup returns an existing session named by the header. It never creates one.
func (h *handler) lookup(c *gin.Context) (*assistant.Assistant, error) {
	id := c.GetHeader(HeaderSessionID)
	if id == "" {
		return nil, errMissingSession
	}
	a, err := h.pool.Lookup(id)
	if err != nil {
		return nil, err
	}
	c.Header(HeaderSessionID, a.Scope().SessionID)
	return a, nil
}

func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return req, req.validate()
}

func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return req, req.validate()
}

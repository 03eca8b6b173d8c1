package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/pkg/response"
)

// SendMessage godoc
// @Summary     Send a message to the assistant
// @Description Routes the text to the first plugin that accepts it, or to the conversational fallback. Pass X-Session-ID to continue a session; a new one is issued when the header is absent. An expired or unknown session id is rejected with 404.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string         false "Session id"
// @Param       body         body   sendMessageReq true  "Message"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	a, err := h.acquire(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	reply, err := a.Handle(ctx, req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if reply.Err != nil {
		h.l.Warnf(ctx, "assistant http: session %s: %v", a.Scope().SessionID, reply.Err)
	}

	response.OK(c, newMessageResp(a.Scope().SessionID, reply))
}

// Capabilities godoc
// @Summary     List plugin capabilities
// @Description Without X-Session-ID the capabilities of a new session are returned and no session is created.
// @Tags        Assistant
// @Produce     json
// @Param       X-Session-ID header string false "Session id"
// @Success     200 {object} capabilitiesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/capabilities [GET]
func (h *handler) Capabilities(c *gin.Context) {
	if c.GetHeader(HeaderSessionID) == "" {
		descs, err := h.pool.Describe()
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.OK(c, newCapabilitiesResp(descs))
		return
	}

	a, err := h.lookup(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newCapabilitiesResp(a.Capabilities()))
}

// Status godoc
// @Summary     Get session status
// @Tags        Assistant
// @Produce     json
// @Param       X-Session-ID header string true "Session id"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/status [GET]
func (h *handler) Status(c *gin.Context) {
	a, err := h.lookup(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newStatusResp(a.Scope().SessionID, a.Status()))
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the most recent exchanges of the session, oldest first.
// @Tags        Assistant
// @Produce     json
// @Param       X-Session-ID header string true  "Session id"
// @Param       limit        query  int    false "Number of exchanges (default: 20)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/history [GET]
func (h *handler) History(c *gin.Context) {
	req, err := h.processHistoryReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	a, err := h.lookup(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newHistoryResp(a.History(req.limit()), a.Status().HistorySize))
}

// ResetHistory godoc
// @Summary     Reset conversation history
// @Description Clears the history of an existing session. Plugin state such as tasks is kept.
// @Tags        Assistant
// @Produce     json
// @Param       X-Session-ID header string true "Session id"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/history [DELETE]
func (h *handler) ResetHistory(c *gin.Context) {
	a, err := h.lookup(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	a.ResetHistory()
	response.OK(c, nil)
}

// EndSession godoc
// @Summary     End a session
// @Description Drops the session with its history and plugin state.
// @Tags        Assistant
// @Produce     json
// @Param       X-Session-ID header string true "Session id"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/session [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	id := c.GetHeader(HeaderSessionID)
	if id == "" {
		h.respondError(c, errMissingSession)
		return
	}

	if err := h.pool.Remove(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, nil)
}

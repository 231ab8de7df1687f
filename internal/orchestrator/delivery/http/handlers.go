package http

import (
	"github.com/gin-gonic/gin"

	"github.com/idreesmuhammadqazi-create/MUN/pkg/response"
)

// GetSession godoc
// @Summary     Get session snapshot
// @Description Returns the phase, representation, message history and documents of a session.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, ErrMissingID, nil)
		return
	}

	sess, ok := h.uc.Session(id)
	if !ok {
		response.NotFound(c, ErrSessionNotFound)
		return
	}
	response.OK(c, newSessionResp(sess))
}

// SchedulerStatus godoc
// @Summary     Scheduler status
// @Description Returns in-flight tasks and queue length, optionally for one session.
// @Tags        Scheduler
// @Produce     json
// @Param       session_id query string false "Limit to one session"
// @Success     200 {object} schedulerStatusResp
// @Router      /api/v1/scheduler/status [GET]
func (h *handler) SchedulerStatus(c *gin.Context) {
	response.OK(c, newSchedulerStatusResp(h.uc.SchedulerStatus(c.Query("session_id"))))
}

// ConnectionCount godoc
// @Summary     Live connection count
// @Tags        Connections
// @Produce     json
// @Success     200 {object} connectionCountResp
// @Router      /api/v1/connections/count [GET]
func (h *handler) ConnectionCount(c *gin.Context) {
	response.OK(c, connectionCountResp{Count: h.uc.ConnectionCount()})
}

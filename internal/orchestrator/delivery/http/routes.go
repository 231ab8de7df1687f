package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the read-only query endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/sessions/:id", h.GetSession)
	rg.GET("/scheduler/status", h.SchedulerStatus)
	rg.GET("/connections/count", h.ConnectionCount)
}

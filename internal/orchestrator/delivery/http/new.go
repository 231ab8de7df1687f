package http

import (
	"github.com/gin-gonic/gin"

	"github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator"
	pkgLog "github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

// Handler is the REST delivery layer for session and scheduler queries.
type Handler interface {
	GetSession(c *gin.Context)
	SchedulerStatus(c *gin.Context)
	ConnectionCount(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc orchestrator.UseCase
}

// New creates the REST handler.
func New(l pkgLog.Logger, uc orchestrator.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

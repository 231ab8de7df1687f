package httpserver

import (
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/idreesmuhammadqazi-create/MUN/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "mun-coordinator"
)

// Component state labels reported by /health and /ready.
const (
	ComponentRunning = "running"
	ComponentStopped = "stopped"
)

// Component is a background loop whose state gates readiness.
type Component interface {
	Running() bool
}

// componentStates returns each component's state and whether all are running.
func (srv HTTPServer) componentStates() (map[string]string, bool) {
	names := make([]string, 0, len(srv.components))
	for name := range srv.components {
		names = append(names, name)
	}
	sort.Strings(names)

	states := make(map[string]string, len(names))
	ready := true
	for _, name := range names {
		if srv.components[name].Running() {
			states[name] = ComponentRunning
			continue
		}
		states[name] = ComponentStopped
		ready = false
	}
	return states, ready
}

// healthCheck reports component states and uptime. It always answers 200;
// use /ready to gate traffic.
// @Summary Health Check
// @Description Report coordinator component states and uptime
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	states, ready := srv.componentStates()
	status := "healthy"
	if !ready {
		status = "degraded"
	}
	response.OK(c, gin.H{
		"status":     status,
		"service":    ServiceName,
		"version":    HealthVersion,
		"uptime":     time.Since(srv.startedAt).Round(time.Second).String(),
		"components": states,
	})
}

// readyCheck answers 503 until the scheduler and connection sweeper are running.
// @Summary Readiness Check
// @Description Ready once every background component is running
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	states, ready := srv.componentStates()
	if !ready {
		response.ServiceUnavailable(c, gin.H{
			"status":     "not_ready",
			"service":    ServiceName,
			"components": states,
		})
		return
	}
	response.OK(c, gin.H{
		"status":     "ready",
		"service":    ServiceName,
		"components": states,
	})
}

// liveCheck answers as long as the process can serve HTTP.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}

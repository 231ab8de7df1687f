package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	orchestratorHTTP "github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator/delivery/http"
	orchestratorWS "github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator/delivery/websocket"
	"github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	startedAt   time.Time
	components  map[string]Component

	// Orchestrator domain
	wsPath              string
	wsHandler           orchestratorWS.Handler
	orchestratorHandler orchestratorHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Components gate /ready; every one must report Running.
	Components map[string]Component

	// Orchestrator domain
	WSPath              string
	WSHandler           orchestratorWS.Handler
	OrchestratorHandler orchestratorHTTP.Handler
}

const DefaultWSPath = "/ws"

// New creates a new HTTPServer instance with every route mounted.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	wsPath := cfg.WSPath
	if wsPath == "" {
		wsPath = DefaultWSPath
	}

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		startedAt:           time.Now(),
		components:          cfg.Components,
		wsPath:              wsPath,
		wsHandler:           cfg.WSHandler,
		orchestratorHandler: cfg.OrchestratorHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.wsHandler == nil {
		return errors.New("websocket handler is required")
	}
	for name, comp := range srv.components {
		if comp == nil {
			return errors.New("component " + name + " is nil")
		}
	}
	return nil
}

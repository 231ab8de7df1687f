package websocket

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"

	"github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator"
	pkgLog "github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

// Handler is the websocket delivery handler.
type Handler interface {
	Serve(c *gin.Context)
}

// Config controls websocket connections.
type Config struct {
	ReadLimitBytes  int64
	SendBuffer      int
	WriteTimeout    time.Duration
	RateLimitPerMin int
	AllowedOrigins  []string
}

const (
	DefaultReadLimitBytes  = 1 << 20
	DefaultSendBuffer      = 64
	DefaultWriteTimeout    = 10 * time.Second
	DefaultRateLimitPerMin = 120
)

type handler struct {
	l        pkgLog.Logger
	uc       orchestrator.UseCase
	cfg      Config
	upgrader gws.Upgrader
	limiter  *rateLimiter
}

// New creates the websocket handler. Zero config values take the defaults.
func New(l pkgLog.Logger, uc orchestrator.UseCase, cfg Config) Handler {
	if cfg.ReadLimitBytes <= 0 {
		cfg.ReadLimitBytes = DefaultReadLimitBytes
	}
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = DefaultSendBuffer
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = DefaultRateLimitPerMin
	}

	h := &handler{
		l:       l,
		uc:      uc,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
	h.upgrader = gws.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// checkOrigin allows every origin when no allow-list is configured.
func (h *handler) checkOrigin(r *http.Request) bool {
	if len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return slices.Contains(h.cfg.AllowedOrigins, origin)
}

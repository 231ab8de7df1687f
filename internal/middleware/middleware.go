package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/idreesmuhammadqazi-create/MUN/pkg/response"
)

// Log prefixes
const (
	LogPrefixRequest  = "internal.middleware.Logging"
	LogPrefixRecovery = "internal.middleware.Recovery"
)

// Logging writes one line per request. Websocket upgrades log when the connection ends.
func (mw Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			mw.l.Errorf(ctx, "%s: %s %s %d %s", LogPrefixRequest, c.Request.Method, c.Request.URL.Path, status, latency)
		case status >= http.StatusBadRequest:
			mw.l.Warnf(ctx, "%s: %s %s %d %s", LogPrefixRequest, c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			mw.l.Debugf(ctx, "%s: %s %s %d %s", LogPrefixRequest, c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}

// Recovery turns a handler panic into a 500 envelope.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		mw.l.Errorf(c.Request.Context(), "%s: panic on %s %s: %v", LogPrefixRecovery, c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Resp{
			ErrorCode: response.InternalServerErrorCode,
			Message:   response.DefaultErrorMessage,
		})
	})
}

package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/idreesmuhammadqazi-create/MUN/pkg/response"
)

type recordingLogger struct {
	mu     sync.Mutex
	levels []string
}

func (r *recordingLogger) add(level string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levels = append(r.levels, level)
}

func (r *recordingLogger) Debug(ctx context.Context, args ...any)                  { r.add("debug") }
func (r *recordingLogger) Debugf(ctx context.Context, format string, args ...any)  { r.add("debug") }
func (r *recordingLogger) Info(ctx context.Context, args ...any)                   { r.add("info") }
func (r *recordingLogger) Infof(ctx context.Context, format string, args ...any)   { r.add("info") }
func (r *recordingLogger) Warn(ctx context.Context, args ...any)                   { r.add("warn") }
func (r *recordingLogger) Warnf(ctx context.Context, format string, args ...any)   { r.add("warn") }
func (r *recordingLogger) Error(ctx context.Context, args ...any)                  { r.add("error") }
func (r *recordingLogger) Errorf(ctx context.Context, format string, args ...any)  { r.add("error") }
func (r *recordingLogger) DPanic(ctx context.Context, args ...any)                 {}
func (r *recordingLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (r *recordingLogger) Panic(ctx context.Context, args ...any)                  {}
func (r *recordingLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (r *recordingLogger) Fatal(ctx context.Context, args ...any)                  {}
func (r *recordingLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newEngine(l *recordingLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(l)
	r := gin.New()
	r.Use(mw.Logging(), mw.Recovery())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	tcs := map[string]string{
		"/ok":  "debug",
		"/bad": "warn",
	}
	for path, want := range tcs {
		t.Run(path, func(t *testing.T) {
			l := &recordingLogger{}
			w := httptest.NewRecorder()
			newEngine(l).ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			if len(l.levels) != 1 || l.levels[0] != want {
				t.Errorf("expected one %s line, got %v", want, l.levels)
			}
		})
	}
}

func TestRecovery_ReturnsEnvelope(t *testing.T) {
	l := &recordingLogger{}
	w := httptest.NewRecorder()
	newEngine(l).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ErrorCode != response.InternalServerErrorCode {
		t.Errorf("expected error code %d, got %d", response.InternalServerErrorCode, body.ErrorCode)
	}
	if fmt.Sprint(l.levels) != "[error error]" {
		t.Errorf("expected recovery and request error lines, got %v", l.levels)
	}
}

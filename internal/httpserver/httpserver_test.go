package httpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubWS struct{ served int }

func (s *stubWS) Serve(c *gin.Context) {
	s.served++
	c.Status(http.StatusSwitchingProtocols)
}

type stubREST struct{}

func (stubREST) GetSession(c *gin.Context)      { c.String(http.StatusOK, "session:"+c.Param("id")) }
func (stubREST) SchedulerStatus(c *gin.Context) { c.String(http.StatusOK, "status") }
func (stubREST) ConnectionCount(c *gin.Context) { c.String(http.StatusOK, "count") }

type stubComponent struct{ running bool }

func (s *stubComponent) Running() bool { return s.running }

func newTestServer(t *testing.T, ws *stubWS, components map[string]Component) *HTTPServer {
	t.Helper()
	srv, err := New(&mockLogger{}, Config{
		Port:                8080,
		Mode:                gin.TestMode,
		Environment:         "test",
		Components:          components,
		WSPath:              "/ws",
		WSHandler:           ws,
		OrchestratorHandler: stubREST{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	tcs := map[string]Config{
		"missing mode":  {Port: 1, WSHandler: &stubWS{}},
		"missing port":  {Mode: gin.TestMode, WSHandler: &stubWS{}},
		"missing ws":    {Port: 1, Mode: gin.TestMode},
		"nil component": {Port: 1, Mode: gin.TestMode, WSHandler: &stubWS{}, Components: map[string]Component{"scheduler": nil}},
	}
	for name, cfg := range tcs {
		t.Run(name, func(t *testing.T) {
			if _, err := New(&mockLogger{}, cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	ws := &stubWS{}
	srv := newTestServer(t, ws, nil)

	tcs := []struct {
		path string
		code int
		body string
	}{
		{"/api/v1/sessions/s1", http.StatusOK, "session:s1"},
		{"/api/v1/scheduler/status", http.StatusOK, "status"},
		{"/api/v1/connections/count", http.StatusOK, "count"},
		{"/missing", http.StatusNotFound, ""},
	}
	for _, tc := range tcs {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if tc.body != "" && w.Body.String() != tc.body {
				t.Errorf("expected body %q, got %q", tc.body, w.Body.String())
			}
		})
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	if ws.served != 1 {
		t.Errorf("expected websocket handler to be called once, got %d", ws.served)
	}
}

type healthBody struct {
	ErrorCode int `json:"error_code"`
	Data      struct {
		Status     string            `json:"status"`
		Service    string            `json:"service"`
		Components map[string]string `json:"components"`
	} `json:"data"`
}

func getHealth(t *testing.T, srv *HTTPServer, path string) (int, healthBody) {
	t.Helper()
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body healthBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("%s: decode: %v", path, err)
	}
	return w.Code, body
}

func TestHealthRoutes(t *testing.T) {
	sched := &stubComponent{running: true}
	conns := &stubComponent{running: true}
	srv := newTestServer(t, &stubWS{}, map[string]Component{"scheduler": sched, "connections": conns})

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		code, body := getHealth(t, srv, path)
		if code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, code)
		}
		if body.Data.Status != status || body.Data.Service != ServiceName {
			t.Errorf("%s: unexpected body %+v", path, body.Data)
		}
	}
}

func TestReadyCheck_WaitsForComponents(t *testing.T) {
	sched := &stubComponent{}
	conns := &stubComponent{running: true}
	srv := newTestServer(t, &stubWS{}, map[string]Component{"scheduler": sched, "connections": conns})

	code, body := getHealth(t, srv, "/ready")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before the scheduler runs, got %d", code)
	}
	if body.Data.Status != "not_ready" || body.Data.Components["scheduler"] != ComponentStopped || body.Data.Components["connections"] != ComponentRunning {
		t.Errorf("unexpected body %+v", body.Data)
	}

	code, body = getHealth(t, srv, "/health")
	if code != http.StatusOK || body.Data.Status != "degraded" {
		t.Errorf("health: expected 200 degraded, got %d %q", code, body.Data.Status)
	}
	if code, _ := getHealth(t, srv, "/live"); code != http.StatusOK {
		t.Errorf("live: expected 200, got %d", code)
	}

	sched.running = true
	if code, body := getHealth(t, srv, "/ready"); code != http.StatusOK || body.Data.Status != "ready" {
		t.Errorf("expected ready once all components run, got %d %q", code, body.Data.Status)
	}

	conns.running = false
	if code, _ := getHealth(t, srv, "/ready"); code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 after a component stops, got %d", code)
	}
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()

	srv := newTestServer(t, &stubWS{}, nil)
	srv.port = port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

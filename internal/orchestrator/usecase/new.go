package usecase

import (
	"time"

	"github.com/idreesmuhammadqazi-create/MUN/internal/broadcast"
	"github.com/idreesmuhammadqazi-create/MUN/internal/connection"
	"github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator"
	"github.com/idreesmuhammadqazi-create/MUN/internal/router"
	"github.com/idreesmuhammadqazi-create/MUN/internal/session"
	pkgLog "github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

// Log prefixes
const (
	LogPrefixAuthenticate   = "internal.orchestrator.usecase.Authenticate"
	LogPrefixHandleChat     = "internal.orchestrator.usecase.HandleChat"
	LogPrefixUpdateSession  = "internal.orchestrator.usecase.UpdateSession"
	LogPrefixUploadDocument = "internal.orchestrator.usecase.UploadDocument"
	LogPrefixNotifier       = "internal.orchestrator.usecase.notifier"
)

const (
	DefaultContextWindow = 10
	MaxSummaryRunes      = 280
	WelcomeMessage       = "Connected to the MUN coordinator"
)

type implUseCase struct {
	l             pkgLog.Logger
	conns         connection.Registry
	sessions      session.Store
	router        router.Router
	scheduler     orchestrator.TaskScheduler
	broadcaster   broadcast.Broadcaster
	contextWindow int
	now           func() time.Time
}

// New creates the orchestrator UseCase. contextWindow is how many recent
// messages are copied into each task's context.
func New(
	l pkgLog.Logger,
	conns connection.Registry,
	sessions session.Store,
	rt router.Router,
	sched orchestrator.TaskScheduler,
	broadcaster broadcast.Broadcaster,
	contextWindow int,
) orchestrator.UseCase {
	if contextWindow <= 0 {
		contextWindow = DefaultContextWindow
	}
	return &implUseCase{
		l:             l,
		conns:         conns,
		sessions:      sessions,
		router:        rt,
		scheduler:     sched,
		broadcaster:   broadcaster,
		contextWindow: contextWindow,
		now:           time.Now,
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/idreesmuhammadqazi-create/MUN/config"
	_ "github.com/idreesmuhammadqazi-create/MUN/docs" // Swagger docs
	"github.com/idreesmuhammadqazi-create/MUN/internal/broadcast"
	"github.com/idreesmuhammadqazi-create/MUN/internal/connection"
	"github.com/idreesmuhammadqazi-create/MUN/internal/httpserver"
	orchestratorHTTP "github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator/delivery/http"
	orchestratorWS "github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator/delivery/websocket"
	orchestratorUC "github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator/usecase"
	"github.com/idreesmuhammadqazi-create/MUN/internal/router"
	"github.com/idreesmuhammadqazi-create/MUN/internal/scheduler"
	"github.com/idreesmuhammadqazi-create/MUN/internal/session"
	"github.com/idreesmuhammadqazi-create/MUN/internal/specialist"
	"github.com/idreesmuhammadqazi-create/MUN/pkg/claude"
	"github.com/idreesmuhammadqazi-create/MUN/pkg/log"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the coordinator until SIGINT or SIGTERM",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	// 1. Configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting MUN coordinator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Core components
	registry := connection.New(logger, connection.Config{
		IdleTimeout:   cfg.Connection.IdleTimeout,
		SweepInterval: cfg.Connection.SweepInterval,
	})
	sessions := session.New(cfg.Session.HistoryCap)
	classifier := router.New()
	broadcaster := broadcast.New(logger, registry)

	// 4. Specialists
	var llm specialist.Completer
	if cfg.Specialist.Provider == config.ProviderAnthropic {
		client, err := claude.New(claude.Config{
			APIKey:        cfg.Specialist.APIKey,
			Model:         cfg.Specialist.Model,
			BaseURL:       cfg.Specialist.BaseURL,
			MaxTokens:     cfg.Specialist.MaxTokens,
			RetryAttempts: cfg.Specialist.RetryAttempts,
			RetryDelay:    cfg.Specialist.RetryDelay,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize anthropic client: %w", err)
		}
		llm = client
		logger.Infof(ctx, "Specialists backed by %s", client.Model())
	} else {
		logger.Info(ctx, "Specialists running offline (no LLM configured)")
	}
	specialists, err := specialist.NewDefaultRegistry(cfg.Specialist.Provider, llm)
	if err != nil {
		return fmt.Errorf("failed to build specialists: %w", err)
	}

	// 5. Scheduler
	sched, err := scheduler.New(logger, specialists, orchestratorUC.NewNotifier(logger, sessions, broadcaster), scheduler.Config{
		MaxConcurrent:    cfg.Scheduler.MaxConcurrent,
		TickInterval:     cfg.Scheduler.TickInterval,
		TaskTimeout:      cfg.Scheduler.TaskTimeout,
		DependencyPolicy: scheduler.DependencyPolicy(cfg.Scheduler.DependencyPolicy),
		TerminalTTL:      cfg.Scheduler.TerminalTTL,
		TerminalCapacity: cfg.Scheduler.TerminalCapacity,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize scheduler: %w", err)
	}

	// 6. Orchestrator domain
	uc := orchestratorUC.New(logger, registry, sessions, classifier, sched, broadcaster, cfg.Session.ContextWindow)
	wsHandler := orchestratorWS.New(logger, uc, orchestratorWS.Config{
		ReadLimitBytes:  cfg.WebSocket.ReadLimitBytes,
		SendBuffer:      cfg.WebSocket.SendBuffer,
		WriteTimeout:    cfg.WebSocket.WriteTimeout,
		RateLimitPerMin: cfg.WebSocket.RateLimitPerMin,
		AllowedOrigins:  cfg.WebSocket.AllowedOrigins,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		Components: map[string]httpserver.Component{
			"scheduler":   sched,
			"connections": registry,
		},
		WSPath:              cfg.WebSocket.Path,
		WSHandler:           wsHandler,
		OrchestratorHandler: orchestratorHTTP.New(logger, uc),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 8. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Run(gctx) })
	g.Go(func() error { return sched.Run(gctx) })
	g.Go(func() error { return registry.Run(gctx) })

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

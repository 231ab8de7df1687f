package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	WebSocket  WebSocketConfig

	// Coordinator
	Connection ConnectionConfig
	Session    SessionConfig
	Scheduler  SchedulerConfig
	Specialist SpecialistConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type WebSocketConfig struct {
	Path            string
	ReadLimitBytes  int64
	SendBuffer      int
	WriteTimeout    time.Duration
	RateLimitPerMin int
	AllowedOrigins  []string // empty allows every origin
}

type ConnectionConfig struct {
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

type SessionConfig struct {
	HistoryCap    int
	ContextWindow int // messages copied into each task's context
}

type SchedulerConfig struct {
	MaxConcurrent    int
	TickInterval     time.Duration
	TaskTimeout      time.Duration
	DependencyPolicy string // fail_open or cascade
	TerminalTTL      time.Duration
	TerminalCapacity int
}

type SpecialistConfig struct {
	Provider      string // offline or anthropic
	APIKey        string
	Model         string
	BaseURL       string
	MaxTokens     int64
	RetryAttempts int
	RetryDelay    time.Duration
}

const (
	ProviderOffline   = "offline"
	ProviderAnthropic = "anthropic"

	PolicyFailOpen = "fail_open"
	PolicyCascade  = "cascade"
)

// Load loads configuration using Viper.
// With an empty path, config.yaml is searched in ./config, ., /etc/app/.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// WebSocket
	cfg.WebSocket.Path = v.GetString("websocket.path")
	cfg.WebSocket.ReadLimitBytes = v.GetInt64("websocket.read_limit_bytes")
	cfg.WebSocket.SendBuffer = v.GetInt("websocket.send_buffer")
	cfg.WebSocket.WriteTimeout = v.GetDuration("websocket.write_timeout")
	cfg.WebSocket.RateLimitPerMin = v.GetInt("websocket.rate_limit_per_min")
	cfg.WebSocket.AllowedOrigins = splitList(v.GetStringSlice("websocket.allowed_origins"))

	// Coordinator
	cfg.Connection.IdleTimeout = v.GetDuration("connection.idle_timeout")
	cfg.Connection.SweepInterval = v.GetDuration("connection.sweep_interval")

	cfg.Session.HistoryCap = v.GetInt("session.history_cap")
	cfg.Session.ContextWindow = v.GetInt("session.context_window")

	cfg.Scheduler.MaxConcurrent = v.GetInt("scheduler.max_concurrent")
	cfg.Scheduler.TickInterval = v.GetDuration("scheduler.tick_interval")
	cfg.Scheduler.TaskTimeout = v.GetDuration("scheduler.task_timeout")
	cfg.Scheduler.DependencyPolicy = v.GetString("scheduler.dependency_policy")
	cfg.Scheduler.TerminalTTL = v.GetDuration("scheduler.terminal_ttl")
	cfg.Scheduler.TerminalCapacity = v.GetInt("scheduler.terminal_capacity")

	// Specialists
	cfg.Specialist.Provider = v.GetString("specialist.provider")
	cfg.Specialist.APIKey = expandEnvVar(v.GetString("specialist.api_key"))
	if apiKey := v.GetString("anthropic_api_key"); apiKey != "" && cfg.Specialist.APIKey == "" {
		cfg.Specialist.APIKey = apiKey
	}
	cfg.Specialist.Model = v.GetString("specialist.model")
	cfg.Specialist.BaseURL = v.GetString("specialist.base_url")
	cfg.Specialist.MaxTokens = v.GetInt64("specialist.max_tokens")
	cfg.Specialist.RetryAttempts = v.GetInt("specialist.retry_attempts")
	cfg.Specialist.RetryDelay = v.GetDuration("specialist.retry_delay")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("websocket.path", "/ws")
	v.SetDefault("websocket.read_limit_bytes", 1<<20)
	v.SetDefault("websocket.send_buffer", 64)
	v.SetDefault("websocket.write_timeout", "10s")
	v.SetDefault("websocket.rate_limit_per_min", 120)
	v.SetDefault("websocket.allowed_origins", []string{})

	v.SetDefault("connection.idle_timeout", "5m")
	v.SetDefault("connection.sweep_interval", "60s")

	v.SetDefault("session.history_cap", 100)
	v.SetDefault("session.context_window", 10)

	v.SetDefault("scheduler.max_concurrent", 5)
	v.SetDefault("scheduler.tick_interval", "1s")
	v.SetDefault("scheduler.task_timeout", "90s")
	v.SetDefault("scheduler.dependency_policy", PolicyFailOpen)
	v.SetDefault("scheduler.terminal_ttl", "10m")
	v.SetDefault("scheduler.terminal_capacity", 4096)

	v.SetDefault("specialist.provider", ProviderOffline)
	v.SetDefault("specialist.max_tokens", 1024)
	v.SetDefault("specialist.retry_attempts", 2)
	v.SetDefault("specialist.retry_delay", "1s")
}

func (cfg *Config) validate() error {
	positive := []struct {
		name  string
		value int64
	}{
		{"http_server.port", int64(cfg.HTTPServer.Port)},
		{"websocket.read_limit_bytes", cfg.WebSocket.ReadLimitBytes},
		{"websocket.send_buffer", int64(cfg.WebSocket.SendBuffer)},
		{"websocket.write_timeout", int64(cfg.WebSocket.WriteTimeout)},
		{"websocket.rate_limit_per_min", int64(cfg.WebSocket.RateLimitPerMin)},
		{"connection.idle_timeout", int64(cfg.Connection.IdleTimeout)},
		{"connection.sweep_interval", int64(cfg.Connection.SweepInterval)},
		{"session.history_cap", int64(cfg.Session.HistoryCap)},
		{"session.context_window", int64(cfg.Session.ContextWindow)},
		{"scheduler.max_concurrent", int64(cfg.Scheduler.MaxConcurrent)},
		{"scheduler.tick_interval", int64(cfg.Scheduler.TickInterval)},
		{"scheduler.task_timeout", int64(cfg.Scheduler.TaskTimeout)},
		{"scheduler.terminal_ttl", int64(cfg.Scheduler.TerminalTTL)},
		{"scheduler.terminal_capacity", int64(cfg.Scheduler.TerminalCapacity)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, p.name)
		}
	}

	if !strings.HasPrefix(cfg.WebSocket.Path, "/") {
		return fmt.Errorf("%w: websocket.path must start with /", ErrInvalidConfig)
	}

	switch cfg.Scheduler.DependencyPolicy {
	case PolicyFailOpen, PolicyCascade:
	default:
		return fmt.Errorf("%w: unknown scheduler.dependency_policy %q", ErrInvalidConfig, cfg.Scheduler.DependencyPolicy)
	}

	switch cfg.Specialist.Provider {
	case ProviderOffline:
	case ProviderAnthropic:
		if cfg.Specialist.APIKey == "" {
			return fmt.Errorf("%w: specialist.api_key (or ANTHROPIC_API_KEY) is required for the anthropic provider", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown specialist.provider %q", ErrInvalidConfig, cfg.Specialist.Provider)
	}
	return nil
}

// expandEnvVar expands values in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return os.Getenv(value[2 : len(value)-1])
	}
	return value
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

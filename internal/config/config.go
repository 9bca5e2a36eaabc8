package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton kept for call sites that cannot take injection.
var globalConfig *Config

// Config holds all environment backed configuration for trader-api.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Auth. Either a JWKS endpoint or a shared HS256 secret must be set.
	JWKSURL             string        `env:"JWKS_URL"`
	AuthSecret          string        `env:"AUTH_SECRET"`
	Issuer              string        `env:"ISSUER"`
	Audience            string        `env:"AUDIENCE"`
	RefreshJWKSInterval time.Duration `env:"JWKS_REFRESH_INTERVAL" envDefault:"5m"`

	// Model provider (OpenAI-compatible endpoint). An empty API key means
	// the provider is unconfigured and mock fallbacks are served.
	ModelBaseURL string        `env:"MODEL_BASE_URL"`
	ModelAPIKey  string        `env:"MODEL_API_KEY"`
	ModelName    string        `env:"MODEL_NAME" envDefault:"gpt-4o-mini"`
	ModelTimeout time.Duration `env:"MODEL_TIMEOUT" envDefault:"60s"`

	// Assistant
	AssistantDefaultName   string `env:"ASSISTANT_DEFAULT_NAME" envDefault:"Operator"`
	AssistantHistoryWindow int    `env:"ASSISTANT_HISTORY_WINDOW" envDefault:"20"`
	AssistantMaxToolRounds int    `env:"ASSISTANT_MAX_TOOL_ROUNDS" envDefault:"5"`

	// Model health probe
	ModelProbeEnabled  bool   `env:"MODEL_PROBE_ENABLED" envDefault:"true"`
	ModelProbeSchedule string `env:"MODEL_PROBE_SCHEDULE" envDefault:"*/5 * * * *"`

	// Observability / Logging
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string        `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"trader-api"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"peerweb"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate        bool    `env:"AUTO_MIGRATE" envDefault:"true"`
	EnableSwagger      bool    `env:"ENABLE_SWAGGER" envDefault:"true"`
	RateLimitPerMinute float64 `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWKSURL == "" && cfg.AuthSecret == "" {
		return nil, errors.New("either JWKS_URL or AUTH_SECRET must be provided")
	}

	if cfg.JWKSURL != "" {
		if _, err := url.ParseRequestURI(cfg.JWKSURL); err != nil {
			return nil, fmt.Errorf("invalid JWKS_URL: %w", err)
		}
	}

	if cfg.ModelBaseURL != "" {
		if _, err := url.ParseRequestURI(cfg.ModelBaseURL); err != nil {
			return nil, fmt.Errorf("invalid MODEL_BASE_URL: %w", err)
		}
	}

	if cfg.AssistantHistoryWindow <= 0 {
		return nil, errors.New("ASSISTANT_HISTORY_WINDOW must be positive")
	}
	if cfg.AssistantMaxToolRounds <= 0 {
		return nil, errors.New("ASSISTANT_MAX_TOOL_ROUNDS must be positive")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// ModelConfigured reports whether a real model provider is available.
// When false, the assistant-adjacent features serve mock fallbacks.
func (c *Config) ModelConfigured() bool {
	return c.ModelAPIKey != ""
}

// GetGlobal returns the global config instance.
// Deprecated: Use dependency injection with Load() instead.
func GetGlobal() *Config {
	return globalConfig
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Trader API metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "peerweb",
			Subsystem: "trader_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "peerweb",
			Subsystem: "trader_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Auth requests
	AuthRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "peerweb",
			Subsystem: "trader_api",
			Name:      "auth_requests_total",
			Help:      "Total authentication requests",
		},
		[]string{"auth_type", "status"},
	)

	// Assistant turns by terminal outcome
	AssistantTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "peerweb",
			Subsystem: "trader_api",
			Name:      "assistant_turns_total",
			Help:      "Completed assistant turns by outcome",
		},
		[]string{"outcome"},
	)

	// Tool executions requested by the model
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "peerweb",
			Subsystem: "trader_api",
			Name:      "tool_calls_total",
			Help:      "Tool executions requested by the model",
		},
		[]string{"tool", "status"},
	)

	// Model provider calls
	ModelRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "peerweb",
			Subsystem: "trader_api",
			Name:      "model_requests_total",
			Help:      "Total model provider calls",
		},
		[]string{"kind", "status"},
	)

	// Model inference duration
	ModelDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "peerweb",
			Subsystem: "trader_api",
			Name:      "model_duration_seconds",
			Help:      "Model inference duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"kind"},
	)

	// Model health gauge
	ModelHealth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "peerweb",
			Subsystem: "trader_api",
			Name:      "model_health",
			Help:      "Model provider health status (1=healthy, 0=unhealthy)",
		},
	)
)

// RecordRequest records an HTTP request with all relevant labels
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordAuthRequest records an authentication attempt
func RecordAuthRequest(authType, status string) {
	AuthRequestsTotal.WithLabelValues(authType, status).Inc()
}

// RecordAssistantTurn records a completed assistant turn
func RecordAssistantTurn(outcome string) {
	if outcome == "" {
		outcome = "unknown"
	}
	AssistantTurnsTotal.WithLabelValues(outcome).Inc()
}

// RecordToolCall records a single tool execution
func RecordToolCall(tool, status string) {
	ToolCallsTotal.WithLabelValues(tool, status).Inc()
}

// RecordModelRequest records the outcome and duration of a model call
func RecordModelRequest(kind, status string, durationSec float64) {
	ModelRequestsTotal.WithLabelValues(kind, status).Inc()
	ModelDuration.WithLabelValues(kind).Observe(durationSec)
}

// SetModelHealth sets the health status of the model provider
func SetModelHealth(healthy bool) {
	val := 0.0
	if healthy {
		val = 1.0
	}
	ModelHealth.Set(val)
}

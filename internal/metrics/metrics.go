package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls counts calculator tool invocations by outcome.
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "immo_tool_calls_total",
			Help: "Total number of calculator tool invocations",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors counts failed calculations by error type.
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "immo_calculation_errors_total",
			Help: "Number of calculation errors",
		},
		[]string{"tool_name", "error_type"},
	)

	// APICalls counts API-level requests.
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "immo_api_calls_total",
			Help: "API calls by endpoint and status",
		},
		[]string{"service", "endpoint", "status"},
	)
)

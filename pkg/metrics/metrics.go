package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for godeadline components.
type Registry struct {
	// Enforcement Metrics
	Runs                  *prometheus.CounterVec
	DeadlinesExceeded     *prometheus.CounterVec
	WorkErrors            *prometheus.CounterVec
	InvalidConfigurations *prometheus.CounterVec
	InjectionFaults       *prometheus.CounterVec
	AlarmReroutes         *prometheus.CounterVec
	WorkDuration          *prometheus.HistogramVec
	ActiveEnforcements    *prometheus.GaugeVec

	// Advisor Metrics
	AdvisorObservations    *prometheus.CounterVec
	AdvisorRecommendations *prometheus.CounterVec

	// Recurring Metrics
	RecurringRuns        *prometheus.CounterVec
	RecurringRunFailures *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by godeadline components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Enforcement Metrics
		Runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godeadline",
				Subsystem: "enforce",
				Name:      "runs_total",
				Help:      "Units of work started under enforcement",
			},
			[]string{"strategy", "work"},
		),

		DeadlinesExceeded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godeadline",
				Subsystem: "enforce",
				Name:      "deadlines_exceeded_total",
				Help:      "Runs that did not complete within their deadline",
			},
			[]string{"strategy", "work"},
		),

		WorkErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godeadline",
				Subsystem: "enforce",
				Name:      "work_errors_total",
				Help:      "Runs that failed with an error from the work itself",
			},
			[]string{"strategy", "work"},
		),

		InvalidConfigurations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godeadline",
				Subsystem: "enforce",
				Name:      "invalid_configurations_total",
				Help:      "Runs rejected before start due to invalid configuration",
			},
			[]string{"work"},
		),

		InjectionFaults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godeadline",
				Subsystem: "enforce",
				Name:      "injection_faults_total",
				Help:      "Failed cancellation deliveries (engine faults)",
			},
			[]string{"work"},
		),

		AlarmReroutes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godeadline",
				Subsystem: "enforce",
				Name:      "alarm_reroutes_total",
				Help:      "Main-thread calls routed to the injection strategy because the countdown was unavailable",
			},
			[]string{"work"},
		),

		WorkDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "godeadline",
				Subsystem: "enforce",
				Name:      "work_duration_seconds",
				Help:      "Observed duration of units of work under enforcement",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"strategy", "work"},
		),

		ActiveEnforcements: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "godeadline",
				Subsystem: "enforce",
				Name:      "active",
				Help:      "Runs currently under enforcement",
			},
			[]string{"strategy"},
		),

		// Advisor Metrics
		AdvisorObservations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godeadline",
				Subsystem: "advisor",
				Name:      "observations_total",
				Help:      "Durations recorded per work name",
			},
			[]string{"work"},
		),

		AdvisorRecommendations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godeadline",
				Subsystem: "advisor",
				Name:      "recommendations_total",
				Help:      "Deadline recommendations served",
			},
			[]string{"work"},
		),

		// Recurring Metrics
		RecurringRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godeadline",
				Subsystem: "recurring",
				Name:      "runs_total",
				Help:      "Scheduled runs executed",
			},
			[]string{"job"},
		),

		RecurringRunFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godeadline",
				Subsystem: "recurring",
				Name:      "run_failures_total",
				Help:      "Scheduled runs that returned an error",
			},
			[]string{"job"},
		),
	}
}

// Package metrics provides Prometheus instrumentation for godeadline components.
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	enforcer := enforce.NewWithMetrics[string]("provision")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Available Metrics
//
// ## Enforcement Metrics
//
//   - godeadline_enforce_runs_total: Units of work started under enforcement
//   - godeadline_enforce_deadlines_exceeded_total: Runs that hit their deadline
//   - godeadline_enforce_work_errors_total: Runs that failed in the work itself
//   - godeadline_enforce_invalid_configurations_total: Rejected deadline configurations
//   - godeadline_enforce_injection_faults_total: Failed cancellation deliveries
//   - godeadline_enforce_alarm_reroutes_total: Main-thread calls routed to the injection strategy
//   - godeadline_enforce_work_duration_seconds: Observed work durations
//   - godeadline_enforce_active: Runs currently under enforcement
//
// ## Advisor Metrics
//
//   - godeadline_advisor_observations_total: Durations recorded per work name
//   - godeadline_advisor_recommendations_total: Deadline recommendations served
//
// ## Recurring Metrics
//
//   - godeadline_recurring_runs_total: Scheduled runs executed
//   - godeadline_recurring_run_failures_total: Scheduled runs that returned an error
//
// # Labels
//
//   - strategy: "cooperative", "alarm", or "injection"
//   - work: user-provided name for the unit of work
//   - job: user-provided name for a recurring job
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{Enabled: true, Registry: registry}
package metrics

package enforce

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	gderrors "github.com/vnykmshr/godeadline/pkg/common/errors"
	"github.com/vnykmshr/godeadline/pkg/deadline"
	"github.com/vnykmshr/godeadline/pkg/metrics"
)

// MetricsEnforcer wraps an Enforcer with Prometheus metrics collection.
type MetricsEnforcer[T any] struct {
	enforcer *Enforcer[T]
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates an enforcer with metrics enabled.
func NewWithMetrics[T any](name string) *MetricsEnforcer[T] {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	me, _ := NewWithConfigAndMetrics[T](Config{Name: name}, metrics.Config{
		Enabled:  true,
		Registry: registry,
	})
	return me
}

// NewWithConfigAndMetrics creates an enforcer with custom config and metrics.
func NewWithConfigAndMetrics[T any](config Config, metricsConfig metrics.Config) (*MetricsEnforcer[T], error) {
	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	me := &MetricsEnforcer[T]{
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}

	// Count countdown contention on the reroute callback, preserving any
	// callback the caller installed.
	userReroute := config.OnReroute
	work := config.Name
	if work == "" {
		work = "work"
	}
	config.OnReroute = func() {
		if me.enabled {
			me.registry.AlarmReroutes.WithLabelValues(work).Inc()
		}
		if userReroute != nil {
			userReroute()
		}
	}

	enforcer, err := NewWithConfig[T](config)
	if err != nil {
		return nil, err
	}
	me.enforcer = enforcer
	return me, nil
}

// Name returns the configured unit-of-work name.
func (me *MetricsEnforcer[T]) Name() string {
	return me.enforcer.Name()
}

// Run enforces d on a cooperative unit of work, recording metrics.
func (me *MetricsEnforcer[T]) Run(ctx context.Context, d deadline.Deadline, work CooperativeWork[T]) (T, error) {
	return me.observe(CooperativeAsync.strategy(), func() (T, error) {
		return me.enforcer.Run(ctx, d, work)
	})
}

// RunBlocking enforces d on a blocking unit of work, recording metrics.
func (me *MetricsEnforcer[T]) RunBlocking(d deadline.Deadline, work BlockingWork[T]) (T, error) {
	return me.observe(Classify(true).strategy(), func() (T, error) {
		return me.enforcer.RunBlocking(d, work)
	})
}

func (me *MetricsEnforcer[T]) observe(strategy string, run func() (T, error)) (T, error) {
	if !me.enabled {
		return run()
	}

	name := me.enforcer.Name()
	me.registry.Runs.WithLabelValues(strategy, name).Inc()
	me.registry.ActiveEnforcements.WithLabelValues(strategy).Inc()

	start := time.Now()
	value, err := run()
	elapsed := time.Since(start)

	me.registry.ActiveEnforcements.WithLabelValues(strategy).Dec()
	me.registry.WorkDuration.WithLabelValues(strategy, name).Observe(elapsed.Seconds())

	switch {
	case err == nil:
	case IsInvalidConfiguration(err):
		me.registry.InvalidConfigurations.WithLabelValues(name).Inc()
	case IsDeadlineExceeded(err):
		me.registry.DeadlinesExceeded.WithLabelValues(strategy, name).Inc()
	case errors.Is(err, gderrors.ErrInjectionFault):
		me.registry.InjectionFaults.WithLabelValues(name).Inc()
	default:
		me.registry.WorkErrors.WithLabelValues(strategy, name).Inc()
	}

	return value, err
}

// EnableMetrics enables metrics collection.
func (me *MetricsEnforcer[T]) EnableMetrics(config metrics.Config) error {
	me.enabled = config.Enabled
	if config.Registry != nil {
		me.registry = metrics.NewRegistry(config.Registry)
	}
	return nil
}

// DisableMetrics disables metrics collection.
func (me *MetricsEnforcer[T]) DisableMetrics() {
	me.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (me *MetricsEnforcer[T]) MetricsEnabled() bool {
	return me.enabled
}

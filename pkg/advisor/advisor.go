package advisor

import (
	"context"
	"time"

	gderrors "github.com/vnykmshr/godeadline/pkg/common/errors"
	"github.com/vnykmshr/godeadline/pkg/common/validation"
	"github.com/vnykmshr/godeadline/pkg/deadline"
	"github.com/vnykmshr/godeadline/pkg/metrics"
)

const (
	// DefaultHeadroom scales the observed maximum duration into a
	// recommendation.
	DefaultHeadroom = 1.5

	// DefaultFloor is the minimum recommended deadline.
	DefaultFloor = time.Second
)

// Summary aggregates the recorded durations for one unit of work.
type Summary struct {
	Count int64
	Total time.Duration
	Max   time.Duration
}

// Store persists duration history per unit of work.
type Store interface {
	// Record adds one observed duration for work.
	Record(ctx context.Context, work string, d time.Duration) error

	// Summary returns the aggregate history for work. A work with no
	// recorded durations yields a zero Summary, not an error.
	Summary(ctx context.Context, work string) (Summary, error)

	// Reset clears the history for work.
	Reset(ctx context.Context, work string) error

	// Close releases store resources.
	Close() error
}

// Config holds configuration options for an Advisor.
type Config struct {
	// Store holds the duration history. Defaults to an in-memory store.
	Store Store

	// Headroom scales the observed maximum into a recommendation.
	// Must be at least 1. Defaults to DefaultHeadroom.
	Headroom float64

	// Floor is the minimum recommended deadline. Defaults to DefaultFloor.
	Floor time.Duration

	// Ceiling caps the recommendation. Zero means no cap.
	Ceiling time.Duration

	// Metrics configures Prometheus metrics collection.
	Metrics metrics.Config
}

// Advisor recommends deadlines from recorded durations.
type Advisor struct {
	config   Config
	registry *metrics.Registry
}

// New creates an Advisor with default configuration and an in-memory store.
func New() *Advisor {
	a, _ := NewWithConfig(Config{})
	return a
}

// NewWithConfig creates an Advisor with the given configuration.
func NewWithConfig(config Config) (*Advisor, error) {
	if config.Headroom != 0 && config.Headroom < 1 {
		return nil, gderrors.NewValidationError("advisor", "headroom", config.Headroom,
			"must be at least 1")
	}
	if config.Headroom == 0 {
		config.Headroom = DefaultHeadroom
	}
	if config.Floor < 0 {
		return nil, validation.ValidateNonNegativeDuration("advisor", "floor", config.Floor)
	}
	if config.Floor == 0 {
		config.Floor = DefaultFloor
	}
	if config.Ceiling < 0 {
		return nil, validation.ValidateNonNegativeDuration("advisor", "ceiling", config.Ceiling)
	}
	if config.Ceiling != 0 && config.Ceiling < config.Floor {
		return nil, gderrors.NewValidationError("advisor", "ceiling", config.Ceiling,
			"must not be below the floor")
	}
	if config.Store == nil {
		config.Store = NewMemoryStore()
	}

	registry := metrics.DefaultRegistry
	if config.Metrics.Registry != nil {
		registry = metrics.NewRegistry(config.Metrics.Registry)
	}

	return &Advisor{config: config, registry: registry}, nil
}

// Observe records one observed duration for work. Negative durations are
// rejected.
func (a *Advisor) Observe(ctx context.Context, work string, d time.Duration) error {
	if err := validation.ValidateNotEmpty("advisor", "work", work); err != nil {
		return err
	}
	if d < 0 {
		return validation.ValidateNonNegativeDuration("advisor", "duration", d)
	}
	if err := a.config.Store.Record(ctx, work, d); err != nil {
		return err
	}
	if a.config.Metrics.Enabled {
		a.registry.AdvisorObservations.WithLabelValues(work).Inc()
	}
	return nil
}

// Recommend returns a deadline for the next run of work: the observed
// maximum scaled by the headroom factor, clamped to the floor and ceiling.
// With no recorded history it returns an unset deadline.
func (a *Advisor) Recommend(ctx context.Context, work string) (deadline.Deadline, error) {
	if err := validation.ValidateNotEmpty("advisor", "work", work); err != nil {
		return deadline.None(), err
	}

	summary, err := a.config.Store.Summary(ctx, work)
	if err != nil {
		return deadline.None(), err
	}
	if a.config.Metrics.Enabled {
		a.registry.AdvisorRecommendations.WithLabelValues(work).Inc()
	}
	if summary.Count == 0 {
		return deadline.None(), nil
	}

	rec := time.Duration(float64(summary.Max) * a.config.Headroom)
	if rec < a.config.Floor {
		rec = a.config.Floor
	}
	if a.config.Ceiling != 0 && rec > a.config.Ceiling {
		rec = a.config.Ceiling
	}
	return deadline.For(rec), nil
}

// Reset clears the recorded history for work.
func (a *Advisor) Reset(ctx context.Context, work string) error {
	if err := validation.ValidateNotEmpty("advisor", "work", work); err != nil {
		return err
	}
	return a.config.Store.Reset(ctx, work)
}

// Close releases the underlying store.
func (a *Advisor) Close() error {
	return a.config.Store.Close()
}

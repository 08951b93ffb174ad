package enforce

import (
	"context"
	"time"

	"github.com/vnykmshr/godeadline/pkg/common/validation"
	"github.com/vnykmshr/godeadline/pkg/deadline"
)

// DefaultGrace bounds how long the engine waits for a canceled cooperative
// work to finish unwinding before the deadline outcome is surfaced.
const DefaultGrace = 100 * time.Millisecond

// CooperativeWork is a context-aware unit of work. It suspends at its own
// cooperation points (context checks) rather than blocking, and should return
// promptly once its context is canceled.
type CooperativeWork[T any] func(ctx context.Context) (T, error)

// BlockingWork is a synchronous unit of work. It observes the deadline only
// through the provided Checkpoint.
type BlockingWork[T any] func(cp *Checkpoint) (T, error)

// Config holds configuration options for an Enforcer.
type Config struct {
	// Name identifies the unit of work in errors and metrics.
	// Defaults to "work".
	Name string

	// Grace is the bounded wait for a canceled cooperative work to finish
	// unwinding before DeadlineExceeded is surfaced. The outcome is surfaced
	// once the work acknowledges cancellation or the grace elapses, whichever
	// comes first. Defaults to DefaultGrace.
	Grace time.Duration

	// OnReroute is called when the process-wide countdown is unavailable and
	// a main-thread call is routed to the injection strategy instead.
	OnReroute func()
}

// Enforcer runs units of work of one result type under deadlines.
type Enforcer[T any] struct {
	config Config
}

// New creates an Enforcer with default configuration.
func New[T any](name string) *Enforcer[T] {
	e, _ := NewWithConfig[T](Config{Name: name})
	return e
}

// NewWithConfig creates an Enforcer with the given configuration.
func NewWithConfig[T any](config Config) (*Enforcer[T], error) {
	if config.Grace < 0 {
		return nil, validation.ValidateNonNegativeDuration("enforce", "grace", config.Grace)
	}
	if config.Grace == 0 {
		config.Grace = DefaultGrace
	}
	if config.Name == "" {
		config.Name = "work"
	}
	return &Enforcer[T]{config: config}, nil
}

// Name returns the configured unit-of-work name.
func (e *Enforcer[T]) Name() string {
	return e.config.Name
}

func (e *Enforcer[T]) exceeded(d deadline.Deadline) error {
	return &DeadlineExceededError{Work: e.config.Name, Timeout: d.Duration()}
}

// Run enforces d on a cooperative unit of work. See Enforcer.Run.
func Run[T any](ctx context.Context, name string, d deadline.Deadline, work CooperativeWork[T]) (T, error) {
	return New[T](name).Run(ctx, d, work)
}

// RunBlocking enforces d on a blocking unit of work. See Enforcer.RunBlocking.
func RunBlocking[T any](name string, d deadline.Deadline, work BlockingWork[T]) (T, error) {
	return New[T](name).RunBlocking(d, work)
}

// Do is Run for work without a return value.
func Do(ctx context.Context, name string, d deadline.Deadline, work func(ctx context.Context) error) error {
	_, err := Run(ctx, name, d, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, work(ctx)
	})
	return err
}

// DoBlocking is RunBlocking for work without a return value.
func DoBlocking(name string, d deadline.Deadline, work func(cp *Checkpoint) error) error {
	_, err := RunBlocking(name, d, func(cp *Checkpoint) (struct{}, error) {
		return struct{}{}, work(cp)
	})
	return err
}

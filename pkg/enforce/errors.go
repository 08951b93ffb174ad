package enforce

import (
	"errors"
	"fmt"
	"time"

	gderrors "github.com/vnykmshr/godeadline/pkg/common/errors"
)

// DeadlineExceededError is the engine's timeout outcome. It carries enough
// context to be actionable without inspecting internals.
type DeadlineExceededError struct {
	// Work is the name of the unit of work that exceeded its deadline.
	Work string

	// Timeout is the configured deadline duration.
	Timeout time.Duration
}

func (e *DeadlineExceededError) Error() string {
	return fmt.Sprintf("work '%s' exceeded timeout of %s", e.Work, e.Timeout)
}

// Unwrap makes DeadlineExceededError match errors.ErrDeadlineExceeded.
func (e *DeadlineExceededError) Unwrap() error {
	return gderrors.ErrDeadlineExceeded
}

// InjectionFaultError indicates the timer could not deliver cancellation to
// the running work. This is a fatal fault of the engine, distinct in kind
// from a deadline outcome.
type InjectionFaultError struct {
	Work  string
	Cause error
}

func (e *InjectionFaultError) Error() string {
	return fmt.Sprintf("work '%s': cancellation injection failed: %v", e.Work, e.Cause)
}

// Unwrap makes InjectionFaultError match errors.ErrInjectionFault.
func (e *InjectionFaultError) Unwrap() error {
	return gderrors.ErrInjectionFault
}

// IsDeadlineExceeded returns true if the error is the engine's timeout outcome.
func IsDeadlineExceeded(err error) bool {
	return errors.Is(err, gderrors.ErrDeadlineExceeded)
}

// IsInvalidConfiguration returns true if the error is a rejected configuration,
// such as a negative deadline.
func IsInvalidConfiguration(err error) bool {
	return errors.Is(err, gderrors.ErrInvalidConfiguration)
}

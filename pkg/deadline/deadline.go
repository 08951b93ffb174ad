package deadline

import (
	"time"

	"github.com/vnykmshr/godeadline/pkg/common/validation"
)

// Deadline is an optional maximum duration for a unit of work.
// The zero value is the absent deadline.
type Deadline struct {
	d   time.Duration
	set bool
}

// None returns the absent deadline: run unbounded.
func None() Deadline {
	return Deadline{}
}

// For returns a deadline of the given duration. A zero duration behaves like
// None; a negative duration is preserved so Validate can reject it.
func For(d time.Duration) Deadline {
	return Deadline{d: d, set: true}
}

// IsSet returns true if a deadline value was supplied, even an invalid one.
func (dl Deadline) IsSet() bool {
	return dl.set
}

// Duration returns the configured duration, or zero if absent.
func (dl Deadline) Duration() time.Duration {
	return dl.d
}

// Enforced returns true if the deadline requires enforcement: a set, positive
// duration. Absent and zero deadlines run unbounded.
func (dl Deadline) Enforced() bool {
	return dl.set && dl.d > 0
}

// Validate rejects negative deadlines. Absent and zero deadlines are valid.
func (dl Deadline) Validate() error {
	if !dl.set {
		return nil
	}
	return validation.ValidateNonNegativeDuration("deadline", "timeout", dl.d)
}

func (dl Deadline) String() string {
	if !dl.set {
		return "none"
	}
	return dl.d.String()
}

package enforce

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/vnykmshr/godeadline/pkg/common/validation"
	"github.com/vnykmshr/godeadline/pkg/deadline"
)

type result[T any] struct {
	value T
	err   error
}

// Run enforces d on a cooperative unit of work.
//
// An absent or zero deadline runs the work to completion unmodified; a
// negative deadline is rejected before the work starts. Otherwise the work
// runs as an independently cancellable task raced against a timer. On expiry
// the task's context is canceled, which resumes the work at its next
// cooperation point so deferred cleanup runs, and after a bounded grace
// period the DeadlineExceeded outcome is surfaced. If the work finishes
// first, the timer is stopped and the work's result returned.
func (e *Enforcer[T]) Run(ctx context.Context, d deadline.Deadline, work CooperativeWork[T]) (T, error) {
	var zero T

	if work == nil {
		return zero, validation.ValidateNotNil("enforce", "work", nil)
	}
	if err := d.Validate(); err != nil {
		return zero, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if !d.Enforced() {
		return work(ctx)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan result[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result[T]{err: fmt.Errorf("work panicked: %v\nStack trace:\n%s", r, debug.Stack())}
			}
		}()
		value, err := work(runCtx)
		done <- result[T]{value: value, err: err}
	}()

	timer := time.NewTimer(d.Duration())
	defer timer.Stop()

	select {
	case r := <-done:
		return r.value, r.err
	case <-timer.C:
	}

	// Deadline fired: cancel and give the work a bounded window to unwind.
	// The outcome is surfaced either way; the raw cancellation never is.
	cancel()
	grace := time.NewTimer(e.config.Grace)
	defer grace.Stop()
	select {
	case <-done:
	case <-grace.C:
	}

	return zero, e.exceeded(d)
}

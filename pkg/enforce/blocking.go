package enforce

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/vnykmshr/godeadline/internal/alarm"
	"github.com/vnykmshr/godeadline/pkg/common/validation"
	"github.com/vnykmshr/godeadline/pkg/deadline"
)

// RunBlocking enforces d on a blocking unit of work running on the calling
// goroutine.
//
// The strategy is selected per call: the process-wide alarm countdown when it
// is available and the caller is on the primary thread, a timer otherwise.
// Either way the timer trips the work's Checkpoint; the work unwinds at its
// next Check, running deferred cleanup, and the engine converts the unwind
// into the DeadlineExceeded outcome. The timer is disarmed on every exit
// path, so a completed call can never affect a later one.
func (e *Enforcer[T]) RunBlocking(d deadline.Deadline, work BlockingWork[T]) (T, error) {
	var zero T

	if work == nil {
		return zero, validation.ValidateNotNil("enforce", "work", nil)
	}
	if err := d.Validate(); err != nil {
		return zero, err
	}
	if !d.Enforced() {
		cp := newCheckpoint()
		defer cp.release()
		return e.call(cp, d, work)
	}

	return e.runBlocking(Classify(true), d, work)
}

func (e *Enforcer[T]) runBlocking(ectx ExecutionContext, d deadline.Deadline, work BlockingWork[T]) (T, error) {
	var zero T

	cp := newCheckpoint()
	fault := make(chan error, 1)
	inject := func() {
		if err := cp.trip(); err != nil {
			fault <- err
		}
	}

	var disarm func()
	switch ectx {
	case SyncMainThread:
		cd, err := alarm.Acquire(d.Duration())
		if err != nil {
			if errors.Is(err, alarm.ErrBusy) || errors.Is(err, alarm.ErrUnsupported) {
				// The countdown is singleton state; rather than queue behind
				// an unrelated deadline, fall back to the injection timer.
				if e.config.OnReroute != nil {
					e.config.OnReroute()
				}
				return e.runBlocking(SyncOtherThread, d, work)
			}
			return zero, err
		}
		stop := make(chan struct{})
		go func() {
			select {
			case <-cd.Fired():
				inject()
			case <-stop:
			}
		}()
		disarm = func() {
			close(stop)
			cd.Release()
		}
	default:
		timer := time.AfterFunc(d.Duration(), inject)
		disarm = func() { timer.Stop() }
	}

	defer func() {
		disarm()
		cp.release()
	}()

	value, err := e.call(cp, d, work)

	// A failed trip means the timer could not deliver cancellation at all.
	// That is a fault of the engine and must not be reported as a timeout.
	select {
	case ferr := <-fault:
		return zero, &InjectionFaultError{Work: e.config.Name, Cause: ferr}
	default:
	}

	return value, err
}

// call runs the work on the calling goroutine and converts an unwind caused
// by this call's own checkpoint into the deadline outcome. A marker belonging
// to another call is not ours to absorb and propagates; any other panic is
// reported as a work error.
func (e *Enforcer[T]) call(cp *Checkpoint, d deadline.Deadline, work BlockingWork[T]) (value T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if m, ok := r.(cancellationMarker); ok {
			if m.cp != cp {
				panic(r)
			}
			var zero T
			value = zero
			err = e.exceeded(d)
			return
		}
		err = fmt.Errorf("work panicked: %v\nStack trace:\n%s", r, debug.Stack())
	}()

	return work(cp)
}

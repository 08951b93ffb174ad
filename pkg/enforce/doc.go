/*
Package enforce runs a unit of work under a deadline and guarantees that the
work's deferred cleanup executes before the deadline outcome is observed.

The engine picks one of three strategies per call:

  - Cooperative: for context-aware work (CooperativeWork). The work runs as a
    cancellable task raced against a timer; on expiry its context is canceled
    and the engine waits a bounded grace period for the work to unwind.
  - Alarm: for blocking work (BlockingWork) on the primary thread of a process
    whose platform exposes SIGALRM. The process-wide countdown is the timer;
    it has one-second granularity and is singleton state, so a busy countdown
    routes the call to the injection strategy instead.
  - Injection: for blocking work anywhere else. A timer trips the work's
    Checkpoint; the next Check call unwinds the work, running its defers, and
    the engine converts the unwind into the deadline outcome.

Every strategy normalizes its raw timeout signal into *DeadlineExceededError
carrying the work's name and the configured duration. Callers observe exactly
one of: the work's result, the work's own error (unchanged), an
invalid-configuration error for a negative deadline, a DeadlineExceededError,
or an injection fault. The internal cancellation marker never escapes.

Basic usage:

	value, err := enforce.Run(ctx, "provision", deadline.For(30*time.Second),
		func(ctx context.Context) (string, error) {
			defer release() // runs even on timeout
			return provision(ctx)
		})

Blocking work observes the deadline through its Checkpoint:

	n, err := enforce.RunBlocking("compact", deadline.For(5*time.Second),
		func(cp *enforce.Checkpoint) (int, error) {
			for _, seg := range segments {
				cp.Check() // unwinds here once the deadline fires
				compact(seg)
			}
			return len(segments), nil
		})

An absent or zero deadline runs the work unbounded; a negative deadline is
rejected before the work starts. Blocking work must not swallow arbitrary
panics: a recover that observes a value it does not recognize should re-panic
it, or the cancellation unwind cannot reach the engine.

The non-goal of the original design holds here too: the engine cancels only at
cooperation points it controls. Cooperative work that never checks its context
and blocking work that never calls Check cannot be interrupted, only abandoned
(cooperative) or run to completion (blocking).
*/
package enforce

/*
Package godeadline provides deadline enforcement for units of work across
execution contexts, with guaranteed cleanup on timeout.

Deadlines (pkg/deadline):
  - Deadline: optional non-negative duration; absent or zero means unbounded
  - FromArgs: derive a deadline from a call's positional/keyword arguments
  - Provider: compile-time deadline resolution for typed work

Enforcement (pkg/enforce):
  - Cooperative strategy: context cancellation for context-aware work
  - Alarm strategy: process-wide SIGALRM countdown for blocking work on the
    primary thread (Linux)
  - Injection strategy: timer-tripped checkpoint for blocking work elsewhere

Supporting components:
  - advisor: records observed durations and recommends deadlines (optionally
    Redis-backed for multi-instance sharing)
  - recurring: cron-scheduled execution with per-run enforcement
  - metrics: Prometheus instrumentation

Example usage:

	import (
		"github.com/vnykmshr/godeadline/pkg/deadline"
		"github.com/vnykmshr/godeadline/pkg/enforce"
	)

	result, err := enforce.Run(ctx, "fetch-report", deadline.For(2*time.Second),
		func(ctx context.Context) (*Report, error) {
			return fetchReport(ctx)
		})
	if enforce.IsDeadlineExceeded(err) {
		// the work's cleanup has already run
	}
*/
package godeadline

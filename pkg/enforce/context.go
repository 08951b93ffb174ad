package enforce

import (
	"github.com/vnykmshr/godeadline/internal/alarm"
	"github.com/vnykmshr/godeadline/internal/goid"
)

// ExecutionContext identifies how a unit of work executes, which determines
// the enforcement strategy for one call. It is fixed for the duration of the
// call.
type ExecutionContext int

const (
	// CooperativeAsync is context-aware work that suspends at its own
	// cooperation points instead of blocking.
	CooperativeAsync ExecutionContext = iota

	// SyncMainThread is blocking work on the primary thread of a process
	// whose platform exposes the countdown signal.
	SyncMainThread

	// SyncOtherThread is blocking work anywhere else.
	SyncOtherThread
)

func (ec ExecutionContext) String() string {
	switch ec {
	case CooperativeAsync:
		return "cooperative-async"
	case SyncMainThread:
		return "sync-main-thread"
	case SyncOtherThread:
		return "sync-other-thread"
	default:
		return "unknown"
	}
}

// strategy returns the metric label for the strategy this context selects.
func (ec ExecutionContext) strategy() string {
	switch ec {
	case CooperativeAsync:
		return "cooperative"
	case SyncMainThread:
		return "alarm"
	default:
		return "injection"
	}
}

// Classify determines the execution context of the current call.
func Classify(blocking bool) ExecutionContext {
	return classify(blocking, alarm.Supported(), goid.OnMain())
}

// classify prefers the cheaper process-wide countdown when it is safely
// available; cross-call injection is the more invasive fallback.
func classify(blocking, alarmSupported, onMain bool) ExecutionContext {
	if !blocking {
		return CooperativeAsync
	}
	if alarmSupported && onMain {
		return SyncMainThread
	}
	return SyncOtherThread
}

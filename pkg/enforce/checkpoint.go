package enforce

import (
	"fmt"
	"sync/atomic"
	"time"

	gderrors "github.com/vnykmshr/godeadline/pkg/common/errors"
)

// Checkpoint states. A checkpoint is armed on call entry, tripped at most
// once by the timer, and released on every exit path so a late trip is inert.
const (
	cpArmed int32 = iota + 1
	cpTripped
	cpReleased
)

// Checkpoint is the cancellation token handed to blocking work. The work
// calls Check at safe points; once the deadline fires, Check unwinds the work
// with an internal marker, running deferred cleanup on the way out, and the
// engine converts the unwind into the deadline outcome.
//
// The marker is not an error value, so the work's ordinary error handling
// cannot intercept it. Work that recovers panics must re-panic values it does
// not recognize.
type Checkpoint struct {
	state atomic.Int32
}

// cancellationMarker is the internal one-shot signal raised through a tripped
// checkpoint. It must never be observable outside the engine.
type cancellationMarker struct {
	cp *Checkpoint
}

func newCheckpoint() *Checkpoint {
	cp := &Checkpoint{}
	cp.state.Store(cpArmed)
	return cp
}

// Check unwinds the calling work if the deadline has fired, and is otherwise
// a cheap no-op. Blocking work should call it at every safe point.
func (cp *Checkpoint) Check() {
	if cp.state.Load() == cpTripped {
		panic(cancellationMarker{cp: cp})
	}
}

// Expired reports whether the deadline has fired. Work may poll it to wind
// down on its own instead of being unwound at the next Check.
func (cp *Checkpoint) Expired() bool {
	return cp.state.Load() == cpTripped
}

// Sleep blocks for d while remaining responsive to the deadline: once the
// checkpoint trips, Sleep unwinds the work just as Check does.
func (cp *Checkpoint) Sleep(d time.Duration) {
	const slice = 10 * time.Millisecond

	end := time.Now().Add(d)
	for {
		cp.Check()
		remaining := time.Until(end)
		if remaining <= 0 {
			return
		}
		if remaining > slice {
			remaining = slice
		}
		time.Sleep(remaining)
	}
}

// trip delivers the one-shot cancellation. Tripping after release is a no-op:
// the call already completed and disarmed its timer. Tripping a checkpoint
// that was never armed is a fault of the engine, not a timeout.
func (cp *Checkpoint) trip() error {
	for {
		switch s := cp.state.Load(); s {
		case cpArmed:
			if cp.state.CompareAndSwap(cpArmed, cpTripped) {
				return nil
			}
		case cpTripped, cpReleased:
			return nil
		default:
			return fmt.Errorf("%w: checkpoint was never armed", gderrors.ErrInjectionFault)
		}
	}
}

// release makes late trips inert. A tripped checkpoint stays tripped so the
// recover path can still identify its own marker.
func (cp *Checkpoint) release() {
	cp.state.CompareAndSwap(cpArmed, cpReleased)
}

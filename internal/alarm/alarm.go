// Package alarm owns the process-wide SIGALRM countdown.
//
// The countdown is singleton state: only one armed countdown may exist at a
// time system-wide. Acquire is therefore non-reentrant; a caller that finds
// the countdown held must use a different timing mechanism instead of
// queueing behind an unrelated deadline.
package alarm

import (
	"errors"
	"time"
)

var (
	// ErrBusy indicates the countdown is already held by another call.
	ErrBusy = errors.New("alarm countdown already armed")

	// ErrUnsupported indicates the platform exposes no countdown signal.
	ErrUnsupported = errors.New("alarm countdown not supported on this platform")
)

// Countdown is an armed process-wide countdown. It must be released on every
// exit path of the call that acquired it.
type Countdown struct {
	fired chan struct{}
	stop  chan struct{}
	done  func()
}

// Fired returns a channel closed when the countdown signal is delivered.
func (c *Countdown) Fired() <-chan struct{} {
	return c.fired
}

// Seconds returns d rounded up to whole seconds. The underlying primitive has
// one-second granularity, so any fractional remainder rounds up.
func Seconds(d time.Duration) uint {
	secs := d / time.Second
	if d%time.Second != 0 {
		secs++
	}
	if secs < 1 {
		secs = 1
	}
	return uint(secs)
}

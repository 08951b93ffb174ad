//go:build linux

package alarm

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

var held atomic.Bool

// Supported reports whether the platform exposes the countdown signal.
func Supported() bool {
	return true
}

// Acquire installs a SIGALRM handler and arms the countdown for the ceiling
// of d in whole seconds. It fails with ErrBusy if another call holds the
// countdown. The returned Countdown must be released on every exit path.
func Acquire(d time.Duration) (*Countdown, error) {
	if !held.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGALRM)
	unix.Alarm(Seconds(d))

	c := &Countdown{
		fired: make(chan struct{}),
		stop:  make(chan struct{}),
	}

	go func() {
		select {
		case <-sig:
			close(c.fired)
		case <-c.stop:
		}
	}()

	var once sync.Once
	c.done = func() {
		once.Do(func() {
			// Disarm before restoring delivery, so a pending countdown
			// cannot fire into the next holder.
			unix.Alarm(0)
			signal.Stop(sig)
			close(c.stop)
			held.Store(false)
		})
	}

	return c, nil
}

// Release disarms the countdown and restores the prior signal disposition.
// It is safe to call more than once.
func (c *Countdown) Release() {
	c.done()
}

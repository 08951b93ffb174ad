//go:build !linux

package alarm

import "time"

// Supported reports whether the platform exposes the countdown signal.
func Supported() bool {
	return false
}

// Acquire always fails on platforms without a countdown signal; callers fall
// back to timer-based cancellation with identical external behavior.
func Acquire(time.Duration) (*Countdown, error) {
	return nil, ErrUnsupported
}

// Release is a no-op on platforms without a countdown signal.
func (c *Countdown) Release() {
	if c != nil && c.done != nil {
		c.done()
	}
}

// Package goid identifies the process's primary goroutine.
//
// The runtime executes package initialization on the main goroutine before
// main begins, so the id captured here is the main goroutine's. Comparing it
// against the current id at call time tells the engine whether the
// process-wide alarm countdown may be used.
package goid

import (
	"bytes"
	"runtime"
	"strconv"
)

var mainID = Current()

// Current returns the id of the calling goroutine, or 0 if it cannot be
// determined.
func Current() uint64 {
	// First line of a stack dump: "goroutine 123 [running]:"
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// OnMain reports whether the caller is running on the primary goroutine.
func OnMain() bool {
	id := Current()
	return id != 0 && id == mainID
}

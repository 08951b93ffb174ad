/*
Package deadline defines the Deadline type and ways to derive one for a call.

A Deadline is an optional non-negative duration. An absent deadline and a zero
deadline both mean "run unbounded"; a negative duration is an invalid
configuration, rejected by Validate before any enforcement starts.

Typed callers construct deadlines directly:

	d := deadline.For(30 * time.Second)

Dispatch-style callers that carry arguments dynamically can derive the deadline
from a call's positional and keyword arguments, given the callee's declared
parameter names:

	d := deadline.FromArgs(
		[]string{"name", "timeout"},
		[]any{"snapshot", 5 * time.Second},
		nil,
	)

Work types that know their own budget can implement Provider instead, which
resolves the deadline at compile time with no argument binding.
*/
package deadline

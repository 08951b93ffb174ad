package deadline

import "time"

// Param is the conventional parameter name a deadline is extracted from.
const Param = "timeout"

// Provider is implemented by work descriptors that carry their own deadline.
type Provider interface {
	Deadline() Deadline
}

// FromProvider returns the deadline carried by v, or None if v does not
// implement Provider.
func FromProvider(v any) Deadline {
	if p, ok := v.(Provider); ok {
		return p.Deadline()
	}
	return None()
}

// FromArgs derives the deadline for one call from its arguments, given the
// callee's declared parameter names in declaration order.
//
// Positional arguments are bound to parameter names by position; a "timeout"
// keyword argument takes precedence over a positionally bound one. Extraction
// never fails: a missing "timeout" parameter, an absent argument, or a value
// of an unrecognized type all yield None. Negative values are preserved for
// Validate to reject.
func FromArgs(params []string, args []any, kwargs map[string]any) Deadline {
	if v, ok := kwargs[Param]; ok {
		return coerce(v)
	}

	for i, name := range params {
		if name != Param {
			continue
		}
		if i < len(args) {
			return coerce(args[i])
		}
		break
	}

	return None()
}

// coerce converts a raw argument value into a Deadline. Durations are taken
// as-is; bare numbers are interpreted as seconds, matching the conventional
// "timeout" parameter unit.
func coerce(v any) Deadline {
	switch t := v.(type) {
	case nil:
		return None()
	case Deadline:
		return t
	case time.Duration:
		return For(t)
	case int:
		return For(time.Duration(t) * time.Second)
	case int64:
		return For(time.Duration(t) * time.Second)
	case float64:
		return For(time.Duration(t * float64(time.Second)))
	default:
		return None()
	}
}

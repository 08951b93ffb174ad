// Package advisor recommends deadlines from observed work durations.
//
// An Advisor records how long each named unit of work actually takes and
// recommends a deadline for the next run: the observed maximum scaled by a
// headroom factor, clamped to a floor and an optional ceiling. With no
// observations it recommends no deadline at all, leaving the work unbounded.
//
// History lives in a Store. The default in-memory store is per-process; the
// Redis-backed store shares history across application instances so every
// instance converges on the same recommendation.
//
// Basic usage:
//
//	adv := advisor.New()
//	adv.Observe(ctx, "fetch", 120*time.Millisecond)
//	d, _ := adv.Recommend(ctx, "fetch")
//	value, err := enforce.Run(ctx, "fetch", d, work)
package advisor

// Package recurring runs a unit of work on a cron schedule, each run under
// deadline enforcement.
//
// A Job parses a cron expression (with optional seconds field and @-style
// descriptors) and executes its work at every scheduled time. Each run is a
// cooperative enforced run: the work receives a context that is canceled when
// the per-run deadline elapses. Runs that overlap their schedule do not stack;
// the next run waits for the previous one to return.
//
// Basic usage:
//
//	job, err := recurring.New(recurring.Config{
//		Name:     "sync",
//		Cron:     "@every 5m",
//		Deadline: deadline.For(30 * time.Second),
//		Work: func(ctx context.Context) error {
//			return sync(ctx)
//		},
//	})
//	if err != nil {
//		return err
//	}
//	job.Start()
//	defer job.Stop()
package recurring

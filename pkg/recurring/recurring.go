package recurring

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	gderrors "github.com/vnykmshr/godeadline/pkg/common/errors"
	"github.com/vnykmshr/godeadline/pkg/common/validation"
	"github.com/vnykmshr/godeadline/pkg/deadline"
	"github.com/vnykmshr/godeadline/pkg/enforce"
	"github.com/vnykmshr/godeadline/pkg/metrics"
)

// RunResult describes one completed run of a recurring job.
type RunResult struct {
	// Run is the 1-based run number.
	Run int

	// Started is when the run began.
	Started time.Time

	// Duration is how long the run took.
	Duration time.Duration

	// Err is the run's outcome, including deadline-exceeded errors.
	Err error
}

// Config holds configuration options for a recurring Job.
type Config struct {
	// Name identifies the job in errors and metrics. Defaults to "job".
	Name string

	// Cron is the schedule expression. Supports the optional seconds field
	// and descriptors such as "@hourly" and "@every 5m".
	Cron string

	// Work runs at every scheduled time under the per-run deadline.
	Work func(ctx context.Context) error

	// Deadline bounds each run. Unset means runs are unbounded.
	Deadline deadline.Deadline

	// Grace is passed through to the enforcer. Defaults to enforce.DefaultGrace.
	Grace time.Duration

	// MaxRuns stops the job after this many runs. Zero means unlimited.
	MaxRuns int

	// StopOnError stops the job after the first run that returns an error.
	StopOnError bool

	// OnRun is called after every run with its result.
	OnRun func(RunResult)

	// Location is the timezone for schedule evaluation. Defaults to time.Local.
	Location *time.Location

	// Metrics configures Prometheus metrics collection.
	Metrics metrics.Config
}

// Job executes a unit of work on a cron schedule.
type Job struct {
	config   Config
	schedule cron.Schedule
	enforcer *enforce.Enforcer[struct{}]
	registry *metrics.Registry

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
	runCount int
}

// scheduleParser accepts the optional seconds field and @-descriptors.
var scheduleParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// New creates a recurring Job from the given configuration. The schedule is
// parsed and validated up front; the job does not run until Start.
func New(config Config) (*Job, error) {
	if config.Name == "" {
		config.Name = "job"
	}
	if err := validation.ValidateNotEmpty("recurring", "cron", config.Cron); err != nil {
		return nil, err
	}
	if config.Work == nil {
		return nil, validation.ValidateNotNil("recurring", "work", nil)
	}
	if err := config.Deadline.Validate(); err != nil {
		return nil, err
	}
	if config.MaxRuns < 0 {
		return nil, gderrors.NewValidationError("recurring", "maxRuns", config.MaxRuns,
			"must be non-negative")
	}
	if config.Location == nil {
		config.Location = time.Local
	}

	schedule, err := scheduleParser.Parse(config.Cron)
	if err != nil {
		return nil, gderrors.NewValidationError("recurring", "cron", config.Cron,
			fmt.Sprintf("invalid expression: %v", err))
	}

	enforcer, err := enforce.NewWithConfig[struct{}](enforce.Config{
		Name:  config.Name,
		Grace: config.Grace,
	})
	if err != nil {
		return nil, err
	}

	registry := metrics.DefaultRegistry
	if config.Metrics.Registry != nil {
		registry = metrics.NewRegistry(config.Metrics.Registry)
	}

	return &Job{
		config:   config,
		schedule: schedule,
		enforcer: enforcer,
		registry: registry,
	}, nil
}

// Start begins executing the schedule. Starting a running job is a no-op.
func (j *Job) Start() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.running = true
	j.cancel = cancel
	j.done = make(chan struct{})

	go j.loop(ctx, j.done)
}

// Stop halts the schedule and waits for an in-flight run to return.
// Stopping a stopped job is a no-op.
func (j *Job) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	cancel, done := j.cancel, j.done
	j.mu.Unlock()

	cancel()
	<-done
}

// RunCount returns how many runs have completed.
func (j *Job) RunCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.runCount
}

// Next returns the next scheduled time after now.
func (j *Job) Next() time.Time {
	return j.schedule.Next(time.Now().In(j.config.Location))
}

func (j *Job) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		next := j.schedule.Next(time.Now().In(j.config.Location))
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		result := j.runOnce(ctx)

		j.mu.Lock()
		j.runCount++
		count := j.runCount
		j.mu.Unlock()

		if j.config.OnRun != nil {
			j.config.OnRun(result)
		}

		if result.Err != nil && j.config.StopOnError {
			j.finish()
			return
		}
		if j.config.MaxRuns > 0 && count >= j.config.MaxRuns {
			j.finish()
			return
		}
	}
}

func (j *Job) runOnce(ctx context.Context) RunResult {
	started := time.Now()

	_, err := j.enforcer.Run(ctx, j.config.Deadline,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, j.config.Work(ctx)
		})

	result := RunResult{
		Run:      j.RunCount() + 1,
		Started:  started,
		Duration: time.Since(started),
		Err:      err,
	}

	if j.config.Metrics.Enabled {
		j.registry.RecurringRuns.WithLabelValues(j.config.Name).Inc()
		if err != nil {
			j.registry.RecurringRunFailures.WithLabelValues(j.config.Name).Inc()
		}
	}

	return result
}

// finish marks the job stopped from inside the loop so a later Stop is a
// no-op that does not block.
func (j *Job) finish() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.running = false
	j.cancel()
}

// Package ticker runs a function on a fixed period until stopped.
package ticker

import (
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"retirement-countdown/internal/logger"
)

var (
	ErrInvalidPeriod = errors.New("tick period must be positive")
	ErrNilTask       = errors.New("tick task is required")
)

// Dispatcher hands fn to the goroutine that owns the UI state.
type Dispatcher func(fn func())

// Direct runs fn on the calling goroutine.
func Direct(fn func()) { fn() }

type Options struct {
	Name     string
	Period   time.Duration
	Clock    clockwork.Clock
	Dispatch Dispatcher
	Logger   *logger.ZerologAdapter
}

// Repeater is a cancellable repeating timer over a gocron scheduler. The
// task always runs through Dispatch so scheduler goroutines never touch UI
// state directly.
type Repeater struct {
	name      string
	period    time.Duration
	task      func()
	dispatch  Dispatcher
	scheduler gocron.Scheduler
	log       logger.Logger

	mu       sync.Mutex
	started  bool
	stopped  bool
	stopOnce sync.Once
	stopErr  error
}

func New(opts Options, task func()) (*Repeater, error) {
	if opts.Period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if task == nil {
		return nil, ErrNilTask
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Dispatch == nil {
		opts.Dispatch = Direct
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Name == "" {
		opts.Name = "tick"
	}

	sched, err := gocron.NewScheduler(
		gocron.WithClock(opts.Clock),
		gocron.WithLogger(logger.NewSchedulerLogger(opts.Logger, "Scheduler")),
	)
	if err != nil {
		return nil, err
	}

	r := &Repeater{
		name:      opts.Name,
		period:    opts.Period,
		task:      task,
		dispatch:  opts.Dispatch,
		scheduler: sched,
		log:       opts.Logger,
	}

	_, err = sched.NewJob(
		gocron.DurationJob(opts.Period),
		gocron.NewTask(r.fire),
		gocron.WithName(opts.Name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}

	return r, nil
}

// Step runs the task once, synchronously, on the caller's goroutine.
func (r *Repeater) Step() {
	r.task()
}

// Start begins periodic ticks. Calling Start after Stop does nothing.
func (r *Repeater) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started || r.stopped {
		return
	}
	r.started = true

	r.log.Debug("Ticker", "starting", map[string]interface{}{
		"name":   r.name,
		"period": r.period.String(),
	})
	r.scheduler.Start()
}

// Stop shuts the scheduler down. It is safe to call more than once.
func (r *Repeater) Stop() error {
	r.stopOnce.Do(func() {
		r.mu.Lock()
		r.stopped = true
		r.mu.Unlock()

		r.log.Debug("Ticker", "stopping", map[string]interface{}{"name": r.name})
		r.stopErr = r.scheduler.Shutdown()
	})
	return r.stopErr
}

// Shutdown satisfies shutdown.Shutdownable.
func (r *Repeater) Shutdown() {
	if err := r.Stop(); err != nil {
		r.log.Error("Ticker", err, map[string]interface{}{"name": r.name})
	}
}

func (r *Repeater) Stopped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopped
}

func (r *Repeater) fire() {
	r.dispatch(func() {
		if r.Stopped() {
			return
		}
		r.task()
	})
}

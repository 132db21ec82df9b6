package reconciler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Schedule holds the cron expressions of the reconciliation jobs.
type Schedule struct {
	CapacityRecompute string
	OverdueSweep      string
}

// DefaultSchedule recomputes capacity at midnight and sweeps overdue loans at 1 AM.
var DefaultSchedule = Schedule{
	CapacityRecompute: "0 0 * * *",
	OverdueSweep:      "0 1 * * *",
}

// Scheduler triggers Reconciler passes on a cron schedule.
// A job still running when its next tick fires is skipped.
type Scheduler struct {
	cron   *cron.Cron
	logger zerolog.Logger

	mu  sync.Mutex
	ctx context.Context

	stop     chan struct{}
	stopOnce sync.Once
	watcher  chan struct{}
}

// NewScheduler registers both reconciliation jobs and returns a stopped Scheduler.
func NewScheduler(r *Reconciler, schedule Schedule, logger zerolog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger.With().Str("component", "cron").Logger()}

	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger:  logger,
		ctx:     context.Background(),
		stop:    make(chan struct{}),
		watcher: make(chan struct{}),
	}

	jobs := []struct {
		name string
		spec string
		run  func(context.Context) (Summary, error)
	}{
		{"capacity_recompute", schedule.CapacityRecompute, r.RecomputeCapacity},
		{"overdue_sweep", schedule.OverdueSweep, r.SweepOverdue},
	}

	for _, j := range jobs {
		j := j

		if _, err := s.cron.AddFunc(j.spec, func() { s.run(j.name, j.run) }); err != nil {
			return nil, fmt.Errorf("schedule %s %q: %w", j.name, j.spec, err)
		}
	}

	return s, nil
}

func (s *Scheduler) run(name string, job func(context.Context) (Summary, error)) {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	l := s.logger.With().Str("job", name).Logger()
	ctx = l.WithContext(ctx)

	if _, err := job(ctx); err != nil {
		l.Error().Err(err).Msg("job failed")
	}
}

// Start runs the scheduler in the background. Jobs receive ctx and the
// scheduler stops on its own when ctx is done. Start must be called at most once.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	s.cron.Start()
	s.logger.Info().Int("jobs", len(s.cron.Entries())).Msg("reconciliation scheduler started")

	go func() {
		defer close(s.watcher)

		select {
		case <-ctx.Done():
			s.Stop()
		case <-s.stop:
		}
	}()
}

// Stop prevents new runs and waits for the running ones to finish.
// It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.cron.Stop().Done()
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	l zerolog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug().Fields(keysAndValues).Msg(msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

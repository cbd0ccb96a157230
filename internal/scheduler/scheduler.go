package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job represents a scheduled task
type Job func(ctx context.Context) error

// Scheduler manages periodic tasks. Cron jobs never overlap with
// themselves: a run that is still going when the next tick fires causes
// that tick to be skipped.
type Scheduler struct {
	cron     *cron.Cron
	mu       sync.Mutex
	jobs     map[string]cron.EntryID
	timezone *time.Location
	timeout  time.Duration
	log      logrus.FieldLogger
}

// New creates a new scheduler with the given timezone
func New(timezone string, logger logrus.FieldLogger) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %s: %w", timezone, err)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithField("component", "scheduler")

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger))),
	)

	return &Scheduler{
		cron:     c,
		jobs:     make(map[string]cron.EntryID),
		timezone: loc,
		timeout:  30 * time.Minute,
		log:      logger,
	}, nil
}

// AddJob adds a job with a cron schedule
// schedule format: "0 7 * * *" (at 7:00 AM daily) or "@every 4h"
func (s *Scheduler) AddJob(name, schedule string, job Job) error {
	entryID, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.run(ctx, name, job)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	s.mu.Lock()
	if old, ok := s.jobs[name]; ok {
		s.cron.Remove(old)
	}
	s.jobs[name] = entryID
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"job": name, "schedule": schedule}).Info("added job")
	return nil
}

// AddIntervalJob adds a job that runs every interval
func (s *Scheduler) AddIntervalJob(name string, interval time.Duration, job Job) error {
	if interval <= 0 {
		return fmt.Errorf("job %s: interval must be positive", name)
	}
	return s.AddJob(name, "@every "+interval.String(), job)
}

// RemoveJob removes a scheduled job
func (s *Scheduler) RemoveJob(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entryID, ok := s.jobs[name]; ok {
		s.cron.Remove(entryID)
		delete(s.jobs, name)
		s.log.WithField("job", name).Info("removed job")
	}
}

// Start begins running scheduled jobs
func (s *Scheduler) Start() {
	s.log.Info("starting scheduler")
	s.cron.Start()
}

// Stop halts the scheduler. The returned context is done once running
// jobs have finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("stopping scheduler")
	return s.cron.Stop()
}

// RunNow immediately executes a job
func (s *Scheduler) RunNow(ctx context.Context, name string, job Job) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.run(ctx, name, job)
}

func (s *Scheduler) run(ctx context.Context, name string, job Job) error {
	log := s.log.WithField("job", name)
	log.Debug("starting job")
	start := time.Now()

	err := job(ctx)
	if err != nil {
		log.WithError(err).Error("job failed")
	} else {
		log.WithField("duration", time.Since(start).String()).Debug("job completed")
	}
	return err
}

// RunLoop runs job after startDelay and then again interval after each run
// finishes, until ctx is done. Runs never overlap and missed runs are not
// caught up. Job errors are logged and do not stop the loop.
func (s *Scheduler) RunLoop(ctx context.Context, name string, startDelay, interval time.Duration, job Job) error {
	s.log.WithFields(logrus.Fields{
		"job":         name,
		"start_delay": startDelay.String(),
		"interval":    interval.String(),
	}).Info("starting loop")

	timer := time.NewTimer(startDelay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.WithField("job", name).Info("loop stopped")
			return ctx.Err()
		case <-timer.C:
		}

		_ = s.run(ctx, name, job)
		if ctx.Err() != nil {
			continue
		}
		timer.Reset(interval)
	}
}

// ListJobs returns info about scheduled jobs
func (s *Scheduler) ListJobs() []JobInfo {
	entries := s.cron.Entries()

	s.mu.Lock()
	defer s.mu.Unlock()
	infos := make([]JobInfo, 0, len(s.jobs))
	for name, entryID := range s.jobs {
		for _, entry := range entries {
			if entry.ID == entryID {
				infos = append(infos, JobInfo{
					Name:    name,
					NextRun: entry.Next,
					LastRun: entry.Prev,
				})
				break
			}
		}
	}

	return infos
}

// JobInfo contains information about a scheduled job
type JobInfo struct {
	Name    string    `json:"name"`
	NextRun time.Time `json:"next_run"`
	LastRun time.Time `json:"last_run"`
}

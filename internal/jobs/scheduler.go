package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// Scheduler runs jobs on cron specs such as "@every 1h" or "0 9 * * *".
type Scheduler struct {
	c *cron.Cron
}

func NewScheduler() *Scheduler {
	return &Scheduler{c: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))}
}

func (s *Scheduler) Add(spec string, job cron.Job) error {
	if _, err := s.c.AddJob(spec, job); err != nil {
		return fmt.Errorf("bad schedule %q: %w", spec, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.c.Start()
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.c.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.c.Entries())
}

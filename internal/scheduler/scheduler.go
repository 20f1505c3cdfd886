// Package scheduler triggers job search runs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Job is one scheduled run.
type Job func(ctx context.Context)

// Scheduler wraps robfig/cron. A tick that fires while the previous run is
// still going is skipped, so runs never overlap.
type Scheduler struct {
	cron *cron.Cron
	spec string
	job  Job
}

// New parses spec (standard 5-field cron or descriptors like "@every 6h").
func New(spec string, job Job) (*Scheduler, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return &Scheduler{cron: cron.New(), spec: spec, job: job}, nil
}

// Run starts the schedule and blocks until ctx is done, then waits for a
// running job to finish. With immediate set, one run starts right away.
func (s *Scheduler) Run(ctx context.Context, immediate bool) error {
	wrapped := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		log.Info().Str("schedule", s.spec).Msg("⏰ Scheduled run started")
		s.job(ctx)
	}))
	if _, err := s.cron.AddJob(s.spec, wrapped); err != nil {
		return fmt.Errorf("cron.AddJob: %w", err)
	}

	s.cron.Start()
	log.Info().Str("schedule", s.spec).Msg("Cron started")
	if next := s.Next(); !next.IsZero() {
		log.Info().Time("next", next).Msg("Next run scheduled")
	}

	var wg sync.WaitGroup
	if immediate {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wrapped.Run()
		}()
	}

	<-ctx.Done()
	stopped := s.cron.Stop()
	<-stopped.Done()
	wg.Wait()
	log.Info().Msg("Cron stopped")
	return nil
}

// Next is the time of the next scheduled run, zero before Run.
func (s *Scheduler) Next() (next time.Time) {
	for _, e := range s.cron.Entries() {
		if next.IsZero() || e.Next.Before(next) {
			next = e.Next
		}
	}
	return next
}

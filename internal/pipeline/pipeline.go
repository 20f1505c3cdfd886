// Package pipeline runs one end to end job search: resume keywords, scraping,
// dedup, filtering, storage and the digest.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobsearch-automation/internal/aggregator"
	"go-jobsearch-automation/internal/browser"
	"go-jobsearch-automation/internal/database"
	"go-jobsearch-automation/internal/dedup"
	"go-jobsearch-automation/internal/filter"
	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/models"
	"go-jobsearch-automation/internal/reporter"
	"go-jobsearch-automation/internal/resume"
	"go-jobsearch-automation/internal/scraper"
	"go-jobsearch-automation/utils"

	"github.com/rs/zerolog/log"
)

// RendererFactory opens the run's browser session and returns its release func.
type RendererFactory func() (browser.Renderer, func() error, error)

type Deps struct {
	Store        database.Repository
	Resume       resume.Source
	ResumePath   string
	Extractor    *keywords.Extractor
	Filter       *filter.Filter
	Sources      SourceFactory
	OpenRenderer RendererFactory
	Notifiers    []reporter.Notifier
	// Delay is slept once after all sources ran.
	Delay time.Duration
	Now   func() time.Time
}

// Report summarises a run.
type Report struct {
	Start      time.Time
	Keywords   keywords.Set
	Sources    []aggregator.SourceReport
	Found      int
	// NoURL counts jobs dropped because they carry no usable URL.
	NoURL      int
	Duplicates int
	Rejected   int
	// Known is how many URLs the store and the run had seen when filtering ended.
	Known      int
	Saved      []models.ScoredJob
	Digest     []models.ScoredJob
}

type Runner struct {
	d Deps
}

func New(d Deps) *Runner {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Runner{d: d}
}

// Run performs one search. It fails only when the resume or the store cannot
// be used; everything else degrades and is logged.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	rep := Report{Start: r.d.Now()}
	log.Info().Time("start", rep.Start).Msg("🚀 Job search started")

	kw, err := r.d.Extractor.FromResume(ctx, r.d.Resume, r.d.ResumePath)
	if err != nil {
		return rep, fmt.Errorf("could not parse resume or extract keywords: %w", err)
	}
	if kw.Empty() {
		log.Warn().Str("resume", r.d.ResumePath).Msg("⚠️ No skills or roles found in resume, nothing will match")
	}
	rep.Keywords = kw

	seen, err := dedup.Load(ctx, r.d.Store)
	if err != nil {
		return rep, err
	}

	renderer, release := r.openRenderer()
	defer release()

	agg := aggregator.Aggregate(ctx, r.d.Sources(renderer), kw)
	rep.Sources = agg.Sources
	rep.Found = len(agg.Jobs)

	if err := utils.Pause(ctx, r.d.Delay); err != nil {
		return rep, err
	}

	log.Info().Int("jobs", len(agg.Jobs)).Msgf("Filtering %d total jobs from all sources...", len(agg.Jobs))
	for _, job := range agg.Jobs {
		if job.URL == "" || job.URL == scraper.NA {
			rep.NoURL++
			continue
		}
		if !seen.Mark(job.URL) {
			rep.Duplicates++
			continue
		}
		scored, ok := r.d.Filter.Apply(job, kw)
		if !ok {
			rep.Rejected++
			continue
		}
		inserted, err := r.d.Store.Insert(ctx, scored)
		if err != nil {
			log.Error().Err(err).Str("url", scored.URL).Msg("❌ Failed to save job")
			continue
		}
		if !inserted {
			rep.Duplicates++
			continue
		}
		rep.Saved = append(rep.Saved, scored)
		log.Info().Str("title", scored.Title).Str("company", scored.Company).Int("score", scored.RelevanceScore).
			Msg("💾 Saved and marked for notification")
	}

	rep.Known = seen.Len()

	if len(rep.Saved) == 0 {
		log.Info().Msg("No new relevant jobs found during this run.")
		return rep, nil
	}

	rep.Digest, err = r.d.Store.Since(ctx, rep.Start)
	if err != nil {
		log.Error().Err(err).Msg("❌ Could not load jobs for the digest")
		return rep, nil
	}
	if err := r.notify(ctx, rep.Digest); err != nil {
		log.Warn().Err(err).Msg("⚠️ Some notifications failed")
	}

	log.Info().Int("found", rep.Found).Int("duplicates", rep.Duplicates).Int("no_url", rep.NoURL).Int("rejected", rep.Rejected).Int("known", rep.Known).
		Int("saved", len(rep.Saved)).Dur("took", r.d.Now().Sub(rep.Start)).Msg("🏁 Job search finished")
	return rep, nil
}

// Digest notifies about every job stored since t.
func (r *Runner) Digest(ctx context.Context, since time.Time) ([]models.ScoredJob, error) {
	jobs, err := r.d.Store.Since(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("load jobs since %s: %w", since.Format(time.RFC3339), err)
	}
	if len(jobs) == 0 {
		log.Info().Time("since", since).Msg("No new jobs to report.")
		return nil, nil
	}
	return jobs, r.notify(ctx, jobs)
}

func (r *Runner) notify(ctx context.Context, jobs []models.ScoredJob) error {
	subject, body := reporter.Digest(jobs)
	log.Info().Int("jobs", len(jobs)).Msgf("Sending notifications for %d new relevant jobs...", len(jobs))
	return reporter.Broadcast(ctx, r.d.Notifiers, subject, body)
}

// openRenderer never fails the run: without a browser the rendering sources come back empty.
func (r *Runner) openRenderer() (browser.Renderer, func()) {
	noop := func() {}
	if r.d.OpenRenderer == nil {
		return nil, noop
	}
	renderer, closeFn, err := r.d.OpenRenderer()
	if err != nil || renderer == nil {
		log.Warn().Err(err).Msg("⚠️ Failed to initialize browser session, continuing without it")
		return nil, noop
	}
	return renderer, func() {
		if closeFn == nil {
			return
		}
		if err := closeFn(); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn().Err(err).Msg("⚠️ Error closing browser session")
			return
		}
		log.Info().Msg("Browser session closed.")
	}
}

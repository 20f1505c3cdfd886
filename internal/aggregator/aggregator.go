// Package aggregator runs every source once and merges what they found.
package aggregator

import (
	"context"
	"fmt"
	"time"

	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/scraper"

	"github.com/rs/zerolog/log"
)

// SourceReport is one source's share of a run.
type SourceReport struct {
	Source   string
	Jobs     int
	Skipped  int
	Failed   int
	Err      error
	Duration time.Duration
}

type Result struct {
	Jobs    []scraper.Job
	Sources []SourceReport
}

// Failures returns the reports of sources that ended with an error.
func (r Result) Failures() []SourceReport {
	var out []SourceReport
	for _, s := range r.Sources {
		if s.Err != nil {
			out = append(out, s)
		}
	}
	return out
}

// Aggregate runs sources in order. Jobs keep source order, then card order.
// A source that panics contributes nothing and the others still run.
func Aggregate(ctx context.Context, sources []scraper.Source, kw keywords.Set) Result {
	var out Result
	for _, src := range sources {
		if ctx.Err() != nil {
			break
		}
		start := time.Now()
		res := runSource(ctx, src, kw)
		out.Jobs = append(out.Jobs, res.Jobs...)
		out.Sources = append(out.Sources, SourceReport{
			Source:   res.Source,
			Jobs:     len(res.Jobs),
			Skipped:  res.Count(scraper.OutcomeSkipped),
			Failed:   res.Count(scraper.OutcomeFailed),
			Err:      res.Err,
			Duration: time.Since(start),
		})
	}
	log.Info().Int("total", len(out.Jobs)).Int("sources", len(out.Sources)).Msgf("📊 Found %d jobs from all sources.", len(out.Jobs))
	return out
}

func runSource(ctx context.Context, src scraper.Source, kw keywords.Set) (res scraper.Result) {
	name := src.Name()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("source", name).Interface("panic", r).Msg("❌ Source crashed, skipping it")
			res = scraper.Result{Source: name, Err: fmt.Errorf("%s: panic: %v", name, r)}
		}
	}()
	return scraper.Run(ctx, src, kw)
}

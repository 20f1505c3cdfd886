package scraper

import (
	"context"
	"fmt"

	"go-jobsearch-automation/internal/keywords"

	"github.com/rs/zerolog/log"
)

// Result is what one source produced in a run.
type Result struct {
	Source string
	Jobs   []Job
	Cards  []CardResult
	Err    error
}

// Count returns how many cards ended with the given outcome.
func (r Result) Count(o Outcome) int {
	n := 0
	for _, c := range r.Cards {
		if c.Outcome == o {
			n++
		}
	}
	return n
}

// Run drives a source through query, listing, cards and fields.
// A listing failure yields an empty result with Err set; a failing card
// never aborts the remaining cards.
func Run(ctx context.Context, src Source, kw keywords.Set) Result {
	res := Result{Source: src.Name()}
	logger := log.With().Str("source", src.Name()).Logger()

	q := src.BuildQuery(kw)
	listing, err := src.FetchListing(ctx, q)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Could not fetch listing")
		res.Err = fmt.Errorf("%s: fetch listing: %w", src.Name(), err)
		return res
	}

	cards, err := src.ExtractCards(listing)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Could not read listing")
		res.Err = fmt.Errorf("%s: extract cards: %w", src.Name(), err)
		return res
	}
	if len(cards) == 0 {
		logger.Info().Msg("No job cards found. Check selectors or page structure.")
	}

	for _, card := range cards {
		if err := ctx.Err(); err != nil {
			res.Err = err
			break
		}
		cr := extractCard(ctx, src, card)
		res.Cards = append(res.Cards, cr)
		switch cr.Outcome {
		case OutcomeOK:
			res.Jobs = append(res.Jobs, cr.Job)
			logger.Debug().Str("title", cr.Job.Title).Str("company", cr.Job.Company).Msg("✅ card extracted")
		default:
			logger.Debug().Int("card", card.Index).Str("outcome", cr.Outcome.String()).Str("reason", cr.Reason).Msg("card not extracted")
		}
	}

	logger.Info().Int("jobs", len(res.Jobs)).Int("skipped", res.Count(OutcomeSkipped)).Int("failed", res.Count(OutcomeFailed)).
		Msgf("📦 Found %d jobs on %s.", len(res.Jobs), src.Name())
	return res
}

func extractCard(ctx context.Context, src Source, card Card) (cr CardResult) {
	defer func() {
		if r := recover(); r != nil {
			cr = Failed(fmt.Sprintf("panic: %v", r))
		}
	}()
	cr = src.ExtractFields(ctx, card)
	if cr.Outcome == OutcomeOK {
		cr.Job.Source = src.Name()
	}
	return cr
}

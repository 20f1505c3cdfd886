// Package linkedin is a placeholder adapter. LinkedIn forbids automated
// access, so the source is registered but never scraped.
package linkedin

import (
	"context"

	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/scraper"

	"github.com/rs/zerolog/log"
)

type Scraper struct{}

func New() *Scraper { return &Scraper{} }

func (s *Scraper) Name() string { return "LinkedIn" }

func (s *Scraper) BuildQuery(keywords.Set) scraper.Query { return scraper.Query{} }

func (s *Scraper) FetchListing(context.Context, scraper.Query) (string, error) {
	log.Info().Str("source", s.Name()).Msg("💼 LinkedIn scraping skipped: source is excluded by its terms of service.")
	return "", nil
}

func (s *Scraper) ExtractCards(string) ([]scraper.Card, error) { return nil, nil }

func (s *Scraper) ExtractFields(context.Context, scraper.Card) scraper.CardResult {
	return scraper.Skipped("source excluded")
}

// Package wfp scrapes the World Food Programme Workday site, which only lists
// results after a search is typed in.
package wfp

import (
	"context"
	"strings"
	"time"

	"go-jobsearch-automation/internal/browser"
	"go-jobsearch-automation/internal/extract"
	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/scraper"

	"github.com/rs/zerolog/log"
)

const (
	openingsURL = "https://wd3.myworkdaysite.com/recruiting/wfp/job_openings"
	company     = "World Food Programme"
)

const (
	inputSelector    = `input[aria-label*="Search"], input[data-automation-id="searchText"]`
	cardSelector     = `li[data-automation-id*="compositeJobCard"]`
	titleSelector    = `h3[data-automation-id*="jobTitle"]`
	linkSelector     = `h3[data-automation-id*="jobTitle"] a`
	locationSelector = `div[data-automation-id*="locationsText"]`
)

type Scraper struct {
	fetcher *extract.Fetcher
	now     func() time.Time
}

func New(fetcher *extract.Fetcher, now func() time.Time) *Scraper {
	if now == nil {
		now = time.Now
	}
	return &Scraper{fetcher: fetcher, now: now}
}

func (s *Scraper) Name() string { return "WFP Careers" }

func (s *Scraper) BuildQuery(kw keywords.Set) scraper.Query {
	terms := append(kw.Roles(), kw.Skills()...)
	terms = append(terms, "remote")
	return scraper.Query{Text: strings.Join(terms, " "), Terms: terms}
}

func (s *Scraper) FetchListing(ctx context.Context, q scraper.Query) (string, error) {
	if s.fetcher.Renderer == nil {
		return "", scraper.ErrNoRenderer
	}
	log.Info().Str("source", s.Name()).Strs("keywords", q.Terms).Msg("🔍 Scraping WFP Careers")
	return s.fetcher.Renderer.Search(ctx, openingsURL, browser.SearchOptions{
		Input:   inputSelector,
		Text:    strings.Join(q.Terms, " "),
		WaitFor: cardSelector,
	})
}

func (s *Scraper) ExtractCards(listing string) ([]scraper.Card, error) {
	doc, err := scraper.ParseHTML(listing)
	if err != nil {
		return nil, err
	}
	return scraper.FindCards(doc, cardSelector), nil
}

func (s *Scraper) ExtractFields(ctx context.Context, card scraper.Card) scraper.CardResult {
	title := scraper.Text(card.Sel, titleSelector)
	if title == "" {
		return scraper.Skipped("no title")
	}

	jobURL := scraper.NA
	if href, ok := scraper.Attr(card.Sel, linkSelector, "href"); ok {
		jobURL = scraper.Resolve(openingsURL, href)
	}

	return scraper.OK(scraper.Job{
		Title:       title,
		Company:     company,
		Location:    scraper.Text(card.Sel, locationSelector),
		URL:         jobURL,
		Description: s.fetcher.ViaBrowser(ctx, jobURL, "body", extract.DetailChain()...),
		DatePosted:  s.now().Format(scraper.DateLayout),
	})
}

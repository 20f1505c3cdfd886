// Package microsoft scrapes the Microsoft careers search, filtered to Nairobi.
package microsoft

import (
	"context"
	"net/url"
	"strings"
	"time"

	"go-jobsearch-automation/internal/browser"
	"go-jobsearch-automation/internal/extract"
	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/scraper"

	"github.com/rs/zerolog/log"
)

const (
	searchURL = "https://jobs.careers.microsoft.com/global/en/search?"
	location  = "Nairobi%2C%20Nairobi%20City%2C%20Kenya"
	company   = "Microsoft"
)

const (
	cardSelector     = "li.job-card"
	titleSelector    = "h3.job-title"
	linkSelector     = "a.job-link"
	locationSelector = "span.job-location"
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

func (s *Scraper) Name() string { return "Microsoft Careers" }

func (s *Scraper) BuildQuery(kw keywords.Set) scraper.Query {
	terms := append(kw.Roles(), kw.Skills()...)
	for i, t := range terms {
		terms[i] = url.PathEscape(t)
	}
	return scraper.Query{Text: "q=" + strings.Join(terms, "%20") + "&lc=" + location}
}

func (s *Scraper) FetchListing(ctx context.Context, q scraper.Query) (string, error) {
	if s.fetcher.Renderer == nil {
		return "", scraper.ErrNoRenderer
	}
	log.Info().Str("source", s.Name()).Str("query", q.Text).Msg("🔍 Scraping Microsoft Careers")
	return s.fetcher.Renderer.Render(ctx, searchURL+q.Text, browser.RenderOptions{WaitFor: cardSelector})
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
		jobURL = scraper.Resolve(searchURL, href)
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

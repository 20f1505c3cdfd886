// Package wellfound scrapes remote listings on wellfound.com. The results
// page is client rendered, so the listing goes through the browser.
package wellfound

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go-jobsearch-automation/internal/browser"
	"go-jobsearch-automation/internal/extract"
	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/scraper"

	"github.com/rs/zerolog/log"
)

const baseURL = "https://wellfound.com"

const (
	cardSelector     = `div[data-test="JobCard"]`
	titleSelector    = `h2[data-test="job-card-title"], h3[data-test="job-card-title"], h2[class*="title"], h3[class*="title"]`
	companySelector  = `div[data-test="job-card-company-name"], a[data-test="JobCard_companyLink"]`
	locationSelector = `div[data-test="job-card-location"], span[class*="location"]`
	linkSelector     = `a[data-test="JobCard_link"], a[href*="/jobs/"]`

	// listingSettle gives the dynamic results time to load.
	listingSettle = 5 * time.Second
)

var cardClassRegex = regexp.MustCompile(`styles_jobCard`)

type Scraper struct {
	fetcher *extract.Fetcher
	now     func() time.Time
}

// New returns the Wellfound adapter. The listing is rendered with
// fetcher.Renderer; descriptions go over HTTP first.
func New(fetcher *extract.Fetcher, now func() time.Time) *Scraper {
	if now == nil {
		now = time.Now
	}
	return &Scraper{fetcher: fetcher, now: now}
}

func (s *Scraper) Name() string { return "Wellfound" }

func (s *Scraper) BuildQuery(kw keywords.Set) scraper.Query {
	terms := append(kw.Roles(), kw.Skills()...)
	terms = append(terms, "remote")
	for i, t := range terms {
		terms[i] = url.QueryEscape(t)
	}
	return scraper.Query{Text: strings.Join(terms, "+")}
}

func (s *Scraper) FetchListing(ctx context.Context, q scraper.Query) (string, error) {
	if s.fetcher.Renderer == nil {
		return "", scraper.ErrNoRenderer
	}
	searchURL := baseURL + "/jobs?q=" + q.Text + "&remote=true"
	log.Info().Str("source", s.Name()).Str("url", searchURL).Msg("🔍 Scraping Wellfound")
	return s.fetcher.Renderer.Render(ctx, searchURL, browser.RenderOptions{Settle: listingSettle, Scroll: true})
}

func (s *Scraper) ExtractCards(listing string) ([]scraper.Card, error) {
	doc, err := scraper.ParseHTML(listing)
	if err != nil {
		return nil, err
	}
	if cards := scraper.FindCards(doc, cardSelector); len(cards) > 0 {
		return cards, nil
	}
	return scraper.CardsFrom(scraper.ClassMatching(doc, "div", cardClassRegex)), nil
}

func (s *Scraper) ExtractFields(ctx context.Context, card scraper.Card) scraper.CardResult {
	title := scraper.Text(card.Sel, titleSelector)
	if title == "" {
		return scraper.Skipped("no title")
	}

	jobURL := scraper.NA
	if href, ok := scraper.Attr(card.Sel, linkSelector, "href"); ok {
		jobURL = scraper.Resolve(baseURL, href)
	}

	return scraper.OK(scraper.Job{
		Title:       title,
		Company:     scraper.Text(card.Sel, companySelector),
		Location:    scraper.Text(card.Sel, locationSelector),
		URL:         jobURL,
		Description: s.fetcher.HTTPThenBrowser(ctx, jobURL),
		DatePosted:  s.now().Format(scraper.DateLayout),
	})
}

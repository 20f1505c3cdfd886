// Package uncareers scrapes the IT job family on careers.un.org.
package uncareers

import (
	"context"
	"net/url"
	"time"

	"go-jobsearch-automation/internal/extract"
	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/scraper"

	"github.com/rs/zerolog/log"
)

const (
	baseURL = "https://careers.un.org"
	// Job family Information Systems and Technology, job network ITECNET.
	itFilter = `{"jf":["IST"],"jn":["ITECNET"]}`

	company = "United Nations"
)

const (
	rowSelector      = "div#searchResultPanel table tbody tr.row, div#job-openings-table tbody tr"
	cardSelector     = "div.job-listing-card, li.job-item"
	titleSelector    = "td:nth-child(1) a, h3.job-title a"
	locationSelector = "td:nth-child(3), .job-location span"
	periodSelector   = "td:last-child, .job-posted-date"

	descriptionSelector = "#job-description-text, div.job-detail-content, div[itemprop='description'], .panel-body.job-description"
)

type Scraper struct {
	http        extract.Getter
	description *extract.Fetcher
	now         func() time.Time
}

func New(http extract.Getter, description *extract.Fetcher, now func() time.Time) *Scraper {
	if now == nil {
		now = time.Now
	}
	return &Scraper{http: http, description: description, now: now}
}

func (s *Scraper) Name() string { return "careers.un.org" }

// BuildQuery ignores keywords; the listing is pre-filtered to IT openings.
func (s *Scraper) BuildQuery(keywords.Set) scraper.Query {
	return scraper.Query{Text: "data=" + url.QueryEscape(itFilter)}
}

func (s *Scraper) FetchListing(ctx context.Context, q scraper.Query) (string, error) {
	log.Info().Str("source", s.Name()).Msg("🔍 Scraping careers.un.org for IT jobs")
	return s.http.Get(ctx, baseURL+"/jobopening?"+q.Text)
}

func (s *Scraper) ExtractCards(listing string) ([]scraper.Card, error) {
	doc, err := scraper.ParseHTML(listing)
	if err != nil {
		return nil, err
	}
	return scraper.FindCards(doc, rowSelector, cardSelector), nil
}

func (s *Scraper) ExtractFields(ctx context.Context, card scraper.Card) scraper.CardResult {
	title := scraper.Text(card.Sel, titleSelector)
	if title == "" {
		return scraper.Skipped("no title")
	}

	jobURL := scraper.NA
	if href, ok := scraper.Attr(card.Sel, titleSelector, "href"); ok {
		jobURL = scraper.Resolve(baseURL, href)
	}

	period := scraper.RangeStart(scraper.Text(card.Sel, periodSelector))

	return scraper.OK(scraper.Job{
		Title:       title,
		Company:     company,
		Location:    scraper.Text(card.Sel, locationSelector),
		URL:         jobURL,
		Description: s.description.ViaHTTP(ctx, jobURL, descriptionSelector),
		DatePosted:  scraper.NormalizeDate(period, s.now()),
	})
}

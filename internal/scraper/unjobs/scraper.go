// Package unjobs scrapes the unjobs.org aggregator. Listings link to a vacancy
// page on unjobs.org, which in turn links to the hiring organisation.
package unjobs

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go-jobsearch-automation/internal/extract"
	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/scraper"
	"go-jobsearch-automation/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

const (
	baseURL     = "https://unjobs.org"
	vacancyPath = "unjobs.org/vacancies"

	// Placeholder stored as description; unjobs only shows a teaser.
	Placeholder = "Aggregator listing - refer to external URL for full details."
)

const (
	cardSelector     = "div.card.mb-3"
	titleSelector    = "h5.card-title a, h4.card-title a"
	companySelector  = "h6.card-subtitle, .job-agency"
	locationSelector = "i.bi-geo-alt-fill + span, .job-location-text"
	dateSelector     = "span.text-muted small, .job-posted-date"
	applyFallback    = "a[href*='apply.'], a[href*='careers.']"
)

var (
	cardClassRegex = regexp.MustCompile(`job-card|listing-card`)
	applyTextRegex = regexp.MustCompile(`(?i)apply|more info`)
)

type Scraper struct {
	http  extract.Getter
	delay time.Duration
	now   func() time.Time
}

// New returns the unjobs.org adapter. delay is slept before each vacancy page fetch.
func New(http extract.Getter, delay time.Duration, now func() time.Time) *Scraper {
	if now == nil {
		now = time.Now
	}
	return &Scraper{http: http, delay: delay, now: now}
}

func (s *Scraper) Name() string { return "unjobs.org" }

func (s *Scraper) BuildQuery(kw keywords.Set) scraper.Query {
	terms := append(kw.Roles(), kw.Skills()...)
	terms = append(terms, "remote ngo united nations")
	return scraper.Query{Text: strings.Join(terms, " ")}
}

func (s *Scraper) FetchListing(ctx context.Context, q scraper.Query) (string, error) {
	searchURL := baseURL + "/?q=" + url.PathEscape(q.Text)
	log.Info().Str("source", s.Name()).Str("query", q.Text).Msg("🔍 Scraping unjobs.org")
	return s.http.Get(ctx, searchURL)
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

	vacancyURL := scraper.NA
	if href, ok := scraper.Attr(card.Sel, titleSelector, "href"); ok {
		vacancyURL = scraper.Resolve(baseURL, href)
	}

	return scraper.OK(scraper.Job{
		Title:       title,
		Company:     scraper.Text(card.Sel, companySelector),
		Location:    scraper.Text(card.Sel, locationSelector),
		URL:         s.applicationURL(ctx, vacancyURL),
		Description: Placeholder,
		DatePosted:  scraper.NormalizeDate(scraper.Text(card.Sel, dateSelector), s.now()),
	})
}

// applicationURL visits the vacancy page and returns its apply link, or NA.
func (s *Scraper) applicationURL(ctx context.Context, vacancyURL string) string {
	if !strings.Contains(vacancyURL, vacancyPath) {
		return scraper.NA
	}
	if err := utils.Pause(ctx, s.delay); err != nil {
		return scraper.NA
	}

	logger := log.With().Str("source", s.Name()).Str("url", vacancyURL).Logger()
	page, err := s.http.Get(ctx, vacancyURL)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Error fetching vacancy page")
		return scraper.NA
	}
	doc, err := scraper.ParseHTML(page)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Error parsing vacancy page")
		return scraper.NA
	}
	if href := ApplyLink(doc); href != "" {
		return href
	}
	logger.Warn().Msg("Could not find 'Apply' link")
	return scraper.NA
}

// ApplyLink finds the outbound application link on a vacancy page.
func ApplyLink(doc *goquery.Document) string {
	btn := doc.Find("a.btn").FilterFunction(func(_ int, a *goquery.Selection) bool {
		return applyTextRegex.MatchString(a.Text())
	}).First()
	if href, ok := btn.Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href)
	}
	if href, ok := doc.Find(applyFallback).First().Attr("href"); ok {
		return strings.TrimSpace(href)
	}
	return ""
}

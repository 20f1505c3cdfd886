// Define an interface for all job board sources
// Ensure every board produces the same normalized Job

package scraper

import (
	"context"
	"errors"
	"strings"

	"go-jobsearch-automation/internal/extract"
	"go-jobsearch-automation/internal/keywords"

	"github.com/PuerkitoBio/goquery"
)

// NA is the sentinel for a field that could not be extracted.
const NA = "N/A"

// ErrNoRenderer is returned by rendering sources when no browser session could be opened.
var ErrNoRenderer = errors.New("browser session not available")

type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	Description string `json:"description"`
	DatePosted  string `json:"date_posted"`
	Source      string `json:"source"`
}

// Query is what a source searches with. Most boards take a single string,
// boards with an interactive search box take a list of terms.
type Query struct {
	Text  string
	Terms []string
}

// Card is one listing fragment of a search results page.
type Card struct {
	Index int
	Sel   *goquery.Selection
}

// Source defines the capability set every job board adapter implements
type Source interface {
	//Name is the board name (unjobs.org, Wellfound, ...)
	Name() string

	//BuildQuery turns resume keywords into the board's query form
	BuildQuery(kw keywords.Set) Query

	//FetchListing returns the raw search results page
	FetchListing(ctx context.Context, q Query) (string, error)

	//ExtractCards splits the results page into cards
	ExtractCards(listing string) ([]Card, error)

	//ExtractFields turns one card into a job, or says why it could not
	ExtractFields(ctx context.Context, card Card) CardResult
}

type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CardResult is the outcome of extracting a single card.
type CardResult struct {
	Job     Job
	Outcome Outcome
	Reason  string
}

// OK wraps a fully extracted job, filling sentinels and bounding the description.
func OK(job Job) CardResult {
	job.Title = OrNA(job.Title)
	job.Company = OrNA(job.Company)
	job.Location = OrNA(job.Location)
	job.URL = OrNA(job.URL)
	job.Description = extract.Truncate(job.Description, extract.MaxDescriptionLen)
	return CardResult{Job: job, Outcome: OutcomeOK}
}

func Skipped(reason string) CardResult {
	return CardResult{Outcome: OutcomeSkipped, Reason: reason}
}

func Failed(reason string) CardResult {
	return CardResult{Outcome: OutcomeFailed, Reason: reason}
}

// OrNA returns s trimmed, or NA when nothing is left.
func OrNA(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NA
	}
	return s
}

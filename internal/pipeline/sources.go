package pipeline

import (
	"time"

	"go-jobsearch-automation/internal/browser"
	"go-jobsearch-automation/internal/extract"
	"go-jobsearch-automation/internal/scraper"
	"go-jobsearch-automation/internal/scraper/linkedin"
	"go-jobsearch-automation/internal/scraper/microsoft"
	"go-jobsearch-automation/internal/scraper/uncareers"
	"go-jobsearch-automation/internal/scraper/unjobs"
	"go-jobsearch-automation/internal/scraper/wellfound"
	"go-jobsearch-automation/internal/scraper/wfp"
)

// SourceFactory builds the run's sources. renderer is nil when no browser could be opened.
type SourceFactory func(renderer browser.Renderer) []scraper.Source

// DefaultSources returns every board in aggregation order.
func DefaultSources(http extract.Getter, delay time.Duration, now func() time.Time) SourceFactory {
	return func(renderer browser.Renderer) []scraper.Source {
		fetcher := &extract.Fetcher{HTTP: http, Renderer: renderer, Delay: delay}
		return []scraper.Source{
			unjobs.New(http, delay, now),
			uncareers.New(http, fetcher, now),
			wellfound.New(fetcher, now),
			microsoft.New(fetcher, now),
			wfp.New(fetcher, now),
			linkedin.New(),
		}
	}
}

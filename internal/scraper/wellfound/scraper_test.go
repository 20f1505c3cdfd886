package wellfound

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go-jobsearch-automation/internal/browser/browsertest"
	"go-jobsearch-automation/internal/extract"
	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHTTP map[string]string

func (f fakeHTTP) Get(_ context.Context, url string) (string, error) {
	if page, ok := f[url]; ok {
		return page, nil
	}
	return "", errors.New("403 " + url)
}

var today = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

func TestBuildQuery(t *testing.T) {
	s := New(&extract.Fetcher{}, today)
	q := s.BuildQuery(keywords.NewSet([]string{"python", "rest api"}, []string{"backend developer"}, nil))
	assert.Equal(t, "backend+developer+python+rest+api+remote", q.Text)
}

func TestFetchListing_NoRenderer(t *testing.T) {
	res := scraper.Run(context.Background(), New(&extract.Fetcher{}, today), keywords.Set{})
	assert.ErrorIs(t, res.Err, scraper.ErrNoRenderer)
	assert.Empty(t, res.Jobs)
}

func TestRun(t *testing.T) {
	kw := keywords.NewSet([]string{"go"}, nil, nil)
	listingURL := "https://wellfound.com/jobs?q=go+remote&remote=true"

	var cards []string
	for i := 1; i <= 4; i++ {
		title := fmt.Sprintf(`<h2 data-test="job-card-title">Engineer %d</h2>`, i)
		if i == 2 {
			title = ""
		}
		cards = append(cards, fmt.Sprintf(`<div class="styles_jobCard__x1">%s
			<a data-test="JobCard_companyLink">Acme %d</a>
			<span class="job-location">Remote</span>
			<a data-test="JobCard_link" href="/jobs/%d">view</a></div>`, title, i, i))
	}

	renderer := &browsertest.Renderer{Pages: map[string]string{
		listingURL:                     strings.Join(cards, ""),
		"https://wellfound.com/jobs/3": `<div class="job-description">Rendered text</div>`,
	}}
	http := fakeHTTP{"https://wellfound.com/jobs/1": `<div class="description">Fetched text</div>`}
	s := New(&extract.Fetcher{HTTP: http, Renderer: renderer}, today)

	res := scraper.Run(context.Background(), s, kw)
	require.NoError(t, res.Err)
	require.Len(t, res.Jobs, 3)
	assert.Equal(t, 1, res.Count(scraper.OutcomeSkipped))

	assert.Equal(t, "Engineer 1", res.Jobs[0].Title)
	assert.Equal(t, "Acme 1", res.Jobs[0].Company)
	assert.Equal(t, "Remote", res.Jobs[0].Location)
	assert.Equal(t, "https://wellfound.com/jobs/1", res.Jobs[0].URL)
	assert.Equal(t, "Fetched text", res.Jobs[0].Description)
	assert.Equal(t, "2024-05-01", res.Jobs[0].DatePosted)

	require.NotEmpty(t, renderer.Options)
	assert.Equal(t, listingURL, renderer.Rendered[0])
	assert.True(t, renderer.Options[0].Scroll, "listing must scroll to load lazy cards")
	assert.Equal(t, listingSettle, renderer.Options[0].Settle)

	assert.Equal(t, "Rendered text", res.Jobs[1].Description)
	assert.Equal(t, extract.Unavailable("browser"), res.Jobs[2].Description)
}

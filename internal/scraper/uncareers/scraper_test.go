package uncareers

import (
	"context"
	"errors"
	"testing"
	"time"

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
	return "", errors.New("404 " + url)
}

const listing = `<div id="job-openings-table"><table><tbody>
<tr><td><a href="/jobSearchDescription/1">Information Systems Officer</a></td><td>ITECNET</td><td>NEW YORK</td><td>24 July 2023 - 23 August 2023</td></tr>
<tr><td>no link here</td><td>ITECNET</td><td>GENEVA</td><td>1 May 2023 - 1 June 2023</td></tr>
<tr><td><a href="/jobSearchDescription/3">Database Administrator</a></td><td>ITECNET</td><td>Remote</td><td>soon</td></tr>
</tbody></table></div>`

func TestRun(t *testing.T) {
	pages := fakeHTTP{
		"https://careers.un.org/jobopening?data=%7B%22jf%22%3A%5B%22IST%22%5D%2C%22jn%22%3A%5B%22ITECNET%22%5D%7D": listing,
		"https://careers.un.org/jobSearchDescription/1": `<div id="job-description-text"><p>Responsibilities</p><p>Maintain systems</p></div>`,
	}
	now := func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }
	fetcher := &extract.Fetcher{HTTP: pages}

	s := New(pages, fetcher, now)
	q := s.BuildQuery(keywords.Set{})
	require.Contains(t, pages, "https://careers.un.org/jobopening?"+q.Text)

	res := scraper.Run(context.Background(), s, keywords.Set{})
	require.NoError(t, res.Err)
	require.Len(t, res.Jobs, 2)
	assert.Equal(t, 1, res.Count(scraper.OutcomeSkipped))

	first := res.Jobs[0]
	assert.Equal(t, "Information Systems Officer", first.Title)
	assert.Equal(t, "United Nations", first.Company)
	assert.Equal(t, "NEW YORK", first.Location)
	assert.Equal(t, "https://careers.un.org/jobSearchDescription/1", first.URL)
	assert.Equal(t, "Responsibilities\nMaintain systems", first.Description)
	assert.Equal(t, "2023-07-24", first.DatePosted)

	second := res.Jobs[1]
	assert.Equal(t, "2024-01-02", second.DatePosted)
	assert.Equal(t, extract.Unavailable("http"), second.Description)
}

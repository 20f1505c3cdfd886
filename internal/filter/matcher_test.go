package filter

import (
	"testing"
	"time"

	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = func() time.Time { return time.Date(2024, 4, 1, 10, 30, 0, 123456000, time.UTC) }

func acmeJob() scraper.Job {
	return scraper.Job{
		Title:       "Backend Developer",
		Company:     "Acme Global Inc.",
		Location:    "Remote - Worldwide",
		URL:         "https://acme.example/jobs/1",
		Description: "We use python django aws api design every day.",
		DatePosted:  "2024-03-30",
	}
}

var acmeKeywords = keywords.NewSet([]string{"python", "django", "aws"}, []string{"backend developer"}, nil)

func TestApply_FixedExamples(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*scraper.Job)
		threshold int
		skills    []string
		accepted  bool
		score     int
	}{
		{
			name:      "accept",
			threshold: 2,
			accepted:  true,
			score:     4,
		},
		{
			name:      "reject not remote",
			mutate:    func(j *scraper.Job) { j.Location = "New York, NY" },
			threshold: 2,
		},
		{
			name:      "reject insufficient skills",
			threshold: 3,
			skills:    []string{"python", "aws", "kubernetes"},
			mutate:    func(j *scraper.Job) { j.Description = "python and aws" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := acmeJob()
			if tt.mutate != nil {
				tt.mutate(&job)
			}
			kw := acmeKeywords
			if tt.skills != nil {
				kw = keywords.NewSet(tt.skills, []string{"backend developer"}, nil)
			}

			scored, ok := New(tt.threshold, clock).Apply(job, kw)
			require.Equal(t, tt.accepted, ok)
			if !ok {
				assert.Empty(t, scored.URL)
				return
			}
			assert.Equal(t, tt.score, scored.RelevanceScore)
			assert.Equal(t, job.URL, scored.URL)
			assert.Equal(t, "2024-03-30", scored.DatePosted)
			assert.Equal(t, "2024-04-01T10:30:00.123456Z", scored.DateFound)
		})
	}
}

func TestEvaluate_Weighting(t *testing.T) {
	kw := keywords.NewSet([]string{"python", "docker", "sql"}, []string{"software engineer"}, nil)
	f := New(2, clock)

	ngo := scraper.Job{
		Title:       "Software Engineer",
		Company:     "Save the Children",
		Location:    "Remote",
		Description: "Charity seeks python docker sql skills.",
	}
	d := f.Evaluate(ngo, kw)
	require.True(t, d.Accepted)
	assert.True(t, d.NGO)
	assert.False(t, d.International)
	assert.Equal(t, 5, d.Score)

	intl := ngo
	intl.Company = "Contoso Corp."
	intl.Description = "python docker sql"
	d = f.Evaluate(intl, kw)
	require.True(t, d.Accepted)
	assert.False(t, d.NGO)
	assert.True(t, d.International)
	assert.Equal(t, 4, d.Score)
}

func TestEvaluate_Monotonicity(t *testing.T) {
	all := []string{"python", "django", "aws", "docker", "kubernetes"}
	job := acmeJob()
	job.Description = "python django aws docker kubernetes"
	f := New(2, clock)

	wasAccepted := false
	prevScore := 0
	for n := 1; n <= len(all); n++ {
		d := f.Evaluate(job, keywords.NewSet(all[:n], []string{"backend developer"}, nil))
		assert.Equal(t, n, d.SkillMatches)
		if wasAccepted {
			assert.True(t, d.Accepted, "accepted job rejected with %d skills", n)
			assert.Greater(t, d.Score, prevScore)
		}
		wasAccepted, prevScore = d.Accepted, d.Score
	}
	assert.True(t, wasAccepted)
}

func TestEvaluate_Signals(t *testing.T) {
	f := New(0, clock)
	kw := keywords.Set{}

	tests := []struct {
		name string
		job  scraper.Job
		want Decision
	}{
		{
			name: "work from home title",
			job:  scraper.Job{Title: "Engineer (Work From Home)", Location: "Berlin"},
			want: Decision{Remote: true, SufficientSkills: true},
		},
		{
			name: "home office location",
			job:  scraper.Job{Location: "Home Office", Company: "WFP"},
			want: Decision{Remote: true, NGO: true, SufficientSkills: true},
		},
		{
			name: "ngo not matched inside django",
			job:  scraper.Job{Description: "django"},
			want: Decision{SufficientSkills: true},
		},
		{
			name: "word prefixes count",
			job:  scraper.Job{Location: "Remotely, anywhere", Description: "python work supporting NGOs globally"},
			want: Decision{Remote: true, International: true, NGO: true, SufficientSkills: true},
		},
		{
			name: "internationally",
			job:  scraper.Job{Company: "Acme", Description: "a team spread internationally"},
			want: Decision{International: true, SufficientSkills: true},
		},
		{
			name: "international from description",
			job:  scraper.Job{Description: "a worldwide team", Company: "Acme"},
			want: Decision{International: true, SufficientSkills: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Evaluate(tt.job, kw))
		})
	}
}

func TestApply_DefaultsDatePosted(t *testing.T) {
	job := acmeJob()
	job.DatePosted = ""
	scored, ok := New(2, clock).Apply(job, acmeKeywords)
	require.True(t, ok)
	assert.Equal(t, "2024-04-01", scored.DatePosted)
}

func TestEvaluate_IgnoresAccents(t *testing.T) {
	job := acmeJob()
	job.Location = "Télétravail - Remote"
	job.Description = "Organisation internationale: Python, Django"
	kw := keywords.NewSet([]string{"python", "django"}, []string{"backend developer"}, nil)

	d := New(2, clock).Evaluate(job, kw)
	assert.True(t, d.Accepted)
	assert.True(t, d.International)
}

func TestApply_RemotelyNGOsGlobally(t *testing.T) {
	job := scraper.Job{
		Title:       "Backend Developer",
		Company:     "Helping Hands",
		Location:    "Remotely, anywhere",
		URL:         "https://hands.example/1",
		Description: "python and django work supporting NGOs globally",
	}
	kw := keywords.NewSet([]string{"python", "django"}, []string{"backend developer"}, nil)

	scored, ok := New(2, clock).Apply(job, kw)
	require.True(t, ok)
	assert.Equal(t, 5, scored.RelevanceScore)
}

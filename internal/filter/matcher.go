// Package filter decides which postings are relevant to the resume and scores them.
package filter

import (
	"regexp"
	"strings"
	"time"

	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/models"
	"go-jobsearch-automation/internal/scraper"
)

var (
	remoteLocation = terms("remote", "worldwide", "home office")
	remoteTitle    = terms("work from home")
	intlCompany    = terms("global", "international", "inc.", "corp.")
	intlText       = terms("global", "international", "worldwide")
	ngoText        = terms("ngo", "non-profit", "foundation", "charity", "united nations", "wfp")
)

// Score weights.
const (
	ngoWeight  = 2
	intlWeight = 1
)

// Decision carries every predicate evaluated for a job.
type Decision struct {
	Remote           bool
	International    bool
	NGO              bool
	RoleMatch        bool
	SkillMatches     int
	SufficientSkills bool
	Accepted         bool
	// Score is only set when Accepted.
	Score int
}

type Filter struct {
	minSkillMatches int
	now             func() time.Time
}

func New(minSkillMatches int, now func() time.Time) *Filter {
	if now == nil {
		now = time.Now
	}
	return &Filter{minSkillMatches: minSkillMatches, now: now}
}

// Evaluate runs each predicate against job. It holds no state between calls.
func (f *Filter) Evaluate(job scraper.Job, kw keywords.Set) Decision {
	fold := keywords.NewNormalizer()
	title := fold.String(job.Title)
	company := fold.String(job.Company)
	location := fold.String(job.Location)
	description := fold.String(job.Description)

	var d Decision
	d.Remote = remoteLocation.any(location) || remoteTitle.any(title)
	d.International = intlCompany.any(company) || intlText.any(description)
	d.NGO = ngoText.any(company) || ngoText.any(description)

	for _, role := range kw.Roles() {
		r := fold.String(role)
		if strings.Contains(title, r) || strings.Contains(description, r) {
			d.RoleMatch = true
			break
		}
	}
	for _, skill := range kw.Skills() {
		s := fold.String(skill)
		if strings.Contains(title, s) || strings.Contains(description, s) {
			d.SkillMatches++
		}
	}
	d.SufficientSkills = d.SkillMatches >= f.minSkillMatches

	d.Accepted = d.Remote && d.RoleMatch && d.SufficientSkills && (d.International || d.NGO)
	if d.Accepted {
		d.Score = d.SkillMatches
		if d.NGO {
			d.Score += ngoWeight
		}
		if d.International {
			d.Score += intlWeight
		}
	}
	return d
}

// Apply returns the scored job when it is accepted. The found date is stamped now.
func (f *Filter) Apply(job scraper.Job, kw keywords.Set) (models.ScoredJob, bool) {
	d := f.Evaluate(job, kw)
	if !d.Accepted {
		return models.ScoredJob{}, false
	}
	now := f.now()
	posted := job.DatePosted
	if posted == "" {
		posted = now.Format(scraper.DateLayout)
	}
	return models.ScoredJob{
		Title:          job.Title,
		Company:        job.Company,
		Location:       job.Location,
		URL:            job.URL,
		Description:    job.Description,
		DatePosted:     posted,
		DateFound:      models.FormatDateFound(now),
		RelevanceScore: d.Score,
		Source:         job.Source,
	}, true
}

// signal is a list of fixed terms that must start a word, so "ngo" does not
// fire inside "django" but "remotely" and "NGOs" still count.
type signal []*regexp.Regexp

func terms(words ...string) signal {
	s := make(signal, len(words))
	for i, w := range words {
		s[i] = regexp.MustCompile(`(^|[^\pL\pN])` + regexp.QuoteMeta(w))
	}
	return s
}

func (s signal) any(text string) bool {
	for _, re := range s {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

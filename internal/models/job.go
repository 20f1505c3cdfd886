package models

import "time"

// DateFoundLayout is how DateFound is written: ISO-8601, microseconds, UTC.
const DateFoundLayout = "2006-01-02T15:04:05.000000Z07:00"

// ScoredJob is a posting that passed the relevance filter.
type ScoredJob struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	URL            string `json:"url"`
	Description    string `json:"description"`
	DatePosted     string `json:"date_posted"`
	DateFound      string `json:"date_found"`
	RelevanceScore int    `json:"relevance_score"`
	Source         string `json:"source"`
}

// FormatDateFound renders t the way DateFound is stored.
func FormatDateFound(t time.Time) string {
	return t.UTC().Format(DateFoundLayout)
}

package reporter

import (
	"fmt"
	"strings"

	"go-jobsearch-automation/internal/models"
)

const separator = "------------------------------------------------------------"

// Digest renders jobs, in the order given, as a plain text message.
func Digest(jobs []models.ScoredJob) (subject, body string) {
	subject = fmt.Sprintf("New Job Listings Found! (%d jobs)", len(jobs))

	var b strings.Builder
	b.WriteString("Hello,\n\nHere are the new job listings that match your criteria, ordered by date posted:\n\n")
	for _, job := range jobs {
		fmt.Fprintf(&b, "Title: %s\n", job.Title)
		fmt.Fprintf(&b, "Company: %s\n", job.Company)
		fmt.Fprintf(&b, "Location: %s\n", job.Location)
		fmt.Fprintf(&b, "URL: %s\n", job.URL)
		fmt.Fprintf(&b, "Date Posted: %s (Found: %s)\n", job.DatePosted, job.DateFound)
		fmt.Fprintf(&b, "Relevance Score: %d\n", job.RelevanceScore)
		b.WriteString(separator + "\n\n")
	}
	b.WriteString("Happy job hunting!\nYour Automated Job Search Script")
	return subject, b.String()
}

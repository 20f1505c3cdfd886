package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO date used for Job.DatePosted.
const DateLayout = "2006-01-02"

var (
	daysAgoRegex    = regexp.MustCompile(`(?i)(\d+)\s+days?\s+ago`)
	rangeStartRegex = regexp.MustCompile(`^(\d{1,2}\s+\w+\s+\d{4})`)

	absoluteLayouts = []string{"January 2 2006", "2 January 2006"}
)

// NormalizeDate turns a board's posting date into an ISO date.
// Unrecognized input falls back to today; it never fails.
func NormalizeDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(DateLayout)
	}

	//case 1: "3 days ago"
	if m := daysAgoRegex.FindStringSubmatch(raw); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			return now.AddDate(0, 0, -days).Format(DateLayout)
		}
	}

	//case 2: "March 5, 2024" or "5 March 2024"
	cleaned := strings.Join(strings.Fields(strings.ReplaceAll(raw, ",", "")), " ")
	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format(DateLayout)
		}
	}

	//default
	return now.Format(DateLayout)
}

// RangeStart keeps only the start of a "24 July 2023 - 23 August 2023" period.
func RangeStart(raw string) string {
	raw = strings.TrimSpace(raw)
	if m := rangeStartRegex.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}

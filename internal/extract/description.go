// Package extract isolates job description text from fetched or rendered pages.
package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// MaxDescriptionLen bounds every description, in characters.
const MaxDescriptionLen = 5000

const (
	NoURL      = "No URL provided."
	NoRenderer = "N/A (Browser session not available)"
)

var ErrNoDescription = errors.New("no description text found")

// Unavailable is the sentinel carried when a backend could not produce a description.
func Unavailable(backend string) string {
	return fmt.Sprintf("N/A (Could not fetch full description via %s)", backend)
}

// IsUnavailable reports whether s is a fetch failure sentinel.
func IsUnavailable(s string) bool {
	return strings.HasPrefix(s, "N/A (Could not fetch") || s == NoRenderer
}

// Strategy pulls description text out of a document, "" when it finds nothing.
type Strategy func(doc *goquery.Document) string

var descriptionClassHints = []string{"description", "content", "job-details"}

// SiteSelectors targets a board's known description container. The first
// matching element wins and its text keeps line structure.
func SiteSelectors(selector string) Strategy {
	return func(doc *goquery.Document) string {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			return ""
		}
		return strings.Join(textLines(sel), "\n")
	}
}

// AllOf joins the text of every element matched by selector.
func AllOf(selector string) Strategy {
	return func(doc *goquery.Document) string {
		return joinTexts(doc.Find(selector))
	}
}

// ClassHeuristic matches elements whose class mentions description, content or job-details.
func ClassHeuristic() Strategy {
	return func(doc *goquery.Document) string {
		matched := doc.Find("div, p, li, span").FilterFunction(func(_ int, s *goquery.Selection) bool {
			class, ok := s.Attr("class")
			if !ok {
				return false
			}
			class = strings.ToLower(class)
			for _, hint := range descriptionClassHints {
				if strings.Contains(class, hint) {
					return true
				}
			}
			return false
		})
		return joinTexts(matched)
	}
}

// BroadSweep is the last resort: every div, p and li on the page.
func BroadSweep() Strategy {
	return AllOf("div, p, li")
}

// WholeBody returns the whole page text.
func WholeBody() Strategy {
	return func(doc *goquery.Document) string {
		return strings.Join(textLines(doc.Find("body")), " ")
	}
}

// GenericChain is used for pages fetched without knowing the board's layout.
func GenericChain(siteSelector string) []Strategy {
	var chain []Strategy
	if siteSelector != "" {
		chain = append(chain, SiteSelectors(siteSelector))
	}
	return append(chain, ClassHeuristic(), BroadSweep())
}

// DetailSelectors target description containers of rendered career sites.
const DetailSelectors = ".job-description-content, .job-details, [data-automation-id='jobDescription'], #job_description_body, .description__text, .richText"

// DetailChain is used for rendered job detail pages (Microsoft, Workday).
func DetailChain() []Strategy {
	return []Strategy{
		AllOf(DetailSelectors),
		AllOf(".wd-main-content, #main-content"),
		WholeBody(),
	}
}

// Extract applies strategies in order; the first non-empty text wins and is truncated.
func Extract(html string, strategies ...Strategy) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse description page: %w", err)
	}
	for _, strategy := range strategies {
		if text := strings.TrimSpace(strategy(doc)); text != "" {
			return Truncate(text, MaxDescriptionLen), nil
		}
	}
	return "", ErrNoDescription
}

// Description extracts with the generic chain, led by an optional site selector.
func Description(html, siteSelector string) (string, error) {
	return Extract(html, GenericChain(siteSelector)...)
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func joinTexts(sel *goquery.Selection) string {
	var parts []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if t := strings.Join(textLines(s), " "); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}

// textLines collects the non-empty text nodes under sel, skipping scripts and styles.
func textLines(sel *goquery.Selection) []string {
	var lines []string
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			if t := strings.Join(strings.Fields(c.Text()), " "); t != "" {
				lines = append(lines, t)
			}
		case "script", "style", "noscript", "#comment":
		default:
			lines = append(lines, textLines(c)...)
		}
	})
	return lines
}

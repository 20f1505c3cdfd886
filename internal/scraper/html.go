package scraper

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML parses a fetched or rendered page.
func ParseHTML(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// CardsFrom wraps every element matched by selector as a card, in document order.
func CardsFrom(sel *goquery.Selection) []Card {
	cards := make([]Card, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		cards = append(cards, Card{Index: i, Sel: s})
	})
	return cards
}

// FindCards tries each selector in order and returns the cards of the first one
// that matches anything.
func FindCards(doc *goquery.Document, selectors ...string) []Card {
	for _, selector := range selectors {
		if found := doc.Find(selector); found.Length() > 0 {
			return CardsFrom(found)
		}
	}
	return nil
}

// ClassMatching returns the tag elements whose class attribute matches re.
func ClassMatching(doc *goquery.Document, tag string, re *regexp.Regexp) *goquery.Selection {
	return doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && re.MatchString(class)
	})
}

// Text returns the cleaned text of the first element matched by selector.
func Text(sel *goquery.Selection, selector string) string {
	return CleanText(sel.Find(selector).First().Text())
}

// Attr returns an attribute of the first element matched by selector.
func Attr(sel *goquery.Selection, selector, name string) (string, bool) {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return "", false
	}
	val, ok := found.Attr(name)
	val = strings.TrimSpace(val)
	return val, ok && val != ""
}

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Resolve makes href absolute against base. Unparseable input is returned as is.
func Resolve(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}

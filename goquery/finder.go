package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/firstlink"
)

// candidate is a hyperlink seen while scanning one block element.
type candidate struct {
	Href     string
	HasTitle bool
}

// FindCandidate returns the raw href of the first qualifying link in the
// first element of the category that has one.
// The bool result is false if no element yields a qualifying link.
func FindCandidate(body *goquery.Selection, category firstlink.TagCategory) (string, bool) {
	var (
		href  string
		found bool
	)
	body.Find(category.Tag()).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		href, found = elementCandidate(el)
		return !found
	})
	return href, found
}

// Candidates is like FindCandidate but keeps scanning, returning one href
// per element that yields a qualifying link.
func Candidates(body *goquery.Selection, category firstlink.TagCategory) []string {
	var hrefs []string
	body.Find(category.Tag()).Each(func(_ int, el *goquery.Selection) {
		if href, ok := elementCandidate(el); ok {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs
}

// elementCandidate strips parentheticals from the element's markup, parses
// the result again and returns the href of its first titled link.
// Citation markers, anchor-only and red links carry no title.
func elementCandidate(el *goquery.Selection) (string, bool) {
	markup, err := goquery.OuterHtml(el)
	if err != nil {
		return "", false
	}

	fragment, err := goquery.NewDocumentFromReader(strings.NewReader(firstlink.StripParens(markup)))
	if err != nil {
		return "", false
	}

	for _, c := range scanLinks(fragment.Selection) {
		if c.HasTitle {
			return c.Href, true
		}
	}
	return "", false
}

// scanLinks collects the links of sel in document order.
// Links without an href have no target and are skipped.
func scanLinks(sel *goquery.Selection) []candidate {
	var links []candidate
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		_, hasTitle := a.Attr("title")
		links = append(links, candidate{Href: href, HasTitle: hasTitle})
	})
	return links
}

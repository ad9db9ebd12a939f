// Package goquery implements firstlink.ArticleParser and the candidate link
// finder on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/firstlink"
	"golang.org/x/net/html"
)

// Default selectors for encyclopedia article pages.
const (
	// DefaultContentSelector locates the main body content container.
	DefaultContentSelector = "div#mw-content-text"

	// DefaultNoiseSelector matches emphasis-only spans removed before scanning.
	DefaultNoiseSelector = "i"
)

// Ensure Parser implements firstlink.ArticleParser at compile time.
var _ firstlink.ArticleParser = (*Parser)(nil)

// Parser parses article markup and scopes it to the main content region.
type Parser struct {
	contentSelector string
	noiseSelector   string
}

// Option configures a Parser.
type Option func(*Parser)

// WithContentSelector sets the selector of the main content container.
// Defaults to DefaultContentSelector.
func WithContentSelector(selector string) Option {
	return func(p *Parser) {
		p.contentSelector = selector
	}
}

// WithNoiseSelector sets the selector of elements removed before scanning.
// Defaults to DefaultNoiseSelector.
func WithNoiseSelector(selector string) Option {
	return func(p *Parser) {
		p.noiseSelector = selector
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		contentSelector: DefaultContentSelector,
		noiseSelector:   DefaultNoiseSelector,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses html, locates the main content container and removes noise
// elements from it. Returns EMALFORMED if the markup cannot be parsed or has
// no content container.
func (p *Parser) Parse(markup string) (firstlink.Article, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, firstlink.Errorf(firstlink.EMALFORMED, "failed to parse HTML: %v", err)
	}

	body := goquery.NewDocumentFromNode(root).Find(p.contentSelector).First()
	if body.Length() == 0 {
		return nil, firstlink.Errorf(firstlink.EMALFORMED, "content container %q not found", p.contentSelector)
	}

	if p.noiseSelector != "" {
		body.Find(p.noiseSelector).Remove()
	}

	return &Article{body: body}, nil
}

// Ensure Article implements firstlink.Article at compile time.
var _ firstlink.Article = (*Article)(nil)

// Article is the parsed main content region of a page.
type Article struct {
	body *goquery.Selection
}

// Candidates returns the first qualifying link of every element of the
// category, in document order.
func (a *Article) Candidates(category firstlink.TagCategory) []string {
	return Candidates(a.body, category)
}

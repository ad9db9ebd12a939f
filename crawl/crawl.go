// Package crawl provides the first-link crawl controller. It fetches a page,
// selects the first valid in-body link and follows it until a stop page or a
// dead end is reached.
package crawl

import (
	"context"
	"fmt"
	"slices"

	"github.com/fwojciec/firstlink"
)

// Crawl defaults for the English encyclopedia.
const (
	DefaultPrefix   = "https://en.wikipedia.org/"
	DefaultStartURL = DefaultPrefix + "wiki/Special:Random"
	DefaultStopURL  = DefaultPrefix + "wiki/Philosophy"
)

// Config describes one crawl.
type Config struct {
	StartURL string
	StopURLs []string
	Prefix   string
}

// DefaultConfig returns a Config that starts at a random article and stops
// at Philosophy.
func DefaultConfig() Config {
	return Config{
		StartURL: DefaultStartURL,
		StopURLs: []string{DefaultStopURL},
		Prefix:   DefaultPrefix,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c Config) Validate() error {
	if c.StartURL == "" {
		return firstlink.Errorf(firstlink.EINVALID, "start URL required")
	}
	if len(c.StopURLs) == 0 {
		return firstlink.Errorf(firstlink.EINVALID, "at least one stop URL required")
	}
	return nil
}

// Status is the state of a crawl.
type Status int

const (
	StatusRunning Status = iota
	StatusAtTarget
	StatusDeadEnd
)

// String returns a human readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusAtTarget:
		return "at target"
	case StatusDeadEnd:
		return "dead end"
	default:
		return "unknown"
	}
}

// State is the mutable state of one run. It is owned by a single Run call.
type State struct {
	StartURL string
	StopURLs []string

	// Prefix is the namespace prefix of the most recently followed link.
	Prefix string

	// Visited holds every URL whose processing has started.
	Visited firstlink.VisitedSet

	// Path lists visited URLs in the order they were visited.
	Path []string
}

// NewState creates the state for a run of cfg.
func NewState(cfg Config, visited firstlink.VisitedSet) *State {
	return &State{
		StartURL: cfg.StartURL,
		StopURLs: slices.Clone(cfg.StopURLs),
		Prefix:   cfg.Prefix,
		Visited:  visited,
	}
}

func (s *State) visit(url string) {
	s.Visited.Add(url)
	s.Path = append(s.Path, url)
}

func (s *State) isStop(url string) bool {
	return slices.Contains(s.StopURLs, url)
}

// Result holds the outcome of a crawl.
type Result struct {
	Status  Status
	URL     string
	Prefix  string
	Visited []string
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type ProgressType
	URL  string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressVisiting ProgressType = iota
	ProgressAtTarget
	ProgressDeadEnd
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawler follows the first valid link of each page.
type Crawler struct {
	Fetcher firstlink.Fetcher
	Parser  firstlink.ArticleParser

	// NewVisitedSet creates the visited set of a run.
	// Defaults to an in-memory VisitedSet.
	NewVisitedSet func() firstlink.VisitedSet
}

// Run crawls from cfg.StartURL until a stop URL or a dead end is reached.
// Fetch and parse failures end the run and are returned unchanged in code.
// The progress callback, if provided, receives an event per visited page
// and one for the terminal state.
func (c *Crawler) Run(ctx context.Context, cfg Config, progress ProgressFunc) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st := NewState(cfg, c.newVisitedSet())
	notify := func(typ ProgressType, url string) {
		if progress != nil {
			progress(ProgressEvent{Type: typ, URL: url})
		}
	}

	url := st.StartURL
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		notify(ProgressVisiting, url)

		next, status, err := c.Step(ctx, st, url)
		if err != nil {
			return nil, err
		}

		switch status {
		case StatusAtTarget:
			notify(ProgressAtTarget, url)
			return st.result(status, url), nil
		case StatusDeadEnd:
			notify(ProgressDeadEnd, url)
			return st.result(status, url), nil
		}
		url = next
	}
}

// Step processes url: it marks it visited, stops if it is a stop URL, and
// otherwise fetches and parses the page and selects the link to follow.
// The returned status is StatusRunning when next should be visited.
func (c *Crawler) Step(ctx context.Context, st *State, url string) (next string, status Status, err error) {
	st.visit(url)

	if st.isStop(url) {
		return "", StatusAtTarget, nil
	}

	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", StatusRunning, fmt.Errorf("fetch %s: %w", url, err)
	}

	article, err := c.Parser.Parse(html)
	if err != nil {
		return "", StatusRunning, fmt.Errorf("parse %s: %w", url, err)
	}

	if link, ok := SelectNext(st, article); ok {
		return link, StatusRunning, nil
	}
	return "", StatusDeadEnd, nil
}

// SelectNext walks the article's candidates, paragraphs first, and returns
// the first one that resolves to a valid URL. The state's prefix only
// changes when a candidate is selected; a rejected candidate's namespace
// never persists.
func SelectNext(st *State, article firstlink.Article) (string, bool) {
	for _, category := range firstlink.TagCategories {
		for _, href := range article.Candidates(category) {
			abs, prefix, err := firstlink.Resolve(href, st.Prefix)
			if err != nil {
				continue
			}
			if firstlink.IsValid(abs, st.Visited) {
				st.Prefix = prefix
				return abs, true
			}
		}
	}
	return "", false
}

func (s *State) result(status Status, url string) *Result {
	return &Result{
		Status:  status,
		URL:     url,
		Prefix:  s.Prefix,
		Visited: slices.Clone(s.Path),
	}
}

func (c *Crawler) newVisitedSet() firstlink.VisitedSet {
	if c.NewVisitedSet != nil {
		return c.NewVisitedSet()
	}
	return NewVisitedSet()
}

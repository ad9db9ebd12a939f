package crawl

import "github.com/fwojciec/firstlink"

// Ensure VisitedSet implements firstlink.VisitedSet at compile time.
var _ firstlink.VisitedSet = (*VisitedSet)(nil)

// VisitedSet is an exact in-memory set of visited URLs.
//
// VisitedSet is not safe for concurrent use.
type VisitedSet struct {
	urls map[string]struct{}
}

// NewVisitedSet creates an empty set.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{urls: make(map[string]struct{})}
}

// Add marks url as visited.
func (s *VisitedSet) Add(url string) {
	s.urls[url] = struct{}{}
}

// Has returns true if url has been added.
func (s *VisitedSet) Has(url string) bool {
	_, ok := s.urls[url]
	return ok
}

// Len returns the number of distinct URLs added.
func (s *VisitedSet) Len() int {
	return len(s.urls)
}

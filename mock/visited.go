package mock

import "github.com/fwojciec/firstlink"

var _ firstlink.VisitedSet = (*VisitedSet)(nil)

// VisitedSet is a mock implementation of firstlink.VisitedSet.
type VisitedSet struct {
	AddFn func(url string)
	HasFn func(url string) bool
	LenFn func() int
}

func (s *VisitedSet) Add(url string) {
	s.AddFn(url)
}

func (s *VisitedSet) Has(url string) bool {
	return s.HasFn(url)
}

func (s *VisitedSet) Len() int {
	return s.LenFn()
}

package crawl_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/firstlink/crawl"
	"github.com/stretchr/testify/assert"
)

func TestVisitedSet_AddAndHas(t *testing.T) {
	t.Parallel()

	s := crawl.NewVisitedSet()

	// URL not yet added should return false
	assert.False(t, s.Has("https://en.wikipedia.org/wiki/A"))

	s.Add("https://en.wikipedia.org/wiki/A")

	assert.True(t, s.Has("https://en.wikipedia.org/wiki/A"))
	assert.False(t, s.Has("https://en.wikipedia.org/wiki/B"))
}

func TestVisitedSet_Len(t *testing.T) {
	t.Parallel()

	s := crawl.NewVisitedSet()

	assert.Equal(t, 0, s.Len())

	s.Add("https://en.wikipedia.org/wiki/A")
	s.Add("https://en.wikipedia.org/wiki/B")
	s.Add("https://en.wikipedia.org/wiki/A")

	assert.Equal(t, 2, s.Len())
}

func TestVisitedSet_NoFalsePositives(t *testing.T) {
	t.Parallel()

	const numItems = 2000

	s := crawl.NewVisitedSet()
	for i := 0; i < numItems; i++ {
		s.Add(fmt.Sprintf("https://en.wikipedia.org/wiki/Added_%d", i))
	}

	for i := 0; i < numItems; i++ {
		url := fmt.Sprintf("https://en.wikipedia.org/wiki/Missing_%d", i)
		assert.False(t, s.Has(url), "url %s reported as visited", url)
	}
	assert.Equal(t, numItems, s.Len())
}

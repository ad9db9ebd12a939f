package firstlink

import "regexp"

// VisitedSet records the URLs a crawl has started processing.
// A URL is never removed once added.
type VisitedSet interface {
	// Add marks url as visited.
	Add(url string)

	// Has returns true if url has been added.
	Has(url string) bool

	// Len returns the number of distinct URLs added.
	Len() int
}

// specialLinkRe matches links into non-article namespaces such as
// /wiki/File: or /wiki/Help:.
var specialLinkRe = regexp.MustCompile(`/wiki/.+?:`)

// IsSpecialLink returns true if url points into a non-article namespace.
// Article titles that contain a colon are matched too.
func IsSpecialLink(url string) bool {
	return specialLinkRe.MatchString(url)
}

// IsValid returns true if url may be followed: it has not been visited and
// it is not a special namespace link.
func IsValid(url string, visited VisitedSet) bool {
	if visited != nil && visited.Has(url) {
		return false
	}
	return !IsSpecialLink(url)
}

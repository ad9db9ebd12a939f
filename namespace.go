package firstlink

import (
	"net/url"
	"strings"
)

// wikiMarker separates a project root from an article path.
const wikiMarker = "/wiki/"

// Resolve turns a raw href into an absolute URL against the current
// namespace prefix and returns the prefix to use if the link is followed.
//
// An href that does not start with prefix is joined to it and the prefix is
// unchanged. An href that already starts with prefix is taken as a fully
// qualified link into a (possibly different) project: it is returned as is
// and the new prefix is everything before its last "/wiki/" segment. This
// also re-derives the prefix for absolute links into the current project.
func Resolve(rawHref, prefix string) (absURL, newPrefix string, err error) {
	if strings.HasPrefix(rawHref, prefix) {
		newPrefix = ""
		if i := strings.LastIndex(rawHref, wikiMarker); i != -1 {
			newPrefix = rawHref[:i]
		}
		return rawHref, newPrefix, nil
	}

	base, err := url.Parse(prefix)
	if err != nil {
		return "", prefix, Errorf(EINVALID, "invalid namespace prefix %q: %v", prefix, err)
	}
	ref, err := url.Parse(rawHref)
	if err != nil {
		return "", prefix, Errorf(EINVALID, "invalid href %q: %v", rawHref, err)
	}
	return base.ResolveReference(ref).String(), prefix, nil
}

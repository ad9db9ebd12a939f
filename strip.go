package firstlink

import "strings"

// StripParens removes parenthesized text from an HTML fragment. Markup tags
// and the contents of <a> elements are copied verbatim, so parentheses inside
// attribute values or link text never affect the nesting count. Tags that
// appear inside a parenthetical are dropped with it, which is what removes
// pronunciation and disambiguation links from the prose.
//
// Unbalanced input degrades to partial stripping; StripParens never fails.
func StripParens(fragment string) string {
	var b strings.Builder
	b.Grow(len(fragment))

	var (
		parens     int  // depth of ( ... ) outside markup
		tags       int  // depth of < ... >
		anchors    int  // number of open <a> elements
		closingTag bool // current tag is </a>
	)

	for i := 0; i < len(fragment); i++ {
		c := fragment[i]

		if parens == 0 {
			switch c {
			case '<':
				if tags == 0 {
					switch {
					case isAnchorTag(fragment[i+1:]):
						anchors++
					case strings.HasPrefix(fragment[i+1:], "/") && isAnchorTag(fragment[i+2:]):
						closingTag = true
					}
				}
				tags++
				b.WriteByte(c)
				continue
			case '>':
				if tags > 0 {
					tags--
					b.WriteByte(c)
					if tags == 0 && closingTag {
						closingTag = false
						if anchors > 0 {
							anchors--
						}
					}
					continue
				}
			}
		}

		if tags > 0 || anchors > 0 {
			b.WriteByte(c)
			continue
		}

		if c == '(' {
			parens++
		}
		if parens == 0 {
			b.WriteByte(c)
		}
		if c == ')' && parens > 0 {
			parens--
		}
	}

	return b.String()
}

// isAnchorTag reports whether s starts with an "a" tag name, i.e. "a"
// followed by whitespace or '>'.
func isAnchorTag(s string) bool {
	if len(s) < 2 || (s[0] != 'a' && s[0] != 'A') {
		return false
	}
	switch s[1] {
	case ' ', '\t', '\n', '\r', '\f', '>':
		return true
	}
	return false
}

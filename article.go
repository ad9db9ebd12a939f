package firstlink

// TagCategory identifies a class of block-level elements scanned for links.
type TagCategory int

// Tag categories in the order they are scanned.
const (
	Paragraph TagCategory = iota
	ListItem
)

// TagCategories is the scan order used when looking for the next link:
// prose first, list content only if prose yields nothing.
var TagCategories = []TagCategory{Paragraph, ListItem}

// Tag returns the HTML tag name for the category.
func (c TagCategory) Tag() string {
	switch c {
	case Paragraph:
		return "p"
	case ListItem:
		return "li"
	default:
		return ""
	}
}

// String returns a human readable name for the category.
func (c TagCategory) String() string {
	switch c {
	case Paragraph:
		return "paragraph"
	case ListItem:
		return "list item"
	default:
		return "unknown"
	}
}

// Article is the parsed body of a single fetched page.
type Article interface {
	// Candidates returns, in document order, the raw href of the first
	// qualifying link of every element of the given category that has one.
	// Parenthetical asides are ignored.
	Candidates(category TagCategory) []string
}

// ArticleParser turns fetched markup into an Article.
type ArticleParser interface {
	// Parse parses html and scopes the result to the main content region.
	// Returns EMALFORMED if the markup cannot be used.
	Parse(html string) (Article, error)
}

package mock

import "github.com/fwojciec/firstlink"

var _ firstlink.Article = (*Article)(nil)

// Article is a mock implementation of firstlink.Article.
type Article struct {
	CandidatesFn func(category firstlink.TagCategory) []string
}

func (a *Article) Candidates(category firstlink.TagCategory) []string {
	return a.CandidatesFn(category)
}

var _ firstlink.ArticleParser = (*ArticleParser)(nil)

// ArticleParser is a mock implementation of firstlink.ArticleParser.
type ArticleParser struct {
	ParseFn func(html string) (firstlink.Article, error)
}

func (p *ArticleParser) Parse(html string) (firstlink.Article, error) {
	return p.ParseFn(html)
}

package goquery_test

import (
	"testing"

	"github.com/fwojciec/firstlink"
	"github.com/fwojciec/firstlink/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("scopes candidates to the content container", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<div id="mw-navigation"><p><a href="/wiki/Main_Page" title="Main Page">Main</a></p></div>
<div id="mw-content-text"><p>Body <a href="/wiki/Body" title="Body">link</a>.</p></div>
</body>
</html>`

		article, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"/wiki/Body"}, article.Candidates(firstlink.Paragraph))
	})

	t.Run("removes italic spans before scanning", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div id="mw-content-text">
<p><i>For other uses, see <a href="/wiki/Foo_(disambiguation)" title="Foo (disambiguation)">Foo</a>.</i></p>
<p>Foo is a <a href="/wiki/Bar" title="Bar">bar</a>.</p>
</div></body></html>`

		article, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"/wiki/Bar"}, article.Candidates(firstlink.Paragraph))
	})

	t.Run("returns list item candidates separately", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div id="mw-content-text">
<ul><li><a href="/wiki/One" title="One">one</a></li><li><a href="/wiki/Two" title="Two">two</a></li></ul>
</div></body></html>`

		article, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Empty(t, article.Candidates(firstlink.Paragraph))
		assert.Equal(t, []string{"/wiki/One", "/wiki/Two"}, article.Candidates(firstlink.ListItem))
	})

	t.Run("returns malformed error when content container is missing", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().Parse(`<html><body><p>no content div</p></body></html>`)

		require.Error(t, err)
		assert.Equal(t, firstlink.EMALFORMED, firstlink.ErrorCode(err))
	})

	t.Run("honours custom selectors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p><em>skip <a href="/wiki/E" title="E">e</a></em> keep <a href="/wiki/K" title="K">k</a></p></main></body></html>`

		parser := goquery.NewParser(
			goquery.WithContentSelector("main"),
			goquery.WithNoiseSelector("em"),
		)
		article, err := parser.Parse(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"/wiki/K"}, article.Candidates(firstlink.Paragraph))
	})
}

package clippings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestMapDoc(t *testing.T) {

	s := `<p>Links:</p><ul><li><a href="foo">Foo</a><li><a href="/bar/baz">BarBaz</a></ul>`
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)

	got := mapDoc(doc)
	assert.NotNil(t, got)
	assert.Equal(t, documentNode, got.nodeType)

	html := got.childNodes[0]
	assert.NotNil(t, html)
	assert.Equal(t, "html", html.localName)

	head := html.childNodes[0]
	assert.NotNil(t, head)
	assert.Equal(t, "head", head.localName)

	body := html.childNodes[1]
	assert.NotNil(t, body)
	assert.Equal(t, "body", body.localName)

	p := body.childNodes[0]
	assert.NotNil(t, p)

	assert.Equal(t, "Links:", p.getTextContent())

	ul := body.childNodes[1]
	assert.NotNil(t, ul)

	firstLi := ul.childNodes[0]
	assert.NotNil(t, firstLi)

	firstA := firstLi.childNodes[0]
	assert.NotNil(t, firstA)
	assert.Equal(t, "foo", firstA.getAttribute("href"))
	assert.Equal(t, "Foo", firstA.getTextContent())

	secondLi := ul.childNodes[1]
	assert.NotNil(t, secondLi)

	secondA := secondLi.childNodes[0]
	assert.NotNil(t, secondA)
	assert.Equal(t, "/bar/baz", secondA.getAttribute("href"))
	assert.Equal(t, "BarBaz", secondA.getTextContent())
}

func TestMapDoc_Whitespace(t *testing.T) {

	t.Run("should drop comments and doctype", func(t *testing.T) {
		doc := parseDoc(t, `<!DOCTYPE html><html><body><!-- nav --><p>Text<!-- inline --></p></body></html>`)
		assert.Equal(t, 1, len(doc.childNodes))
		var body = doc.body()
		assert.Equal(t, 1, len(body.childNodes))
		assert.Equal(t, `<p>Text</p>`, body.getInnerHTML())
	})

	t.Run("should drop blank text between blocks", func(t *testing.T) {
		doc := parseDoc(t, "<div>\n  <p>One</p>\n  <p>Two</p>\n</div>")
		var div = doc.getElementsByTagName("div")[0]
		assert.Equal(t, 2, len(div.childNodes))
		assert.Equal(t, `<p>One</p><p>Two</p>`, div.getInnerHTML())
	})

	t.Run("should keep blank text between inline elements", func(t *testing.T) {
		doc := parseDoc(t, `<p><b>One</b> <i>Two</i></p>`)
		var p = doc.getElementsByTagName("p")[0]
		assert.Equal(t, 3, len(p.childNodes))
		assert.Equal(t, "One Two", p.getTextContent())
	})

	t.Run("should keep blank text in preformatted elements", func(t *testing.T) {
		doc := parseDoc(t, "<pre><code>a</code>\n\n<code>b</code></pre>")
		var pre = doc.getElementsByTagName("pre")[0]
		assert.Equal(t, "a\n\nb", pre.getTextContent())
	})

	t.Run("should keep non-blank text untouched", func(t *testing.T) {
		doc := parseDoc(t, "<div>  Padded text  <p>x</p></div>")
		var div = doc.getElementsByTagName("div")[0]
		assert.Equal(t, "  Padded text  ", div.directText())
	})
}

func TestCountElements(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<p>One <b>two</b></p><p>three</p>`))
	require.NoError(t, err)

	// html, head, body, p, b, p
	assert.Equal(t, 6, countElements(doc))
}

package clippings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yosssi/gohtml"
)

const testPagesDir = "testdata/pages"

type testPage struct {
	dir              string
	source           []byte
	expectedContent  []byte
	expectedMetadata *expectedMetadata
}

type expectedMetadata struct {
	Title         string `json:"title,omitempty"`
	Author        string `json:"author,omitempty"`
	Description   string `json:"description,omitempty"`
	FrontImage    string `json:"frontImage,omitempty"`
	CanonicalURL  string `json:"canonicalURL,omitempty"`
	PublishedTime string `json:"publishedTime,omitempty"`
	Style         string `json:"style,omitempty"`
	Readerable    bool   `json:"readerable,omitempty"`
}

func getTestPages(t *testing.T) []*testPage {
	t.Helper()

	entries, err := fs.ReadDir(os.DirFS(testPagesDir), ".")
	require.NoError(t, err)

	var testPages []*testPage
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		var dir = path.Join(testPagesDir, entry.Name())
		tp := &testPage{dir: dir}

		tp.source, err = os.ReadFile(path.Join(dir, "source.html"))
		require.NoError(t, err)

		tp.expectedContent, err = os.ReadFile(path.Join(dir, "expected.html"))
		require.NoError(t, err)

		expectedMetadataRaw, err := os.ReadFile(path.Join(dir, "expected-metadata.json"))
		require.NoError(t, err)
		tp.expectedMetadata = &expectedMetadata{}
		require.NoError(t, json.Unmarshal(expectedMetadataRaw, tp.expectedMetadata))

		testPages = append(testPages, tp)
	}
	return testPages
}

func prettyPrint(html string) string {
	return gohtml.Format(html)
}

func TestClip(t *testing.T) {

	for _, testPage := range getTestPages(t) {

		t.Run(testPage.dir, func(t *testing.T) {

			clipper, err := New(string(testPage.source))
			require.NoError(t, err)

			result, err := clipper.Clip()
			require.NoError(t, err)

			t.Run("should extract expected content", func(t *testing.T) {
				var expected = strings.TrimSpace(string(testPage.expectedContent))
				if diff := cmp.Diff(prettyPrint(expected), prettyPrint(result.Content)); diff != "" {
					t.Errorf("diff=%s\n", diff)
				}
				assert.NotContains(t, result.Content, "\n")
			})

			t.Run("should extract expected metadata", func(t *testing.T) {
				var got = expectedMetadata{
					Title:         result.Title,
					Author:        result.Author,
					Description:   result.Description,
					FrontImage:    result.FrontImage,
					CanonicalURL:  result.CanonicalURL,
					PublishedTime: result.PublishedTime,
					Style:         result.Style,
					Readerable:    testPage.expectedMetadata.Readerable,
				}
				if diff := cmp.Diff(*testPage.expectedMetadata, got); diff != "" {
					t.Errorf("diff=%s\n", diff)
				}
			})

			t.Run("should report the text length", func(t *testing.T) {
				assert.NotEmpty(t, result.TextContent)
				assert.Equal(t, len([]rune(result.TextContent)), result.Length)
			})

			t.Run("should infer if the article is readerable", func(t *testing.T) {
				readerable, err := IsProbablyReaderable(string(testPage.source))
				assert.NoError(t, err)
				assert.Equal(t, testPage.expectedMetadata.Readerable, readerable)
			})

			t.Run("should give the same result when clipped again", func(t *testing.T) {
				again, err := clipper.Clip()
				require.NoError(t, err)
				assert.Equal(t, result, again)
			})
		})
	}
}

func TestNew(t *testing.T) {

	t.Run("should reject an empty document", func(t *testing.T) {
		c, err := New("")
		assert.Nil(t, c)
		assert.True(t, errors.Is(err, ErrNoInput))
	})

	t.Run("should fall back to defaults for nil options", func(t *testing.T) {
		c, err := New("<p>text</p>", Logger(nil), UnlikelyPattern(nil))
		require.NoError(t, err)
		assert.NotNil(t, c.options.logger)
		assert.Equal(t, unlikelyCandidates, c.options.unlikelyPattern)
	})
}

func TestExtract(t *testing.T) {

	t.Run("should return nothing for an empty document", func(t *testing.T) {
		result, err := Extract("")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("should extract content without metadata", func(t *testing.T) {
		result, err := Extract(`<html><body><div>` +
			`<p>Some text goes here, and will be scored.</p>` +
			`<p>Another paragraph of text, with a comma or two, goes here.</p>` +
			`</div></body></html>`)
		require.NoError(t, err)

		assert.Equal(t, "", result.Title)
		assert.Equal(t, "", result.Author)
		assert.Equal(t, "", result.Description)
		assert.Equal(t, "", result.FrontImage)
		assert.Equal(t, "", result.CanonicalURL)
		assert.Equal(t, "", result.Style)
		assert.Equal(t, "", result.PublishedTime)
		assert.Equal(t,
			"Some text goes here, and will be scored.Another paragraph of text, with a comma or two, goes here.",
			result.TextContent)
		assert.Equal(t, 98, result.Length)
	})

	t.Run("should fall back to a synthetic container without candidates", func(t *testing.T) {
		result, err := Extract(`<html><head><title>Empty</title></head><body><p>Too short.</p></body></html>`)
		require.NoError(t, err)

		assert.Equal(t, "Empty", result.Title)
		assert.Equal(t, `<div class="clippings-content"><div></div></div>`, result.Content)
		assert.Equal(t, "", result.TextContent)
		assert.Equal(t, 0, result.Length)
	})

	t.Run("should refuse documents with too many elements", func(t *testing.T) {
		result, err := Extract(`<p>One</p><p>Two</p>`, MaxElemsToParse(3))
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, ErrTooManyElements))
	})

	t.Run("should use the html2text hook", func(t *testing.T) {
		var got string
		result, err := Extract(`<html><body><div><p>Some text goes here, and will be scored.</p></div></body></html>`,
			Html2Text(func(s string) string {
				got = s
				return "converted"
			}))
		require.NoError(t, err)

		assert.Equal(t, result.Content, got)
		assert.Equal(t, "converted", result.TextContent)
		assert.Equal(t, 9, result.Length)
	})
}

// commentsPage holds its whole article in a node the vocabulary rejects.
var commentsPage = `<html><head><title>Comments</title></head><body><div class="comments">` +
	`<p>` + strings.Repeat("A comment worth reading, with some words in it. ", 4) + `</p>` +
	`<p>` + strings.Repeat("Another comment worth reading, with more words. ", 4) + `</p>` +
	`</div></body></html>`

func TestRetry(t *testing.T) {

	t.Run("should not retry by default", func(t *testing.T) {
		result, err := Extract(commentsPage)
		require.NoError(t, err)
		assert.NotContains(t, result.TextContent, "A comment worth reading")
	})

	t.Run("should retry without the vocabulary when the text is too short", func(t *testing.T) {
		result, err := Extract(commentsPage, Retry(100))
		require.NoError(t, err)
		assert.Contains(t, result.TextContent, "A comment worth reading")
		assert.Contains(t, result.TextContent, "Another comment worth reading")
		assert.GreaterOrEqual(t, result.Length, 100)
	})

	t.Run("should give up once every heuristic is off", func(t *testing.T) {
		result, err := Extract(commentsPage, Retry(100000))
		require.NoError(t, err)
		assert.Equal(t, "Comments", result.Title)
		assert.Equal(t, "", result.Content)
		assert.Equal(t, "", result.TextContent)
		assert.Equal(t, 0, result.Length)
	})

	t.Run("should skip the vocabulary when asked to", func(t *testing.T) {
		result, err := Extract(commentsPage, StripUnlikelys(false))
		require.NoError(t, err)
		assert.Contains(t, result.TextContent, "A comment worth reading")
	})
}

func TestNextFlag(t *testing.T) {
	assert.Equal(t, flagStripUnlikelys, nextFlag(allFlags))
	assert.Equal(t, flagStripStructural, nextFlag(flagStripStructural|flagCleanJunk))
	assert.Equal(t, flagCleanJunk, nextFlag(flagCleanJunk))
	assert.Equal(t, 0, nextFlag(0))
}

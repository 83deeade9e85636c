package main

import (
	"encoding/json"
	"strings"
	"testing"

	clippings "github.com/giulianopz/go-clippings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testResult = &clippings.Result{
	Title:       "A title",
	Author:      "Someone",
	Content:     `<div class="clippings-content"><h1 onclick="track()">Heading</h1><p>Some text.</p></div>`,
	TextContent: "HeadingSome text.",
	Length:      17,
}

func TestRender(t *testing.T) {

	t.Run("should reject unknown formats", func(t *testing.T) {
		_, err := newRenderer("pdf", false, false)
		assert.Error(t, err)
	})

	t.Run("should print nothing without a result", func(t *testing.T) {
		r, err := newRenderer(formatHTML, false, false)
		require.NoError(t, err)

		out, err := r.render("page.html", nil)
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("should print the text content", func(t *testing.T) {
		r, err := newRenderer(formatText, false, false)
		require.NoError(t, err)

		out, err := r.render("page.html", testResult)
		require.NoError(t, err)
		assert.Equal(t, "HeadingSome text.", out)
	})

	t.Run("should print the html content as is", func(t *testing.T) {
		r, err := newRenderer(formatHTML, false, false)
		require.NoError(t, err)

		out, err := r.render("page.html", testResult)
		require.NoError(t, err)
		assert.Equal(t, testResult.Content, out)
	})

	t.Run("should sanitize the html content", func(t *testing.T) {
		r, err := newRenderer(formatHTML, false, true)
		require.NoError(t, err)

		out, err := r.render("page.html", testResult)
		require.NoError(t, err)
		assert.NotContains(t, out, "onclick")
		assert.Contains(t, out, "<p>Some text.</p>")
	})

	t.Run("should indent the html content", func(t *testing.T) {
		r, err := newRenderer(formatHTML, true, false)
		require.NoError(t, err)

		out, err := r.render("page.html", testResult)
		require.NoError(t, err)
		assert.Contains(t, out, "\n")
		assert.Contains(t, out, "Some text.")
		assert.Greater(t, strings.Count(out, "\n"), 2)
	})

	t.Run("should convert the content to markdown", func(t *testing.T) {
		r, err := newRenderer(formatMarkdown, false, false)
		require.NoError(t, err)

		out, err := r.render("page.html", testResult)
		require.NoError(t, err)
		assert.Contains(t, out, "# Heading")
		assert.Contains(t, out, "Some text.")
		assert.NotContains(t, out, "<p>")
	})

	t.Run("should encode the result as json", func(t *testing.T) {
		r, err := newRenderer(formatJSON, false, true)
		require.NoError(t, err)

		out, err := r.render("https://example.com/a", testResult)
		require.NoError(t, err)

		var got jsonResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "https://example.com/a", got.Source)
		assert.Equal(t, "A title", got.Title)
		assert.Equal(t, "Someone", got.Author)
		assert.Equal(t, 17, got.Length)
		assert.NotContains(t, got.Content, "onclick")
	})
}

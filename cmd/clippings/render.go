package main

import (
	"encoding/json"
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	clippings "github.com/giulianopz/go-clippings"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yosssi/gohtml"
)

const (
	formatHTML     = "html"
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

type renderer struct {
	format string
	pretty bool
	policy *bluemonday.Policy
	conv   *converter.Converter
}

func newRenderer(format string, pretty, sanitize bool) (*renderer, error) {
	r := &renderer{format: format, pretty: pretty}
	switch format {
	case formatHTML, formatText, formatJSON:
	case formatMarkdown:
		r.conv = converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		)
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
	if sanitize {
		r.policy = bluemonday.UGCPolicy()
	}
	return r, nil
}

type jsonResult struct {
	Source        string `json:"source"`
	Title         string `json:"title"`
	Author        string `json:"author,omitempty"`
	Description   string `json:"description,omitempty"`
	FrontImage    string `json:"frontImage,omitempty"`
	CanonicalURL  string `json:"canonicalURL,omitempty"`
	PublishedTime string `json:"publishedTime,omitempty"`
	Content       string `json:"content"`
	TextContent   string `json:"textContent"`
	Length        int    `json:"length"`
}

func (r *renderer) render(source string, res *clippings.Result) (string, error) {
	if res == nil {
		return "", nil
	}

	var content = res.Content
	if r.policy != nil {
		content = r.policy.Sanitize(content)
	}

	switch r.format {
	case formatText:
		return res.TextContent, nil
	case formatMarkdown:
		md, err := r.conv.ConvertString(content)
		if err != nil {
			return "", fmt.Errorf("cannot convert to markdown: %w", err)
		}
		return md, nil
	case formatJSON:
		out := jsonResult{
			Source:        source,
			Title:         res.Title,
			Author:        res.Author,
			Description:   res.Description,
			FrontImage:    res.FrontImage,
			CanonicalURL:  res.CanonicalURL,
			PublishedTime: res.PublishedTime,
			Content:       content,
			TextContent:   res.TextContent,
			Length:        res.Length,
		}
		var (
			bs  []byte
			err error
		)
		if r.pretty {
			bs, err = json.MarshalIndent(out, "", "  ")
		} else {
			bs, err = json.Marshal(out)
		}
		if err != nil {
			return "", err
		}
		return string(bs), nil
	default:
		if r.pretty {
			return gohtml.Format(content), nil
		}
		return content, nil
	}
}

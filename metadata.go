package clippings

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var (
	headSel          = cascadia.MustCompile("head")
	titleSel         = cascadia.MustCompile("title")
	metaTitleSel     = cascadia.MustCompile(`meta[name="title"]`)
	ogTitleSel       = cascadia.MustCompile(`meta[property="og:title"]`)
	metaAuthorSel    = cascadia.MustCompile(`meta[name="author"]`)
	ogAuthorSel      = cascadia.MustCompile(`meta[property="og:author"]`)
	metaDescSel      = cascadia.MustCompile(`meta[name="description"]`)
	ogDescSel        = cascadia.MustCompile(`meta[property="og:description"]`)
	ogImageSel       = cascadia.MustCompile(`meta[property="og:image"]`)
	publishedTimeSel = cascadia.MustCompile(`meta[property="article:published_time"]`)
	canonicalSel     = cascadia.MustCompile(`link[rel="canonical"]`)
)

const styleQuery = `link[type="text/css"], style`

type metadata struct {
	title         string
	author        string
	description   string
	frontImage    string
	canonicalURL  string
	publishedTime string
	style         string
}

// origin is the scheme and host host-relative URLs are resolved against.
type origin struct {
	scheme, host string
}

func originOf(canonicalURL string) origin {
	u, err := url.Parse(canonicalURL)
	if err != nil || u.Host == "" {
		return origin{}
	}
	return origin{scheme: u.Scheme, host: u.Host}
}

func (o origin) isZero() bool {
	return o.host == ""
}

func (o origin) String() string {
	if o.isZero() {
		return ""
	}
	return o.scheme + "://" + o.host
}

func findHead(doc *html.Node) *html.Node {
	return headSel.MatchFirst(doc)
}

// getArticleMetadata reads the document metadata from head. A missing head,
// element or attribute leaves the field empty.
func getArticleMetadata(head *html.Node) *metadata {
	var md = &metadata{}
	if head == nil {
		return md
	}

	if n := titleSel.MatchFirst(head); n != nil {
		md.title = strings.TrimSpace(textContent(n))
	}
	if md.title == "" {
		md.title = getMetadataContent(head, metaTitleSel, ogTitleSel)
	}
	md.author = getMetadataContent(head, metaAuthorSel, ogAuthorSel)
	md.description = getMetadataContent(head, metaDescSel, ogDescSel)
	md.frontImage = getMetadataContent(head, ogImageSel)
	md.publishedTime = getMetadataContent(head, publishedTimeSel)
	if n := canonicalSel.MatchFirst(head); n != nil {
		md.canonicalURL = attr(n, "href")
	}
	md.style = getStyle(head)

	return md
}

// getMetadataContent returns the first non-empty content attribute among
// the first matches of sels.
func getMetadataContent(head *html.Node, sels ...cascadia.Selector) string {
	var contents []string
	for _, sel := range sels {
		if n := sel.MatchFirst(head); n != nil {
			contents = append(contents, attr(n, "content"))
		}
	}
	return anyOf(contents...)
}

// getStyle concatenates the markup of every stylesheet link and style
// element in head.
func getStyle(head *html.Node) string {
	var buf bytes.Buffer
	for _, n := range querySelectorAll(head, styleQuery) {
		// writes to a bytes.Buffer do not fail
		_ = html.Render(&buf, n)
	}
	return buf.String()
}

package clippings

import (
	"regexp"
	"strings"
)

var (
	// Boilerplate vocabulary matched against the joined class, id and style
	// of a node. Each term must stand alone between the ends of the string,
	// whitespace, hyphens or underscores.
	unlikelyTerms = []string{
		"about", "ad", "ads", "adv", "advert", "adsense", "agregate",
		"aggregate", "annoy", "archive", "author", "banner", "bookmark",
		"breadcrumbs", "category", "clock", "combx", "comment", "comments",
		"community", "date", "disqus", "extra", "floor", "footer", "footnote",
		"function", "head", "header", "headnote", "hidde", "hidden", "hide",
		"ignore", "info", "infos", "innerad", "intro", "masthead", "menu",
		"meta", "nav", "navbar", "navigation", "pager", "pagination", "popup",
		"print", "published", "related", "remark", "robot", "rss", "search",
		"share", "sharing", "shoutbox", "sidebar", "social", "sponsor",
		"sponsored", "subscribe", "subscription", "tag-list", "tags", "time",
		"timestamp", "tool", "tweet", "twitter", "widget",
	}

	// All of the regular expressions in use within clippings.
	// Defined up here so we don't instantiate them repeatedly in loops.
	unlikelyCandidates  = regexp.MustCompile(`(?i)(^|[\s_-])(` + strings.Join(quoteAll(unlikelyTerms), "|") + `)($|[\s_-])|display\s*:\s*none`)
	potentialCandidates = regexp.MustCompile(`(?i)article\b|contain|\bcontent|column|general|detail|shadow|lightbox|blog|body|entry|main|page`)
	newlines            = regexp.MustCompile(`\r?\n`)
)

var (
	// Elements scored as they are.
	scoreableElems = []string{"p", "td", "pre"}

	// Containers promoted to paragraphs when they hold block content.
	promotableElems = []string{"div", "article", "section"}

	divToPElems = []string{
		"blockquote", "header", "section", "code", "div", "article", "footer",
		"aside", "img", "p", "pre", "dl", "ol", "ul",
	}

	// Structural junk removed anywhere in the tree before selection.
	structuralJunkElems = []string{"footer", "aside", "script", "form"}

	// Interactive junk removed from the extracted content.
	defaultJunkElems = []string{"input", "button", "nav", "object", "canvas"}

	// Elements whose surrounding whitespace is kept when mapping the tree.
	phrasingElems = []string{
		"a", "abbr", "audio", "b", "bdo", "br", "button", "cite", "code", "data",
		"datalist", "del", "dfn", "em", "embed", "i", "img", "input", "ins",
		"kbd", "label", "mark", "math", "meter", "noscript", "object", "output",
		"progress", "q", "ruby", "samp", "script", "select", "small", "span",
		"strong", "sub", "sup", "textarea", "time", "var", "wbr",
	}

	// Elements whose text is kept verbatim.
	preformattedElems = []string{"pre", "textarea"}
)

func quoteAll(terms []string) []string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return quoted
}

package clippings

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// mapDoc builds a fresh node tree from a parsed document. Comments,
// doctypes and blank text between block elements are dropped.
func mapDoc(doc *html.Node) *node {

	ret := newDocument()

	var f func(*html.Node, *node)
	f = func(from *html.Node, to *node) {

		for c := from.FirstChild; c != nil; c = c.NextSibling {

			mapped := mapNode(c)

			if mapped == nil {
				continue
			}

			to.appendChild(mapped)

			f(c, mapped)
		}
	}
	f(doc, ret)

	return ret
}

func mapNode(from *html.Node) *node {

	var to *node

	switch from.Type {

	case html.ElementNode:
		to = newElement(from.Data)
		for _, a := range from.Attr {
			if a.Namespace != "" {
				to.setAttribute(a.Namespace+":"+a.Key, a.Val)
				continue
			}
			to.setAttribute(a.Key, a.Val)
		}

	case html.TextNode:
		if isBlankText(from) {
			return nil
		}
		to = newText(from.Data)
	}

	return to
}

// isBlankText reports whether from is whitespace that only separates block
// elements. Whitespace inside preformatted elements or next to inline
// content is kept.
func isBlankText(from *html.Node) bool {
	if strings.TrimSpace(from.Data) != "" {
		return false
	}
	for p := from.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && slices.Contains(preformattedElems, p.Data) {
			return false
		}
	}
	return !isPhrasing(from.PrevSibling) || !isPhrasing(from.NextSibling)
}

func isPhrasing(n *html.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case html.TextNode:
		return strings.TrimSpace(n.Data) != ""
	case html.ElementNode:
		return slices.Contains(phrasingElems, n.Data)
	}
	return false
}

// countElements returns the number of elements below n.
func countElements(n *html.Node) int {
	var count int
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			count++
		}
		count += countElements(c)
	}
	return count
}

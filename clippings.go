/*
 * Copyright (c) 2010 Arc90 Inc
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
 * This code is heavily based on Arc90's readability.js (1.7.1) script
 * available at: http://code.google.com/p/arc90labs-readability
 */

// Package clippings extracts the main article of an HTML document along
// with its head metadata.
package clippings

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/html"
)

const (
	flagStripUnlikelys  = 0x1
	flagStripStructural = 0x2
	flagCleanJunk       = 0x4
)

// Heuristics given up, in order, when retrying.
var retryFlags = []int{flagStripUnlikelys, flagStripStructural, flagCleanJunk}

var (
	// ErrNoInput is returned by New and IsProbablyReaderable for an empty document.
	ErrNoInput = errors.New("clippings: no html input")
	// ErrTooManyElements is returned by Clip when the document exceeds MaxElemsToParse.
	ErrTooManyElements = errors.New("clippings: too many elements")
)

// Clipper extracts the article of a single document. It is not modified by
// Clip and can be shared between goroutines.
type Clipper struct {
	options    *Options
	htmlSource string
}

// New is the public constructor of Clipper and it supports the following options:
//   - MinParagraphLength, MinNodeLength, MaxLinkDensity
//   - StripUnlikelys, UnlikelyPattern, JunkTags
//   - MaxElemsToParse
//   - Retry
//   - Html2Text
//   - Logger
func New(htmlSource string, opts ...Option) (*Clipper, error) {

	if htmlSource == "" {
		return nil, ErrNoInput
	}

	c := &Clipper{
		options:    defaultOpts(),
		htmlSource: htmlSource,
	}

	// Configurable options
	for _, opt := range opts {
		opt(c.options)
	}

	if c.options.logger == nil {
		c.options.logger = slog.New(slog.DiscardHandler)
	}
	if c.options.unlikelyPattern == nil {
		c.options.unlikelyPattern = unlikelyCandidates
	}

	return c, nil
}

// Result holds the head metadata and the extracted article of a document.
// Metadata missing from the document is left empty.
type Result struct {
	// article title
	Title string
	// author metadata
	Author string
	// article description
	Description string
	// URL of the hero image
	FrontImage string
	// canonical URL of the page
	CanonicalURL string
	// published time
	PublishedTime string
	// stylesheet links and style elements of the head
	Style string
	// HTML string of the article container, without newlines
	Content string
	// text content of the article, with all the HTML tags removed
	TextContent string
	// length of an article, in characters (runes)
	Length int
}

// Extract is a shorthand for New followed by Clip. An empty document gives
// a nil result and no error.
func Extract(htmlSource string, opts ...Option) (*Result, error) {
	if htmlSource == "" {
		return nil, nil
	}
	c, err := New(htmlSource, opts...)
	if err != nil {
		return nil, err
	}
	return c.Clip()
}

// Clip runs the extraction.
// Workflow:
//  1. Parse the document and read the metadata in its head.
//  2. Build a fresh DOM tree and promote paragraph containers.
//  3. Score paragraphs and their grandparents.
//  4. Remove the unlikely candidates.
//  5. Pick the top candidate and gather its siblings.
//  6. Retry with fewer heuristics if asked to and the text is too short.
func (c *Clipper) Clip() (*Result, error) {
	doc, err := html.Parse(strings.NewReader(c.htmlSource))
	if err != nil {
		return nil, fmt.Errorf("cannot parse html: %w", err)
	}

	// Avoid parsing too large documents, as per configuration option
	if c.options.maxElemsToParse > 0 {
		var numTags = countElements(doc)
		if numTags > c.options.maxElemsToParse {
			return nil, fmt.Errorf("%w: elements_found=%d", ErrTooManyElements, numTags)
		}
	}

	var md = getArticleMetadata(findHead(doc))
	var o = originOf(md.canonicalURL)

	var result = &Result{
		Title:         md.title,
		Author:        md.author,
		Description:   md.description,
		FrontImage:    md.frontImage,
		CanonicalURL:  md.canonicalURL,
		PublishedTime: md.publishedTime,
		Style:         md.style,
	}

	var flags = c.initialFlags()
	var articleContent *node
	for {
		articleContent = c.grabArticle(mapDoc(doc), o, flags)

		if c.options.retryMinLength <= 0 {
			break
		}

		var textLength = runeCount(getInnerText(articleContent))
		if textLength >= c.options.retryMinLength {
			break
		}

		var next = nextFlag(flags)
		if next == 0 {
			c.options.logger.Debug("heuristics exhausted, giving up", "textLength", textLength)
			articleContent = nil
			break
		}

		c.options.logger.Debug("content too short, retrying", "textLength", textLength, "flag", next)
		flags &^= next
	}

	if articleContent == nil {
		return result, nil
	}

	result.Content = newlines.ReplaceAllString(articleContent.getOuterHTML(), "")

	c.options.logger.Debug("grabbed", "content", result.Content)

	if c.options.html2text != nil {
		result.TextContent = c.options.html2text(result.Content)
	} else {
		result.TextContent = articleContent.getTextContent()
	}
	result.Length = runeCount(result.TextContent)

	return result, nil
}

func (c *Clipper) initialFlags() int {
	// Start with all flags set
	var flags = flagStripUnlikelys | flagStripStructural | flagCleanJunk
	if !c.options.stripUnlikelys {
		flags &^= flagStripUnlikelys
	}
	return flags
}

// nextFlag returns the next heuristic to give up, or 0 when none is left.
func nextFlag(flags int) int {
	for _, flag := range retryFlags {
		if flags&flag != 0 {
			return flag
		}
	}
	return 0
}

func (c *Clipper) grabArticle(root *node, o origin, flags int) *node {
	var scoreable = c.findScoreableNodes(root)
	c.scoreNodes(scoreable)
	c.removeUnlikelyCandidates(root, flags)
	var topCandidate = c.findTopCandidate(root)
	return c.aggregateSiblings(topCandidate, o, flags)
}

// Iterates over a node list, calls `filterFn` for each node and removes node
// if function returned `true`.
// If function is not passed, removes all the nodes in node list.
func (c *Clipper) removeNodes(nodeList []*node, filterFn func(n *node) bool) {
	for i := len(nodeList) - 1; i >= 0; i-- {
		var n = nodeList[i]
		var parentNode = n.parentNode
		if parentNode != nil {
			if filterFn == nil || filterFn(n) {
				if _, err := parentNode.removeChild(n); err != nil {
					c.options.logger.Error("cannot remove child", slog.String("err", err.Error()))
				}
			}
		}
	}
}

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

package clippings

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

func isNodeVisible(n *html.Node) bool {
	var style = strings.ToLower(attr(n, "style"))
	return !styleHas(style, "display", "none") &&
		!styleHas(style, "visibility", "hidden") &&
		!slices.ContainsFunc(n.Attr, func(a html.Attribute) bool { return a.Key == "hidden" }) &&
		(attr(n, "aria-hidden") != "true" || strings.Contains(attr(n, "class"), "fallback-image"))
}

// styleHas reports whether the inline style declares property: value.
func styleHas(style, property, value string) bool {
	for _, decl := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(prop) == property && strings.TrimSpace(val) == value {
			return true
		}
	}
	return false
}

// Decides whether or not the document is reader-able without parsing the whole thing.
// Options:
//   - MinContentLength (default 140), the minimum node content length used to decide if the document is readerable
//   - MinScore (default 20), the minumum cumulated 'score' used to determine if the document is readerable
//   - VisibilityChecker (default isNodeVisible), the function used to determine if a node is visible
//   - UnlikelyPattern, the boilerplate vocabulary shared with the extraction
func IsProbablyReaderable(htmlSource string, opts ...Option) (bool, error) {
	if htmlSource == "" {
		return false, ErrNoInput
	}

	doc, err := html.Parse(strings.NewReader(htmlSource))
	if err != nil {
		return false, fmt.Errorf("cannot parse html: %w", err)
	}

	var options = defaultOpts()
	for _, opt := range opts {
		opt(options)
	}
	if options.visibilityChecker == nil {
		options.visibilityChecker = isNodeVisible
	}
	if options.unlikelyPattern == nil {
		options.unlikelyPattern = unlikelyCandidates
	}

	var nodes = querySelectorAll(doc, "p, pre, article")
	// Get <div> nodes which have <br> node(s) and append them into the `nodes` variable.
	// Some articles' DOM structures might look like
	// <div>
	//   Sentences<br>
	//   <br>
	//   Sentences<br>
	// </div>
	for _, br := range querySelectorAll(doc, "div > br") {
		if !slices.Contains(nodes, br.Parent) {
			nodes = append(nodes, br.Parent)
		}
	}

	var score = 0.0
	// This is a little cheeky, we use the accumulator 'score' to decide what to return from
	// this callback:
	return slices.ContainsFunc(nodes, func(n *html.Node) bool {
		if !options.visibilityChecker(n) {
			return false
		}

		var matchString = attr(n, "class") + " " + attr(n, "id")
		if options.unlikelyPattern.MatchString(matchString) &&
			!potentialCandidates.MatchString(matchString) {
			return false
		}

		if matches(n, "li p") {
			return false
		}

		var textContentLength = runeCount(strings.TrimSpace(textContent(n)))
		if textContentLength < options.minContentLength {
			return false
		}

		score += math.Sqrt(float64(textContentLength - options.minContentLength))

		return score > options.minScore
	}), nil
}

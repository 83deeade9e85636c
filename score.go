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

package clippings

import (
	"math"
	"strings"
)

const (
	scoreCharsInParagraph = 100
	scoreWordsInParagraph = 20
	maxScoreBonus         = 3.0
)

// scoreNodes gives every long enough node a content score and adds half of
// it to the node's grandparent. Both are marked as candidates.
func (c *Clipper) scoreNodes(nodes []*node) {
	for _, n := range nodes {
		parent := n.parentNode
		if parent == nil {
			continue
		}
		grandParent := parent.parentElement()

		var innerText = getInnerText(n)
		var textLength = runeCount(innerText)
		if textLength < c.options.minParagraphLength {
			continue
		}

		if n.score == nil {
			n.score = &contentScore{candidate: true}
		}
		if grandParent != nil && grandParent.score == nil {
			grandParent.score = &contentScore{candidate: true}
		}

		// Add a point for the paragraph itself as a base.
		var score = 1.0
		// Add points for any commas within this paragraph.
		score += float64(strings.Count(innerText, ","))
		// For every 100 characters in this paragraph, add another point. Up to 3 points.
		score += math.Min(float64(textLength)/scoreCharsInParagraph, maxScoreBonus)
		// For every 20 spaces, add another point. Up to 3 points.
		score += math.Min(float64(strings.Count(innerText, " "))/scoreWordsInParagraph, maxScoreBonus)

		n.score.value = score

		if grandParent != nil {
			grandParent.score.value += score / 2
		}

		c.options.logger.Debug("scored node", "tag", n.localName, "score", score)
	}
}

// Get the inner text of a node, trimmed of surrounding whitespace.
func getInnerText(n *node) string {
	return strings.TrimSpace(n.getTextContent())
}

// Get the density of links as a percentage of the content.
// This is the amount of text that is inside a link divided by the total text in the node.
func getLinkDensity(n *node) float64 {
	var textLength = runeCount(getInnerText(n))
	if textLength == 0 {
		return 0
	}

	var linkLength = 0
	for _, linkNode := range n.getElementsByTagName("a") {
		linkLength += runeCount(getInnerText(linkNode))
	}

	return math.Min(float64(linkLength)/float64(textLength), 1)
}

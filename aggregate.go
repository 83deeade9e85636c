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
)

const articleContentClass = "clippings-content"

// aggregateSiblings builds the article container around topCandidate.
// Now that we have the top candidate, look through its siblings for content
// that might also be related. Things like preambles, content split by ads
// that we removed, etc.
func (c *Clipper) aggregateSiblings(topCandidate *node, o origin, flags int) *node {
	var articleContent = newElement("div")
	articleContent.setAttribute("class", articleContentClass)

	var topScore float64
	if topCandidate.score != nil {
		topScore = topCandidate.score.value
	}
	var siblingScoreThreshold = math.Max(10, topScore*0.2)

	var siblings = []*node{topCandidate}
	if parent := topCandidate.parentNode; parent != nil {
		siblings = parent.children()
	}

	var topClassName = topCandidate.getClassName()

	for _, sibling := range siblings {
		var appendSibling = sibling == topCandidate

		// Give a bonus if sibling nodes and top candidates have the same classname
		if !appendSibling && topClassName != "" && sibling.getClassName() == topClassName &&
			sibling.score != nil && sibling.score.value+topScore*0.2 >= siblingScoreThreshold {
			appendSibling = true
		}

		if !appendSibling && sibling.localName == "p" {
			var linkDensity = getLinkDensity(sibling)
			var nodeLength = runeCount(getInnerText(sibling))

			if nodeLength > c.options.minNodeLength && linkDensity < c.options.maxLinkDensity {
				appendSibling = true
			} else if nodeLength < c.options.minNodeLength && linkDensity == 0 {
				appendSibling = true
			}
		}

		if !appendSibling {
			continue
		}

		c.options.logger.Debug("appending node", "tag", sibling.localName)

		if sibling.localName != "p" && sibling.localName != "div" {
			// Keep only the sibling's own leading text.
			var wrapper = newElement("div")
			wrapper.setTextContent(sibling.directText())
			articleContent.appendChild(wrapper)
		} else {
			articleContent.appendChild(sibling)
		}

		c.cleanArticleContent(articleContent, o, flags)
	}

	return articleContent
}

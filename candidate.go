package clippings

import (
	"math"
)

// getCandidates returns the nodes marked by scoreNodes, in document order.
func getCandidates(root *node) []*node {
	var candidates []*node
	for _, n := range root.getElementsByTagName("*") {
		if n.score != nil && n.score.candidate {
			candidates = append(candidates, n)
		}
	}
	return candidates
}

// findTopCandidate picks the candidate with the highest score once its
// links are discounted. Ties keep the earliest candidate.
func (c *Clipper) findTopCandidate(root *node) *node {
	var topCandidate *node
	var topScore float64

	for _, candidate := range getCandidates(root) {
		// Scale the final candidates score based on link density. Good content
		// should have a relatively small link density (5% or less) and be mostly
		// unaffected by this operation.
		var adjustedScore = math.RoundToEven(candidate.score.value * (1 - getLinkDensity(candidate)))
		if topCandidate == nil || adjustedScore > topScore {
			topCandidate = candidate
			topScore = adjustedScore
		}
	}

	// If we still have no top candidate, just use the text of the root element
	// as a last resort.
	if topCandidate == nil || topCandidate.localName == "body" {
		topCandidate = newElement("div")
		if docElem := root.documentElement(); docElem != nil {
			topCandidate.setTextContent(docElem.directText())
		}
		c.options.logger.Debug("no top candidate, falling back to the root text")
		return topCandidate
	}

	if topCandidate.localName == "tr" || topCandidate.localName == "td" {
		if parent := topCandidate.parentElement(); parent != nil {
			topCandidate = parent
		}
	}

	c.options.logger.Debug("found top candidate", "tag", topCandidate.localName, "score", topScore)

	return topCandidate
}

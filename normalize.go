package clippings

import (
	"slices"
)

// findScoreableNodes walks root in document order and returns the nodes
// worth scoring. Containers holding block content are renamed to p on the
// way; php fragments are dropped and xml islands are unwrapped into a p.
func (c *Clipper) findScoreableNodes(root *node) []*node {
	var scoreable []*node

	var walk func(*node)
	walk = func(n *node) {
		for _, child := range slices.Clone(n.childNodes) {
			if child.nodeType != elementNode || child.parentNode != n {
				continue
			}

			switch {
			case child.localName == "php":
				c.removeNodes([]*node{child}, nil)
				continue

			case child.localName == "xml":
				replacement := c.unwrapForeignMarkup(child)
				if replacement == nil {
					continue
				}
				child = replacement

			case slices.Contains(scoreableElems, child.localName):
				scoreable = append(scoreable, child)

			case slices.Contains(promotableElems, child.localName) && hasChildBlockElement(child):
				child.setNodeTag("p")
				scoreable = append(scoreable, child)
			}

			walk(child)
		}
	}
	walk(root)

	c.options.logger.Debug("found scoreable nodes", "count", len(scoreable))

	return scoreable
}

// hasChildBlockElement reports whether n directly holds an element that
// makes it a paragraph container.
func hasChildBlockElement(n *node) bool {
	return slices.ContainsFunc(n.children(), func(child *node) bool {
		return slices.Contains(divToPElems, child.localName)
	})
}

// unwrapForeignMarkup replaces n with a new p holding everything after the
// first element child of n.
func (c *Clipper) unwrapForeignMarkup(n *node) *node {
	var p = newElement("p")

	var moved []*node
	if first := n.firstElementChild(); first != nil {
		moved = n.childNodes[indexOf(first, n.childNodes)+1:]
	}
	for _, child := range slices.Clone(moved) {
		p.appendChild(child)
	}

	if _, err := n.parentNode.replaceChild(p, n); err != nil {
		c.options.logger.Error("cannot replace child", "err", err)
		return nil
	}
	return p
}

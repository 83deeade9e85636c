package clippings

import (
	"strings"
)

// removeUnlikelyCandidates drops structural junk from the whole tree, then
// every body descendant whose class, id or style reads like boilerplate.
func (c *Clipper) removeUnlikelyCandidates(root *node, flags int) {
	if flags&flagStripStructural != 0 {
		c.removeNodes(root.getElementsByTagName(structuralJunkElems...), nil)
	}

	if flags&flagStripUnlikelys == 0 {
		return
	}

	body := root.body()
	if body == nil {
		return
	}

	c.removeNodes(body.getElementsByTagName("*"), func(n *node) bool {
		if !n.hasAttribute("class") && !n.hasAttribute("id") && !n.hasAttribute("style") {
			return false
		}
		var matchString = strings.Join([]string{
			n.getClassName(),
			n.getId(),
			n.getAttribute("style"),
		}, " ")
		if runeCount(matchString) <= 3 || !c.options.unlikelyPattern.MatchString(matchString) {
			return false
		}
		c.options.logger.Debug("removing unlikely candidate", "tag", n.localName, "match", matchString)
		return true
	})
}

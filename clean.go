package clippings

import (
	"net/url"
	"strings"
)

// Inline attributes carrying scoring state in the input markup.
var scoringAttributes = []string{"score", "is-candidate"}

// cleanArticleContent strips scoring state, drops junk elements and makes
// host-relative links absolute. Running it twice changes nothing.
func (c *Clipper) cleanArticleContent(articleContent *node, o origin, flags int) {
	var all = append([]*node{articleContent}, articleContent.getElementsByTagName("*")...)
	for _, n := range all {
		n.score = nil
		for _, name := range scoringAttributes {
			n.removeAttribute(name)
		}
	}

	if flags&flagCleanJunk != 0 && len(c.options.junkTags) > 0 {
		c.removeNodes(articleContent.getElementsByTagName(c.options.junkTags...), nil)
	}

	fixRelativeUris(articleContent, o)
}

// fixRelativeUris rewrites every href and src lacking both host and scheme
// onto o. Nothing is rewritten when o is empty.
func fixRelativeUris(articleContent *node, o origin) {
	if o.isZero() {
		return
	}

	var all = append([]*node{articleContent}, articleContent.getElementsByTagName("*")...)
	for _, n := range all {
		for _, name := range []string{"href", "src"} {
			if n.hasAttribute(name) {
				n.setAttribute(name, toAbsoluteURI(n.getAttribute(name), o))
			}
		}
	}
}

// toAbsoluteURI resolves a uri with neither host nor scheme against o. The
// path, query and fragment are kept as they are, so "/page?x=1#frag" becomes
// "http://example.net/page?x=1#frag". Other URIs, including mailto: and
// data: ones, are returned unchanged.
func toAbsoluteURI(uri string, o origin) string {
	u, err := url.Parse(strings.TrimSpace(uri))
	if err != nil {
		// Something went wrong, just return the original:
		return uri
	}
	if u.Host != "" || u.Scheme != "" {
		return uri
	}
	u.Scheme = o.scheme
	u.Host = o.host
	return u.String()
}

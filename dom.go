/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this file,
 * You can obtain one at http://mozilla.org/MPL/2.0/. */

/**
 * A minimal mutable DOM for the extraction pipeline. Nodes are moved
 * between parents, renamed and removed in place; the parent link is only
 * used to walk upwards and never owns the node.
 *
 * Aside from not implementing the full DOM API, there are other quirks to be
 * aware of:
 *
 *   1) Only documents, elements and text nodes exist. Comments, doctypes and
 *      processing instructions are dropped when the tree is built.
 *
 *   2) Node lists are plain slices. Take a copy with slices.Clone before
 *      mutating a parent while ranging over its children.
 */

package clippings

import (
	"fmt"
	"slices"
	"strings"
)

var reverseEntitySubsetReplacer = strings.NewReplacer(
	`<`, "&lt;",
	`>`, "&gt;",
	`&`, "&amp;",
)

var reverseEntityReplacer = strings.NewReplacer(
	`<`, "&lt;",
	`>`, "&gt;",
	`&`, "&amp;",
	`"`, "&quot;",
	`'`, "&apos;",
)

func encodeTextContentHTML(text string) string {
	return reverseEntitySubsetReplacer.Replace(text)
}

func encodeHTML(text string) string {
	return reverseEntityReplacer.Replace(text)
}

// Elements that can be self-closing
var voidElems = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"wbr":     true,
}

// Elements whose text is written out unescaped.
var rawTextElems = map[string]bool{
	"script": true,
	"style":  true,
}

type nodeType uint

const (
	_ nodeType = iota
	elementNode
	textNode
	documentNode
)

type attribute struct {
	name, value string
}

func (a *attribute) getEncodedValue() string {
	return encodeHTML(a.value)
}

// contentScore is the transient scoring state of a node. It lives outside
// the attribute list so it is never serialized.
type contentScore struct {
	value     float64
	candidate bool
}

type node struct {
	nodeType   nodeType
	localName  string
	data       string
	attributes []*attribute
	// relations
	parentNode *node
	childNodes []*node
	// scoring
	score *contentScore
}

func newDocument() *node {
	return &node{nodeType: documentNode}
}

func newElement(tag string) *node {
	return &node{
		nodeType:  elementNode,
		localName: strings.ToLower(tag),
	}
}

func newText(data string) *node {
	return &node{
		nodeType: textNode,
		data:     data,
	}
}

// children returns the element children of n.
func (n *node) children() []*node {
	var elems []*node
	for _, child := range n.childNodes {
		if child.nodeType == elementNode {
			elems = append(elems, child)
		}
	}
	return elems
}

func (n *node) firstChild() *node {
	if len(n.childNodes) == 0 {
		return nil
	}
	return n.childNodes[0]
}

func (n *node) firstElementChild() *node {
	for _, child := range n.childNodes {
		if child.nodeType == elementNode {
			return child
		}
	}
	return nil
}

// parentElement is the element parent of n, or nil for the root element
// and detached nodes.
func (n *node) parentElement() *node {
	if n.parentNode == nil || n.parentNode.nodeType != elementNode {
		return nil
	}
	return n.parentNode
}

func (n *node) documentElement() *node {
	if n.nodeType != documentNode {
		return nil
	}
	return n.firstElementChild()
}

func (n *node) body() *node {
	bodies := n.getElementsByTagName("body")
	if len(bodies) == 0 {
		return nil
	}
	return bodies[0]
}

func (n *node) appendChild(child *node) {
	if child.parentNode != nil {
		child.parentNode.removeChild(child)
	}
	n.childNodes = append(n.childNodes, child)
	child.parentNode = n
}

func (n *node) removeChild(child *node) (*node, error) {
	childIndex := indexOf(child, n.childNodes)
	if childIndex == -1 {
		return nil, fmt.Errorf("removeChild: node not found")
	}
	child.parentNode = nil
	n.childNodes = delete(childIndex, n.childNodes)
	return child, nil
}

// replaceChild puts newNode where oldNode was and returns oldNode, now
// detached. newNode is first removed from its current parent.
func (n *node) replaceChild(newNode, oldNode *node) (*node, error) {
	if indexOf(oldNode, n.childNodes) == -1 {
		return nil, fmt.Errorf("replaceChild: node not found")
	}
	if newNode.parentNode != nil {
		newNode.parentNode.removeChild(newNode)
	}
	// newNode may have been a sibling of oldNode, so look the index up again.
	childIndex := indexOf(oldNode, n.childNodes)
	n.childNodes[childIndex] = newNode
	newNode.parentNode = n
	oldNode.parentNode = nil
	return oldNode, nil
}

func (n *node) getAttribute(name string) string {
	for i := len(n.attributes) - 1; i >= 0; i-- {
		if n.attributes[i].name == name {
			return n.attributes[i].value
		}
	}
	return ""
}

func (n *node) setAttribute(name, value string) {
	for _, attr := range n.attributes {
		if attr.name == name {
			attr.value = value
			return
		}
	}
	n.attributes = append(n.attributes, &attribute{name: name, value: value})
}

func (n *node) removeAttribute(name string) {
	n.attributes = slices.DeleteFunc(n.attributes, func(a *attribute) bool {
		return a.name == name
	})
}

func (n *node) hasAttribute(name string) bool {
	return slices.ContainsFunc(n.attributes, func(a *attribute) bool {
		return a.name == name
	})
}

func (n *node) getClassName() string {
	return n.getAttribute("class")
}

func (n *node) getId() string {
	return n.getAttribute("id")
}

func (n *node) setNodeTag(tag string) *node {
	n.localName = strings.ToLower(tag)
	return n
}

// getElementsByTagName returns, in document order, the descendants of n
// whose tag is one of tags. "*" matches every element.
func (n *node) getElementsByTagName(tags ...string) []*node {
	var allTags = slices.Contains(tags, "*")
	var elems []*node

	var getElems func(from *node)
	getElems = func(from *node) {
		for _, child := range from.childNodes {
			if child.nodeType != elementNode {
				continue
			}
			if allTags || slices.Contains(tags, child.localName) {
				elems = append(elems, child)
			}
			getElems(child)
		}
	}
	getElems(n)

	return elems
}

// getTextContent concatenates the text of n and all its descendants.
func (n *node) getTextContent() string {
	if n.nodeType == textNode {
		return n.data
	}
	var b strings.Builder
	var getText func(*node)
	getText = func(from *node) {
		for _, child := range from.childNodes {
			if child.nodeType == textNode {
				b.WriteString(child.data)
			} else {
				getText(child)
			}
		}
	}
	getText(n)
	return b.String()
}

// setTextContent drops every child of n and leaves a single text node.
func (n *node) setTextContent(text string) {
	if n.nodeType == textNode {
		n.data = text
		return
	}
	for _, child := range n.childNodes {
		child.parentNode = nil
	}
	n.childNodes = nil
	if text != "" {
		n.appendChild(newText(text))
	}
}

// directText is the text that precedes the first element child of n.
func (n *node) directText() string {
	var b strings.Builder
	for _, child := range n.childNodes {
		if child.nodeType != textNode {
			break
		}
		b.WriteString(child.data)
	}
	return b.String()
}

func (n *node) getInnerHTML() string {
	var b strings.Builder
	for _, child := range n.childNodes {
		child.writeHTML(&b)
	}
	return b.String()
}

func (n *node) getOuterHTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *node) writeHTML(b *strings.Builder) {
	switch n.nodeType {
	case textNode:
		if n.parentNode != nil && rawTextElems[n.parentNode.localName] {
			b.WriteString(n.data)
		} else {
			b.WriteString(encodeTextContentHTML(n.data))
		}
	case documentNode:
		for _, child := range n.childNodes {
			child.writeHTML(b)
		}
	case elementNode:
		b.WriteString("<" + n.localName)
		// serialize attribute list
		for _, attr := range n.attributes {
			b.WriteString(" " + attr.name + `="` + attr.getEncodedValue() + `"`)
		}
		if voidElems[n.localName] && len(n.childNodes) == 0 {
			// if this is a self-closing element, end it here
			b.WriteString("/>")
			return
		}
		b.WriteString(">")
		for _, child := range n.childNodes {
			child.writeHTML(b)
		}
		b.WriteString("</" + n.localName + ">")
	}
}

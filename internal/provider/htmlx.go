// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"strings"

	"golang.org/x/net/html"
)

// nodePred selects HTML nodes during a tree walk.
type nodePred func(*html.Node) bool

// findAll walks the tree depth-first and returns every node matching pred.
func findAll(n *html.Node, pred nodePred) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && pred(node) {
			out = append(out, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// findFirst returns the first node matching pred, or nil.
func findFirst(n *html.Node, pred nodePred) *html.Node {
	matches := findAll(n, pred)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// elem matches nodes by tag name.
func elem(tag string) nodePred {
	return func(n *html.Node) bool { return n.Data == tag }
}

// elemClass matches nodes by tag name and CSS class.
func elemClass(tag, class string) nodePred {
	return func(n *html.Node) bool { return n.Data == tag && hasClass(n, class) }
}

// elemAttr matches nodes by tag name and an exact attribute value.
func elemAttr(tag, key, value string) nodePred {
	return func(n *html.Node) bool { return n.Data == tag && attrVal(n, key) == value }
}

// attrVal returns the value of an attribute, or "".
func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether the node's class attribute contains class as a
// whole token.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrVal(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// textContent concatenates the text nodes beneath n, skipping script and
// style subtrees, with whitespace collapsed.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
			return
		}
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteString(" ")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Package svg parses icon markup into a small element tree.
package svg

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Namespace is the SVG namespace URI.
const Namespace = "http://www.w3.org/2000/svg"

// rootExpr selects the outermost svg element regardless of namespace.
var rootExpr = xpath.MustCompile("/*[local-name()='svg']")

// Attr is a single attribute in source order.
type Attr struct {
	// Name is the qualified attribute name as written, e.g. "xlink:href".
	Name  string
	Value string
}

// Element is an SVG element with its attributes and children.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

// Node is either an *Element or a Text.
type Node interface {
	node()
}

// Text is character data between elements.
type Text string

func (*Element) node() {}
func (Text) node()     {}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Elements returns only the element children.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Parse parses markup and returns its root svg element.
// Comments, processing instructions, and whitespace-only text are dropped.
// Element and attribute prefixes bound to the SVG namespace are removed.
func Parse(markup string) (*Element, error) {
	doc, err := xmlquery.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}

	root := xmlquery.QuerySelector(doc, rootExpr)
	if root == nil {
		return nil, fmt.Errorf("parsing svg: no <svg> root element")
	}

	return convert(root), nil
}

func convert(n *xmlquery.Node) *Element {
	el := &Element{Name: qualified(n.Prefix, n.Data)}
	if n.NamespaceURI == Namespace {
		el.Name = n.Data
	}

	hasDefault := false
	for _, a := range n.Attr {
		if a.Name.Space == "" && a.Name.Local == "xmlns" {
			hasDefault = true
		}
	}

	for _, a := range n.Attr {
		name := qualified(a.Name.Space, a.Name.Local)
		switch {
		case a.NamespaceURI == Namespace:
			name = a.Name.Local
		case a.Name.Space == "xmlns" && a.Value == Namespace:
			// Prefixes bound to the SVG namespace are dropped from element
			// names, so their declaration becomes the default namespace.
			if hasDefault {
				continue
			}
			name, hasDefault = "xmlns", true
		}
		el.Attrs = append(el.Attrs, Attr{Name: name, Value: a.Value})
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			el.Children = append(el.Children, convert(c))
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if text := condense(c.Data); text != "" {
				el.Children = append(el.Children, Text(text))
			}
		}
	}

	return el
}

// xmlURL is the namespace encoding/xml substitutes for the reserved xml prefix.
const xmlURL = "http://www.w3.org/XML/1998/namespace"

func qualified(prefix, local string) string {
	if prefix == xmlURL {
		prefix = "xml"
	}
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}

// condense collapses whitespace runs to a single space and drops
// whitespace-only text.
func condense(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return strings.Join(strings.Fields(s), " ")
}

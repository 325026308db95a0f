package storage

import (
	"slices"

	"github.com/beevik/etree"
)

type Attr struct {
	Key   string
	Value string
}

// Node is a namespace-free, detached copy of an element. Repositories build nodes to
// write and receive nodes when reading; they never touch the live tree.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []Node
}

func NewNode(tag string) Node {
	return Node{Tag: tag}
}

func (n Node) WithAttr(key, value string) Node {
	n.Attrs = append(slices.Clip(n.Attrs), Attr{Key: key, Value: value})
	return n
}

func (n Node) WithText(text string) Node {
	n.Text = text
	return n
}

func (n Node) WithChild(child Node) Node {
	n.Children = append(slices.Clip(n.Children), child)
	return n
}

// WithField appends a leaf element holding text.
func (n Node) WithField(tag, text string) Node {
	return n.WithChild(NewNode(tag).WithText(text))
}

// WithOptionalField appends a leaf element only when text is not empty.
func (n Node) WithOptionalField(tag, text string) Node {
	if text == "" {
		return n
	}
	return n.WithField(tag, text)
}

// WithContainer appends a container element holding children. An optional container
// without children is left out entirely: the schema rejects empty ones.
func (n Node) WithContainer(tag string, children ...Node) Node {
	if len(children) == 0 {
		return n
	}
	return n.WithChild(Node{Tag: tag, Children: slices.Clone(children)})
}

func (n Node) Attr(key string) string {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

func (n Node) ID() string {
	return n.Attr(idAttr)
}

// Child returns the first child element named tag.
func (n Node) Child(tag string) (Node, bool) {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c, true
		}
	}
	return Node{}, false
}

// Field returns the text of the first child element named tag, or "".
func (n Node) Field(tag string) string {
	c, _ := n.Child(tag)
	return c.Text
}

// ChildrenNamed returns every child element named tag, in document order.
func (n Node) ChildrenNamed(tag string) []Node {
	var out []Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// element builds a detached element carrying the namespace prefix space, so it
// resolves to the same namespace as the parent it is attached to.
func (n Node) element(space string) *etree.Element {
	el := etree.NewElement(n.Tag)
	el.Space = space
	for _, a := range n.Attrs {
		el.CreateAttr(a.Key, a.Value)
	}
	if n.Text != "" {
		el.SetText(n.Text)
	}
	for _, c := range n.Children {
		el.AddChild(c.element(space))
	}
	return el
}

func nodeFrom(el *etree.Element) Node {
	n := Node{Tag: el.Tag}
	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		n.Attrs = append(n.Attrs, Attr{Key: a.Key, Value: a.Value})
	}
	kids := el.ChildElements()
	if len(kids) == 0 {
		n.Text = el.Text()
	}
	for _, c := range kids {
		n.Children = append(n.Children, nodeFrom(c))
	}
	return n
}

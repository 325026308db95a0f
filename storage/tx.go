package storage

import (
	"chat-xml/errors"
	"chat-xml/schema"

	"github.com/beevik/etree"
)

const idAttr = schema.IDAttr

// Kind locates one entity kind in the document: its container and element tag.
type Kind = schema.Section

var (
	Users    = Kind{Container: schema.UsersTag, Element: schema.UserTag}
	Contacts = Kind{Container: schema.ContactsTag, Element: schema.ContactTag}
	Groups   = Kind{Container: schema.GroupsTag, Element: schema.GroupTag}
	Messages = Kind{Container: schema.MessagesTag, Element: schema.MessageTag}
)

// index maps container tag -> id -> live element.
type index map[string]map[string]*etree.Element

func buildIndex(root *etree.Element) index {
	idx := make(index, len(schema.Sections))
	for _, kind := range schema.Sections {
		byID := make(map[string]*etree.Element)
		if container := section(root, kind); container != nil {
			for _, el := range entities(container, kind) {
				byID[el.SelectAttrValue(idAttr, "")] = el
			}
		}
		idx[kind.Container] = byID
	}
	return idx
}

func section(root *etree.Element, kind Kind) *etree.Element {
	if root == nil {
		return nil
	}
	for _, c := range root.ChildElements() {
		if c.Tag == kind.Container && c.NamespaceURI() == schema.Namespace {
			return c
		}
	}
	return nil
}

func entities(container *etree.Element, kind Kind) []*etree.Element {
	var out []*etree.Element
	for _, el := range container.ChildElements() {
		if el.Tag == kind.Element && el.NamespaceURI() == schema.Namespace {
			out = append(out, el)
		}
	}
	return out
}

// reader is the read side shared by View and Tx.
type reader struct {
	doc   *etree.Document
	index index
}

// Find looks an element up by id, O(1) through the index.
func (r reader) Find(kind Kind, id string) (Node, bool) {
	el, ok := r.index[kind.Container][id]
	if !ok {
		return Node{}, false
	}
	return nodeFrom(el), true
}

func (r reader) Exists(kind Kind, id string) bool {
	_, ok := r.index[kind.Container][id]
	return ok
}

// All returns every element of kind in document order.
func (r reader) All(kind Kind) []Node {
	container := section(r.doc.Root(), kind)
	if container == nil {
		return nil
	}
	els := entities(container, kind)
	out := make([]Node, 0, len(els))
	for _, el := range els {
		out = append(out, nodeFrom(el))
	}
	return out
}

func (r reader) Count(kind Kind) int {
	return len(r.index[kind.Container])
}

// View is a read-only access to the committed document.
type View struct {
	reader
}

// Tx mutates a private copy of the document. Nothing is visible to readers or
// written to disk until the enclosing Store.Update returns without error.
type Tx struct {
	reader
	ops int
}

func newTx(doc *etree.Document) *Tx {
	return &Tx{reader: reader{doc: doc, index: buildIndex(doc.Root())}}
}

func (tx *Tx) container(kind Kind) (*etree.Element, error) {
	if _, known := tx.index[kind.Container]; !known {
		return nil, errors.ErrUnknownKind
	}
	c := section(tx.doc.Root(), kind)
	if c == nil {
		return nil, errors.ErrUnknownKind
	}
	return c, nil
}

// Add appends n under the container of kind.
func (tx *Tx) Add(kind Kind, n Node) error {
	container, err := tx.container(kind)
	if err != nil {
		return err
	}
	if n.Tag != kind.Element {
		return errors.ErrUnknownKind
	}
	id := n.ID()
	if id == "" {
		return errors.ErrMissingID
	}
	if tx.Exists(kind, id) {
		return errors.ErrAlreadyExists
	}
	el := n.element(container.Space)
	container.AddChild(el)
	tx.index[kind.Container][id] = el
	tx.ops++
	return nil
}

// Replace swaps the element with n's id for n, keeping its position.
func (tx *Tx) Replace(kind Kind, n Node) error {
	container, err := tx.container(kind)
	if err != nil {
		return err
	}
	if n.Tag != kind.Element {
		return errors.ErrUnknownKind
	}
	old, ok := tx.index[kind.Container][n.ID()]
	if !ok {
		return errors.ErrElementNotFound
	}
	el := n.element(container.Space)
	container.InsertChildAt(old.Index(), el)
	container.RemoveChild(old)
	tx.index[kind.Container][n.ID()] = el
	tx.ops++
	return nil
}

func (tx *Tx) Delete(kind Kind, id string) error {
	container, err := tx.container(kind)
	if err != nil {
		return err
	}
	el, ok := tx.index[kind.Container][id]
	if !ok {
		return errors.ErrElementNotFound
	}
	container.RemoveChild(el)
	delete(tx.index[kind.Container], id)
	tx.ops++
	return nil
}

// DeleteWhere removes every element of kind accepted by match and returns how many
// were removed.
func (tx *Tx) DeleteWhere(kind Kind, match func(Node) bool) (int, error) {
	container, err := tx.container(kind)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, el := range entities(container, kind) {
		if !match(nodeFrom(el)) {
			continue
		}
		container.RemoveChild(el)
		delete(tx.index[kind.Container], el.SelectAttrValue(idAttr, ""))
		removed++
	}
	tx.ops += removed
	return removed, nil
}

func (tx *Tx) dirty() bool {
	return tx.ops > 0
}

// Reader is satisfied by both *View and *Tx so lookups can run inside or outside
// a transaction.
type Reader interface {
	Find(kind Kind, id string) (Node, bool)
	Exists(kind Kind, id string) bool
	All(kind Kind) []Node
	Count(kind Kind) int
}

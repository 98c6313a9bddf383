// Package ui describes the live UI tree the overlay reads from. The tree itself belongs to
// the host; this package only defines the contract, a plain implementation, and helpers
// that walk it safely.
package ui

import "templewatch/pkg/engine/geom"

// ID is a stable surrogate identity for one UI element instance. The host assigns it the
// first time it observes the element and keeps it for the element's lifetime.
type ID uint64

// Element is one node of the host UI tree.
type Element interface {
	ID() ID
	IsVisible() bool
	Text() string
	Children() []Element
	Rect() geom.Rect
	// Tooltip returns the element's tooltip subtree, or nil.
	Tooltip() Element
	// Hovered reports whether the element currently shows its hover highlight.
	Hovered() bool
}

// Node is a plain in-memory Element. Hosts that already have their own tree implement
// Element directly; Node serves fixtures, scenes and tests.
type Node struct {
	NodeID ID        `yaml:"id"`
	Hidden bool      `yaml:"hidden"`
	Label  string    `yaml:"text"`
	Kids   []*Node   `yaml:"children"`
	Bounds geom.Rect `yaml:"rect"`
	Tip    *Node     `yaml:"tooltip"`
	Shiny  bool      `yaml:"hovered"`
}

// ID implements Element.
func (n *Node) ID() ID {
	if n == nil {
		return 0
	}
	return n.NodeID
}

// IsVisible implements Element.
func (n *Node) IsVisible() bool { return n != nil && !n.Hidden }

// Text implements Element.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.Label
}

// Rect implements Element.
func (n *Node) Rect() geom.Rect {
	if n == nil {
		return geom.Rect{}
	}
	return n.Bounds
}

// Hovered implements Element.
func (n *Node) Hovered() bool { return n != nil && n.Shiny }

// Children implements Element.
func (n *Node) Children() []Element {
	if n == nil || len(n.Kids) == 0 {
		return nil
	}
	out := make([]Element, len(n.Kids))
	for i, k := range n.Kids {
		out[i] = k
	}
	return out
}

// Tooltip implements Element. A nil tooltip comes back as an untyped nil.
func (n *Node) Tooltip() Element {
	if n == nil || n.Tip == nil {
		return nil
	}
	return n.Tip
}

// AssignIDs gives every node in the tree (tooltips included) that has no ID a fresh one,
// counting up from next. It returns the next unused ID.
func (n *Node) AssignIDs(next ID) ID {
	if n == nil {
		return next
	}
	if n.NodeID == 0 {
		n.NodeID = next
		next++
	}
	next = n.Tip.AssignIDs(next)
	for _, k := range n.Kids {
		next = k.AssignIDs(next)
	}
	return next
}

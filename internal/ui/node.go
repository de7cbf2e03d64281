package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, etc. It has optional class and id for CSS matching,
// bounds (position and size, filled in by Draw), and optional text. Text may span lines.
type Node struct {
	Type   string // "panel", "label", etc.
	Class  string // e.g. "tooltip" for .tooltip
	ID     string // e.g. "info" for #info
	Bounds rl.Rectangle
	Text   string
	// Anchor, when set, overrides the stylesheet position (a tooltip following the pointer, a
	// sliding panel). With KeepOnScreen the node is pushed back inside the screen.
	Anchor       *rl.Vector2
	KeepOnScreen bool
	// Size, when non-zero, overrides the stylesheet and text measured width or height.
	Size   rl.Vector2
	Hidden bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
	}
}

// MoveTo anchors the node's top-left corner at (x, y).
func (n *Node) MoveTo(x, y float32) {
	if n.Anchor == nil {
		n.Anchor = &rl.Vector2{}
	}
	n.Anchor.X, n.Anchor.Y = x, y
}

// Resize fixes the node's size, overriding the stylesheet.
func (n *Node) Resize(w, h float32) {
	n.Size.X, n.Size.Y = w, h
}

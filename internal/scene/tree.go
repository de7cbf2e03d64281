// Package scene holds the part hierarchy of the machine: an arena of nodes addressed by NodeID,
// each with an optional label, an optional solid shape and a transform relative to its parent.
//
// Nodes are only ever appended. The one mutation after construction is the spin angle of
// rotating subassemblies (see Advance).
package scene

import (
	"fmt"
	"slices"

	"lathe-viewer/internal/geom"
	"lathe-viewer/internal/rgba"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// NodeID indexes a node in its Tree.
type NodeID int

// None is the parent of root nodes and the "no node" result of lookups.
const None NodeID = -1

// Transform is a position/rotation/scale relative to the parent node.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix returns T * R * S.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Spin makes a node rotate about a local axis. Rate is a multiplier of the tree-wide spin rate so
// a small pulley can turn faster than a large one. Angle is in radians.
type Spin struct {
	Axis  mgl32.Vec3
	Rate  float32
	Angle float32
}

// Node is one part of the model. An empty Label marks decoration that is not identifiable on its
// own; hits on it resolve to the nearest labeled ancestor. Shape is nil for pure grouping nodes.
type Node struct {
	Label string
	Shape geom.Shape
	Color rgba.Color
	Local Transform
	Spin  *Spin

	parent   NodeID
	children []NodeID
}

// Tree owns all nodes. Parents own their children; parent links are indices, never pointers.
type Tree struct {
	nodes []Node
	roots []NodeID
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Add appends n under parent (None for a new root) and returns its id.
// A zero rotation quaternion or zero scale component is treated as identity.
func (t *Tree) Add(parent NodeID, n Node) NodeID {
	if parent != None && !t.valid(parent) {
		panic(fmt.Sprintf("scene: parent %d does not exist", parent))
	}
	if n.Local.Rotation == (mgl32.Quat{}) {
		n.Local.Rotation = mgl32.QuatIdent()
	}
	for i := range n.Local.Scale {
		if n.Local.Scale[i] == 0 {
			n.Local.Scale[i] = 1
		}
	}
	if n.Spin != nil {
		s := *n.Spin
		if s.Axis.Len() == 0 {
			s.Axis = mgl32.Vec3{0, 1, 0}
		}
		s.Axis = s.Axis.Normalize()
		n.Spin = &s
	}
	n.parent = parent
	n.children = nil

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	if parent == None {
		t.roots = append(t.roots, id)
	} else {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}
	return id
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Roots returns the top-level nodes in insertion order.
func (t *Tree) Roots() []NodeID { return t.roots }

// Node returns a copy of the node. The returned value must not be used to modify the tree.
func (t *Tree) Node(id NodeID) Node { return t.nodes[id] }

// Parent returns the parent of id, or None for roots.
func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].parent }

// Children returns the ordered children of id.
func (t *Tree) Children(id NodeID) []NodeID { return t.nodes[id].children }

// Label returns the label of id ("" for decoration).
func (t *Tree) Label(id NodeID) string { return t.nodes[id].Label }

// LocalMatrix returns the node's transform relative to its parent, including its spin.
func (t *Tree) LocalMatrix(id NodeID) mgl32.Mat4 {
	n := &t.nodes[id]
	if n.Spin == nil || n.Spin.Angle == 0 {
		return n.Local.Matrix()
	}
	tr := n.Local
	tr.Rotation = tr.Rotation.Mul(mgl32.QuatRotate(n.Spin.Angle, n.Spin.Axis))
	return tr.Matrix()
}

// World returns the node's object-to-world matrix (parent world * local, up to the root).
func (t *Tree) World(id NodeID) mgl32.Mat4 {
	m := t.LocalMatrix(id)
	for p := t.nodes[id].parent; p != None; p = t.nodes[p].parent {
		m = t.LocalMatrix(p).Mul4(m)
	}
	return m
}

// Walk visits every node depth-first in child order with its world matrix.
// Returning false from fn skips that node's descendants.
func (t *Tree) Walk(fn func(id NodeID, world mgl32.Mat4) bool) {
	var visit func(id NodeID, parent mgl32.Mat4)
	visit = func(id NodeID, parent mgl32.Mat4) {
		world := parent.Mul4(t.LocalMatrix(id))
		if !fn(id, world) {
			return
		}
		for _, c := range t.nodes[id].children {
			visit(c, world)
		}
	}
	for _, r := range t.roots {
		visit(r, mgl32.Ident4())
	}
}

// NearestLabeled returns id itself if it carries a label, else its closest labeled ancestor,
// else None when the whole chain up to the root is decoration.
func (t *Tree) NearestLabeled(id NodeID) NodeID {
	for cur := id; cur != None; cur = t.nodes[cur].parent {
		if t.nodes[cur].Label != "" {
			return cur
		}
	}
	return None
}

// Within reports whether id is ancestor itself or one of its descendants.
func (t *Tree) Within(id, ancestor NodeID) bool {
	if ancestor == None {
		return false
	}
	for cur := id; cur != None; cur = t.nodes[cur].parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Path returns the labels from the outermost labeled ancestor down to id, skipping decoration.
func (t *Tree) Path(id NodeID) []string {
	var out []string
	for cur := id; cur != None; cur = t.nodes[cur].parent {
		if l := t.nodes[cur].Label; l != "" {
			out = append(out, l)
		}
	}
	slices.Reverse(out)
	return out
}

// Find returns the first node (in id order) with the given label, or None.
func (t *Tree) Find(label string) NodeID {
	for i := range t.nodes {
		if t.nodes[i].Label == label {
			return NodeID(i)
		}
	}
	return None
}

// Labels returns every label in id order.
func (t *Tree) Labels() []string {
	var out []string
	for i := range t.nodes {
		if l := t.nodes[i].Label; l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Advance turns every spinning node by rate*Spin.Rate*dt radians, wrapped to [0, 2π).
func (t *Tree) Advance(dt, rate float32) {
	if dt <= 0 || rate == 0 {
		return
	}
	for i := range t.nodes {
		s := t.nodes[i].Spin
		if s == nil {
			continue
		}
		a := math32.Mod(s.Angle+rate*s.Rate*dt, 2*math32.Pi)
		if a < 0 {
			a += 2 * math32.Pi
		}
		s.Angle = a
	}
}

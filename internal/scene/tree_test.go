package scene

import (
	"testing"

	"lathe-viewer/internal/geom"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(x, y, z float32) Transform {
	tr := Identity()
	tr.Position = mgl32.Vec3{x, y, z}
	return tr
}

func origin(m mgl32.Mat4) mgl32.Vec3 {
	return m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

func TestWorldTransform(t *testing.T) {
	tree := New()
	parent := tree.Add(None, Node{Label: "parent", Local: at(10, 0, 0)})
	child := tree.Add(parent, Node{Local: at(0, 5, 0)})
	grandchild := tree.Add(child, Node{Local: at(0, 0, 2)})

	assert.Equal(t, mgl32.Vec3{10, 5, 0}, origin(tree.World(child)))
	assert.Equal(t, mgl32.Vec3{10, 5, 2}, origin(tree.World(grandchild)))

	// Rotating the parent 90° about Y carries a child at local (5,0,0) to (10,0,-5).
	rotated := New()
	p := Identity()
	p.Position = mgl32.Vec3{10, 0, 0}
	p.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	pid := rotated.Add(None, Node{Local: p})
	cid := rotated.Add(pid, Node{Local: at(5, 0, 0)})
	assert.InDelta(t, 0, origin(rotated.World(cid)).Sub(mgl32.Vec3{10, 0, -5}).Len(), 1e-4)
}

func TestWalkMatchesWorld(t *testing.T) {
	tree := New()
	a := tree.Add(None, Node{Local: at(1, 0, 0)})
	b := tree.Add(a, Node{Local: at(0, 1, 0)})
	tree.Add(b, Node{Local: at(0, 0, 1)})
	tree.Add(None, Node{Local: at(-3, 0, 0)})

	var visited []NodeID
	tree.Walk(func(id NodeID, world mgl32.Mat4) bool {
		visited = append(visited, id)
		assert.True(t, world.ApproxEqual(tree.World(id)), "node %d", id)
		return true
	})
	assert.Equal(t, []NodeID{0, 1, 2, 3}, visited)

	visited = nil
	tree.Walk(func(id NodeID, _ mgl32.Mat4) bool {
		visited = append(visited, id)
		return id != b
	})
	assert.Equal(t, []NodeID{0, 1, 3}, visited, "children of b are skipped")
}

func TestNearestLabeled(t *testing.T) {
	tree := New()
	group := tree.Add(None, Node{Label: "Sistema de Rendija"})
	sub := tree.Add(group, Node{Shape: geom.Box{Size: mgl32.Vec3{1, 1, 1}}})
	subsub := tree.Add(sub, Node{Shape: geom.Sphere{Radius: 0.1}})
	named := tree.Add(group, Node{Label: "Rendija", Shape: geom.Box{Size: mgl32.Vec3{1, 1, 1}}})
	gizmo := tree.Add(None, Node{})
	arrow := tree.Add(gizmo, Node{Shape: geom.Cone{Radius: 0.1, Height: 0.2}})

	assert.Equal(t, group, tree.NearestLabeled(sub))
	assert.Equal(t, group, tree.NearestLabeled(subsub))
	assert.Equal(t, named, tree.NearestLabeled(named))
	assert.Equal(t, None, tree.NearestLabeled(arrow))

	assert.True(t, tree.Within(subsub, group))
	assert.True(t, tree.Within(group, group))
	assert.False(t, tree.Within(arrow, group))
	assert.False(t, tree.Within(arrow, None))

	assert.Equal(t, named, tree.Find("Rendija"))
	assert.Equal(t, None, tree.Find("missing"))
	assert.Equal(t, []string{"Sistema de Rendija", "Rendija"}, tree.Labels())
	assert.Equal(t, []NodeID{group, gizmo}, tree.Roots())
	assert.Equal(t, []NodeID{sub, named}, tree.Children(group))
	assert.Equal(t, None, tree.Parent(group))

	assert.Equal(t, []string{"Sistema de Rendija", "Rendija"}, tree.Path(named))
	assert.Equal(t, []string{"Sistema de Rendija"}, tree.Path(subsub))
	assert.Empty(t, tree.Path(arrow))
}

func TestAddNormalizesTransform(t *testing.T) {
	tree := New()
	id := tree.Add(None, Node{Local: Transform{Position: mgl32.Vec3{1, 2, 3}}})
	n := tree.Node(id)
	assert.Equal(t, mgl32.QuatIdent(), n.Local.Rotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, n.Local.Scale)

	require.Panics(t, func() { tree.Add(NodeID(7), Node{}) })
}

func TestAdvanceSpin(t *testing.T) {
	tree := New()
	hub := tree.Add(None, Node{Spin: &Spin{Axis: mgl32.Vec3{2, 0, 0}, Rate: 2}})
	rim := tree.Add(hub, Node{Local: at(0, 1, 0)})
	still := tree.Add(None, Node{Local: at(0, 1, 0)})

	tree.Advance(0.25, math32.Pi) // 0.25 * π * 2 = π/2
	assert.InDelta(t, math32.Pi/2, tree.Node(hub).Spin.Angle, 1e-5)
	assert.InDelta(t, 0, origin(tree.World(rim)).Sub(mgl32.Vec3{0, 0, 1}).Len(), 1e-4)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, origin(tree.World(still)))

	tree.Advance(1, math32.Pi) // +2π wraps
	assert.InDelta(t, math32.Pi/2, tree.Node(hub).Spin.Angle, 1e-4)

	tree.Advance(-1, 1)
	assert.InDelta(t, math32.Pi/2, tree.Node(hub).Spin.Angle, 1e-4, "negative dt is ignored")

	// Running backwards wraps below zero into [0, 2π).
	tree.Advance(0.5, -math32.Pi)
	assert.InDelta(t, 3*math32.Pi/2, tree.Node(hub).Spin.Angle, 1e-4)
}

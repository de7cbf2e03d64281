package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxIntersect(t *testing.T) {
	box := Box{Size: mgl32.Vec3{2, 2, 2}}

	d, ok := box.Intersect(NewRay(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1}))
	require.True(t, ok)
	assert.InDelta(t, 9, d, 1e-4)

	_, ok = box.Intersect(NewRay(mgl32.Vec3{0, 3, 10}, mgl32.Vec3{0, 0, -1}))
	assert.False(t, ok, "ray passes above the box")

	_, ok = box.Intersect(NewRay(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 1}))
	assert.False(t, ok, "box is behind the ray")

	// From inside the ray reports the exit face.
	d, ok = box.Intersect(NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}))
	require.True(t, ok)
	assert.InDelta(t, 1, d, 1e-4)
}

func TestSphereIntersect(t *testing.T) {
	s := Sphere{Radius: 0.5}
	d, ok := s.Intersect(NewRay(mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{1, 0, 0}))
	require.True(t, ok)
	assert.InDelta(t, 4.5, d, 1e-4)

	_, ok = s.Intersect(NewRay(mgl32.Vec3{-5, 0.6, 0}, mgl32.Vec3{1, 0, 0}))
	assert.False(t, ok)
}

func TestCylinderIntersect(t *testing.T) {
	c := Cylinder{Radius: 1, Height: 2}

	// Side hit.
	d, ok := c.Intersect(NewRay(mgl32.Vec3{5, 0.5, 0}, mgl32.Vec3{-1, 0, 0}))
	require.True(t, ok)
	assert.InDelta(t, 4, d, 1e-4)

	// Cap hit from above.
	d, ok = c.Intersect(NewRay(mgl32.Vec3{0.2, 5, 0}, mgl32.Vec3{0, -1, 0}))
	require.True(t, ok)
	assert.InDelta(t, 4, d, 1e-4)

	// Beside the side, above the top.
	_, ok = c.Intersect(NewRay(mgl32.Vec3{5, 1.5, 0}, mgl32.Vec3{-1, 0, 0}))
	assert.False(t, ok)

	// Parallel to the axis but outside the radius.
	_, ok = c.Intersect(NewRay(mgl32.Vec3{1.5, 5, 0}, mgl32.Vec3{0, -1, 0}))
	assert.False(t, ok)
}

func TestConeIntersect(t *testing.T) {
	c := Cone{Radius: 1, Height: 2}

	// Base cap from below.
	d, ok := c.Intersect(NewRay(mgl32.Vec3{0.5, -5, 0}, mgl32.Vec3{0, 1, 0}))
	require.True(t, ok)
	assert.InDelta(t, 4, d, 1e-4)

	// Side at mid height: radius there is 0.5.
	d, ok = c.Intersect(NewRay(mgl32.Vec3{5, 0, 0}, mgl32.Vec3{-1, 0, 0}))
	require.True(t, ok)
	assert.InDelta(t, 4.5, d, 1e-4)

	// Near the apex the cone is thin.
	_, ok = c.Intersect(NewRay(mgl32.Vec3{5, 0.9, 0.2}, mgl32.Vec3{-1, 0, 0}))
	assert.False(t, ok)

	// The upper nappe of the double cone is not part of the solid.
	_, ok = c.Intersect(NewRay(mgl32.Vec3{5, 2.5, 0}, mgl32.Vec3{-1, 0, 0}))
	assert.False(t, ok)
}

func TestRayTransform(t *testing.T) {
	// World-to-object of an object scaled by 0.5 doubles distances.
	w2o := mgl32.Scale3D(2, 2, 2)
	local, scale := NewRay(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1}).Transform(w2o)
	assert.InDelta(t, 2, scale, 1e-5)
	assert.InDelta(t, 1, local.Dir.Len(), 1e-5)
	assert.Equal(t, mgl32.Vec3{0, 0, 2}, local.Origin)
}

func TestMeshScale(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, Sphere{Radius: 0.5}.MeshScale())
	assert.Equal(t, mgl32.Vec3{0.6, 2, 0.6}, Cylinder{Radius: 0.3, Height: 2}.MeshScale())
	assert.Equal(t, mgl32.Vec3{3, 2, 1}, Box{Size: mgl32.Vec3{3, 2, 1}}.MeshScale())
}

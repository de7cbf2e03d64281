// Package geom holds rays and the primitive solids the lathe is built from, with analytic
// ray intersection in the shape's local space.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line. Dir is expected to be unit length so t is a distance.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// NewRay returns a ray from origin along dir (normalized).
func NewRay(origin, dir mgl32.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Transform maps the ray through m (e.g. world-to-object). The returned ray has a unit direction;
// scale is the length of the transformed direction before normalizing, so a distance t in the
// source space corresponds to t*scale in the target space. scale is 0 for a degenerate matrix.
func (r Ray) Transform(m mgl32.Mat4) (out Ray, scale float32) {
	origin := m.Mul4x1(r.Origin.Vec4(1)).Vec3()
	dir := m.Mul4x1(r.Dir.Vec4(0)).Vec3()
	scale = dir.Len()
	if scale < 1e-9 {
		return Ray{Origin: origin}, 0
	}
	return Ray{Origin: origin, Dir: dir.Mul(1 / scale)}, scale
}

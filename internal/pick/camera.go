package pick

import (
	"lathe-viewer/internal/geom"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFovY = 45
	// DefaultNear and DefaultFar match raylib's cull distances so picking and drawing agree.
	DefaultNear = 0.01
	DefaultFar  = 1000

	MinDistance = 2
	MaxDistance = 40
	maxPitch    = 89 * math32.Pi / 180
)

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32 // vertical field of view in degrees
	Aspect   float32 // width / height
	Near     float32
	Far      float32
}

// DefaultCamera returns the start-up view: from (4,3,6) at the origin.
func DefaultCamera(w, h int) Camera {
	c := Camera{
		Position: mgl32.Vec3{4, 3, 6},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     DefaultFovY,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
	c.SetViewport(w, h)
	return c
}

// SetViewport recomputes the aspect ratio for a w x h viewport. Must run before the next Ray
// after a resize.
func (c *Camera) SetViewport(w, h int) {
	c.Aspect = float32(max(w, 1)) / float32(max(h, 1))
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective projection matrix.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// basis returns the camera's forward, right and up unit vectors.
func (c Camera) basis() (forward, right, up mgl32.Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// Ray returns the world ray from the eye through the NDC point.
func (c Camera) Ray(ndc mgl32.Vec2) geom.Ray {
	forward, right, up := c.basis()
	tanHalf := math32.Tan(mgl32.DegToRad(c.FovY) / 2)
	dir := forward.
		Add(right.Mul(ndc.X() * tanHalf * c.Aspect)).
		Add(up.Mul(ndc.Y() * tanHalf))
	return geom.NewRay(c.Position, dir)
}

// Project maps a world point to NDC. ok is false for points behind the camera.
func (c Camera) Project(p mgl32.Vec3) (ndc mgl32.Vec2, ok bool) {
	clip := c.Projection().Mul4(c.View()).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}, true
}

// ScreenPoint maps a world point to pixels on a w x h viewport. ok is false for points behind the camera.
func (c Camera) ScreenPoint(p mgl32.Vec3, w, h int) (px, py float32, ok bool) {
	ndc, ok := c.Project(p)
	if !ok {
		return 0, 0, false
	}
	px, py = ToPixel(ndc, w, h)
	return px, py, true
}

// Distance returns the eye-to-target distance.
func (c Camera) Distance() float32 {
	return c.Position.Sub(c.Target).Len()
}

// Orbit rotates the eye around the target by yaw (about world Y) and pitch, in radians.
// Pitch is clamped short of the poles.
func (c *Camera) Orbit(yaw, pitch float32) {
	off := c.Position.Sub(c.Target)
	r := off.Len()
	if r == 0 {
		return
	}
	theta := math32.Atan2(off.X(), off.Z()) + yaw
	phi := math32.Asin(off.Y()/r) + pitch
	phi = max(-maxPitch, min(maxPitch, phi))
	c.Position = c.Target.Add(mgl32.Vec3{
		r * math32.Cos(phi) * math32.Sin(theta),
		r * math32.Sin(phi),
		r * math32.Cos(phi) * math32.Cos(theta),
	})
}

// Zoom scales the eye-to-target distance by factor, clamped to [MinDistance, MaxDistance].
func (c *Camera) Zoom(factor float32) {
	off := c.Position.Sub(c.Target)
	r := off.Len()
	if r == 0 || factor <= 0 {
		return
	}
	nr := max(MinDistance, min(MaxDistance, r*factor))
	c.Position = c.Target.Add(off.Mul(nr / r))
}

package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Kind names a primitive shape. The names match the YAML "kind" field of a part definition.
type Kind string

const (
	KindBox      Kind = "box"
	KindCylinder Kind = "cylinder"
	KindCone     Kind = "cone"
	KindSphere   Kind = "sphere"
)

// epsilon is the minimum ray distance accepted as a hit (avoids self-hits at t=0).
const epsilon = 1e-5

// Shape is a solid centered at the local origin. Axial shapes (cylinder, cone) run along local +Y.
type Shape interface {
	Kind() Kind
	// Intersect returns the smallest ray distance >= epsilon at which r enters (or, from inside, leaves) the shape.
	Intersect(r Ray) (t float32, ok bool)
	// MeshScale is the scale applied to the unit mesh of this kind (1x1x1 cube, diameter-1 sphere,
	// radius-0.5 height-1 cylinder/cone) so the drawn mesh matches the shape.
	MeshScale() mgl32.Vec3
}

// Box is an axis-aligned box with full edge lengths Size.
type Box struct {
	Size mgl32.Vec3
}

func (Box) Kind() Kind { return KindBox }

func (b Box) MeshScale() mgl32.Vec3 { return b.Size }

// Intersect uses the slab method on each axis.
func (b Box) Intersect(r Ray) (float32, bool) {
	half := b.Size.Mul(0.5)
	tNear := -math32.Inf(1)
	tFar := math32.Inf(1)
	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Dir[i]
		if math32.Abs(d) < 1e-9 {
			if o < -half[i] || o > half[i] {
				return 0, false
			}
			continue
		}
		t0 := (-half[i] - o) / d
		t1 := (half[i] - o) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tNear = max(tNear, t0)
		tFar = min(tFar, t1)
		if tNear > tFar {
			return 0, false
		}
	}
	if tNear >= epsilon {
		return tNear, true
	}
	if tFar >= epsilon {
		return tFar, true
	}
	return 0, false
}

// Sphere is a ball of the given radius.
type Sphere struct {
	Radius float32
}

func (Sphere) Kind() Kind { return KindSphere }

func (s Sphere) MeshScale() mgl32.Vec3 {
	d := s.Radius * 2
	return mgl32.Vec3{d, d, d}
}

func (s Sphere) Intersect(r Ray) (float32, bool) {
	b := r.Origin.Dot(r.Dir)
	c := r.Origin.Dot(r.Origin) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	return nearest(-b-sq, -b+sq)
}

// Cylinder is a capped cylinder of Radius and Height along local Y.
type Cylinder struct {
	Radius float32
	Height float32
}

func (Cylinder) Kind() Kind { return KindCylinder }

func (c Cylinder) MeshScale() mgl32.Vec3 {
	d := c.Radius * 2
	return mgl32.Vec3{d, c.Height, d}
}

func (c Cylinder) Intersect(r Ray) (float32, bool) {
	h := c.Height / 2
	o, d := r.Origin, r.Dir
	cands := make([]float32, 0, 4)

	a := d.X()*d.X() + d.Z()*d.Z()
	if a > 1e-12 {
		b := 2 * (o.X()*d.X() + o.Z()*d.Z())
		cc := o.X()*o.X() + o.Z()*o.Z() - c.Radius*c.Radius
		if t0, t1, ok := quadratic(a, b, cc); ok {
			for _, t := range [2]float32{t0, t1} {
				if y := o.Y() + t*d.Y(); y >= -h && y <= h {
					cands = append(cands, t)
				}
			}
		}
	}
	cands = appendCap(cands, r, h, c.Radius)
	cands = appendCap(cands, r, -h, c.Radius)
	return nearest(cands...)
}

// Cone has its base disc (Radius) at y = -Height/2 and its apex at y = +Height/2.
type Cone struct {
	Radius float32
	Height float32
}

func (Cone) Kind() Kind { return KindCone }

func (c Cone) MeshScale() mgl32.Vec3 {
	d := c.Radius * 2
	return mgl32.Vec3{d, c.Height, d}
}

// Intersect solves x²+z² = k²(h-y)² on the lower nappe (y in [-h, h]) plus the base cap.
func (c Cone) Intersect(r Ray) (float32, bool) {
	if c.Height <= 0 {
		return 0, false
	}
	h := c.Height / 2
	k := c.Radius / c.Height
	k2 := k * k
	o, d := r.Origin, r.Dir
	q := h - o.Y()
	cands := make([]float32, 0, 3)

	a := d.X()*d.X() + d.Z()*d.Z() - k2*d.Y()*d.Y()
	b := 2*(o.X()*d.X()+o.Z()*d.Z()) + 2*k2*q*d.Y()
	cc := o.X()*o.X() + o.Z()*o.Z() - k2*q*q
	var roots []float32
	if math32.Abs(a) < 1e-9 {
		if math32.Abs(b) > 1e-9 {
			roots = append(roots, -cc/b)
		}
	} else if t0, t1, ok := quadratic(a, b, cc); ok {
		roots = append(roots, t0, t1)
	}
	for _, t := range roots {
		if y := o.Y() + t*d.Y(); y >= -h && y <= h {
			cands = append(cands, t)
		}
	}
	cands = appendCap(cands, r, -h, c.Radius)
	return nearest(cands...)
}

// appendCap adds the distance to the disc of radius at height y, if the ray crosses it.
func appendCap(cands []float32, r Ray, y, radius float32) []float32 {
	dy := r.Dir.Y()
	if math32.Abs(dy) < 1e-9 {
		return cands
	}
	t := (y - r.Origin.Y()) / dy
	p := r.At(t)
	if p.X()*p.X()+p.Z()*p.Z() <= radius*radius {
		cands = append(cands, t)
	}
	return cands
}

func quadratic(a, b, c float32) (t0, t1 float32, ok bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math32.Sqrt(disc)
	t0 = (-b - sq) / (2 * a)
	t1 = (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// nearest returns the smallest candidate >= epsilon.
func nearest(cands ...float32) (float32, bool) {
	best := math32.Inf(1)
	for _, t := range cands {
		if t >= epsilon && t < best {
			best = t
		}
	}
	if math32.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

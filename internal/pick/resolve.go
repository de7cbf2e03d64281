// Package pick turns pointer positions into rays and rays into the named machine part under the
// pointer.
package pick

import (
	"lathe-viewer/internal/geom"
	"lathe-viewer/internal/scene"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Hit is the outcome of one pick. Surface is the node whose shape was hit nearest; Part is the
// labeled node it resolves to. Both are scene.None when nothing was hit; Part alone is None when
// the hit surface is pure decoration.
type Hit struct {
	Surface  scene.NodeID
	Part     scene.NodeID
	Label    string
	Distance float32
	Point    mgl32.Vec3
}

// NoHit is the empty result.
func NoHit() Hit {
	return Hit{Surface: scene.None, Part: scene.None}
}

// Named reports whether the hit resolved to a labeled part.
func (h Hit) Named() bool {
	return h.Part != scene.None
}

// Resolve casts r against every shaped node of the tree and returns the nearest surface,
// resolved to its nearest labeled self-or-ancestor. Resolve does not modify the tree.
func Resolve(t *scene.Tree, r geom.Ray) Hit {
	best := NoHit()
	best.Distance = math32.Inf(1)

	t.Walk(func(id scene.NodeID, world mgl32.Mat4) bool {
		shape := t.Node(id).Shape
		if shape == nil {
			return true
		}
		local, scale := r.Transform(world.Inv())
		if scale == 0 {
			return true
		}
		lt, ok := shape.Intersect(local)
		if !ok {
			return true
		}
		// Distance is measured in world space so non-uniform scales compare correctly.
		p := world.Mul4x1(local.At(lt).Vec4(1)).Vec3()
		if d := p.Sub(r.Origin).Len(); d < best.Distance {
			best.Surface = id
			best.Distance = d
			best.Point = p
		}
		return true
	})

	if best.Surface == scene.None {
		return NoHit()
	}
	best.Part = t.NearestLabeled(best.Surface)
	if best.Part != scene.None {
		best.Label = t.Label(best.Part)
	}
	return best
}

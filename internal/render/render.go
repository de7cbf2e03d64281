// Package render draws the part tree with raylib: every shaped node through the primitive
// registry, the hovered part tinted, and a floor grid under the machine.
package render

import (
	"lathe-viewer/internal/feedback"
	"lathe-viewer/internal/pick"
	"lathe-viewer/internal/primitives"
	"lathe-viewer/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Background is the clear color behind the model.
var Background = rl.NewColor(34, 36, 42, 255)

// lightDir points from the scene toward the key light (above, in front, slightly right).
var lightDir = [3]float32{0.4, 1, 0.6}

// Renderer owns the GPU resources for drawing the lathe.
type Renderer struct {
	reg *primitives.Registry
	// GridVisible toggles the floor grid.
	GridVisible bool
}

// New returns a renderer with the grid on. GPU resources are created lazily on first Draw.
func New() *Renderer {
	return &Renderer{reg: primitives.NewRegistry(), GridVisible: true}
}

// Camera3D converts a picking camera into raylib's camera so drawing and hit-testing share one view.
func Camera3D(c pick.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(c.Position),
		Target:     vec3(c.Target),
		Up:         vec3(c.Up),
		Fovy:       c.FovY,
		Projection: rl.CameraPerspective,
	}
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// Draw renders tree from cam. Nodes inside hovered (scene.None for no hover) are tinted.
// Call between BeginDrawing and EndDrawing, before the 2D overlay.
func (r *Renderer) Draw(tree *scene.Tree, cam pick.Camera, hovered scene.NodeID) {
	r.reg.SetView([3]float32{cam.Position.X(), cam.Position.Y(), cam.Position.Z()}, lightDir)
	rl.BeginMode3D(Camera3D(cam))
	if r.GridVisible {
		drawFloorGrid()
	}
	if tree != nil {
		tree.Walk(func(id scene.NodeID, world mgl32.Mat4) bool {
			n := tree.Node(id)
			if n.Shape != nil {
				c := feedback.Tint(tree, id, hovered)
				r.reg.Draw(n.Shape, world, rl.NewColor(c.R, c.G, c.B, c.A))
			}
			return true
		})
	}
	rl.EndMode3D()
}

// Unload frees meshes and shaders.
func (r *Renderer) Unload() {
	r.reg.Unload()
}

// Package primitives draws the unit meshes the lathe is built from (box, cylinder, cone, sphere)
// with a simple lit shader.
package primitives

import (
	"lathe-viewer/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// cached holds mesh and material for a primitive kind. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// offset moves the raylib mesh so it is centred on the origin before scaling.
	offset mgl32.Vec3
}

// Registry maps primitive kinds to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[geom.Kind]cached
	shader   rl.Shader
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns a registry with no primitives loaded.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[geom.Kind]cached),
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing so lit primitives get correct shading.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// Mesh resolution.
const (
	sphereRings  = 16
	sphereSlices = 16
	circleSlices = 32
)

// unitMesh generates the unit mesh of a kind: 1x1x1 cube, diameter-1 sphere, and radius-0.5,
// height-1 cylinder and cone. Raylib builds cylinders and cones up from Y=0, so they are
// offset by -0.5 to centre them like geom's shapes.
func unitMesh(kind geom.Kind) (rl.Mesh, mgl32.Vec3, bool) {
	switch kind {
	case geom.KindBox:
		return rl.GenMeshCube(1, 1, 1), mgl32.Vec3{}, true
	case geom.KindSphere:
		return rl.GenMeshSphere(0.5, sphereRings, sphereSlices), mgl32.Vec3{}, true
	case geom.KindCylinder:
		return rl.GenMeshCylinder(0.5, 1, circleSlices), mgl32.Vec3{0, -0.5, 0}, true
	case geom.KindCone:
		return rl.GenMeshCone(0.5, 1, circleSlices), mgl32.Vec3{0, -0.5, 0}, true
	}
	return rl.Mesh{}, mgl32.Vec3{}, false
}

// ensure creates the mesh and material for kind if not yet cached.
// All kinds share one lit shader (directional light + ambient + specular).
func (r *Registry) ensure(kind geom.Kind) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	mesh, offset, ok := unitMesh(kind)
	if !ok {
		return cached{}, false
	}
	if r.shader.ID == 0 {
		r.shader = loadLitShader()
	}
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	c := cached{mesh: mesh, mtl: mtl, offset: offset}
	r.cache[kind] = c
	return c, true
}

// Matrix converts a column-major mgl32 matrix to raylib's layout (same element order by name).
func Matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}

// Draw draws shape with the object-to-world matrix world, tinted color.
// Must be called between BeginMode3D and EndMode3D, after SetView.
// Unknown kinds are skipped.
func (r *Registry) Draw(shape geom.Shape, world mgl32.Mat4, color rl.Color) {
	c, ok := r.ensure(shape.Kind())
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.setLitShaderUniforms(c.mtl.Shader)
	s := shape.MeshScale()
	m := world.
		Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z())).
		Mul4(mgl32.Translate3D(c.offset.X(), c.offset.Y(), c.offset.Z()))
	rl.DrawMesh(c.mesh, c.mtl, Matrix(m))
}

// Unload frees every mesh and the shared shader. The registry can be reused afterwards.
func (r *Registry) Unload() {
	for kind, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, kind)
	}
	if r.shader.ID != 0 {
		rl.UnloadShader(r.shader)
		r.shader = rl.Shader{}
	}
}

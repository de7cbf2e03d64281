package model

import (
	"fmt"

	"lathe-viewer/internal/geom"
	"lathe-viewer/internal/scene"

	"github.com/chewxy/math32"
)

// Revision selects how much of the lathe is assembled. Each revision adds to the previous one.
type Revision int

const (
	// RevisionBed is the bed, base plate, headstock with spindle, and the workpiece.
	RevisionBed Revision = iota + 1
	// RevisionTailstock adds the tailstock.
	RevisionTailstock
	// RevisionDrive adds the motor and the belt drive.
	RevisionDrive
	// RevisionToolRest adds the tool rest.
	RevisionToolRest

	Latest = RevisionToolRest
)

// Clamp returns r limited to the known revisions.
func (r Revision) Clamp() Revision {
	return min(max(r, RevisionBed), Latest)
}

func (r Revision) String() string {
	switch r.Clamp() {
	case RevisionBed:
		return "R1 bancada"
	case RevisionTailstock:
		return "R2 contrapunto"
	case RevisionDrive:
		return "R3 transmisión"
	}
	return "R4 soporte"
}

// Part labels of the built-in lathe.
const (
	LabelBase            = "Placa Base"
	LabelBed             = "Bancada"
	LabelBedFront        = "Viga Frontal de la Bancada"
	LabelBedBack         = "Viga Trasera de la Bancada"
	LabelHeadstock       = "Cabezal"
	LabelSpindle         = "Husillo"
	LabelSpindleShaft    = "Eje del Husillo"
	LabelSpindlePulley   = "Polea del Husillo"
	LabelFaceplate       = "Plato"
	LabelDriveCenter     = "Punto de Arrastre"
	LabelWorkpiece       = "Pieza de Trabajo"
	LabelTailstock       = "Contrapunto"
	LabelTailHousing     = "Carcasa del Contrapunto"
	LabelQuill           = "Caña del Contrapunto"
	LabelLiveCenter      = "Punto Giratorio"
	LabelHandwheel       = "Volante del Contrapunto"
	LabelClamp           = "Palanca de Bloqueo"
	LabelMotor           = "Motor"
	LabelMotorBody       = "Cuerpo del Motor"
	LabelMotorShaft      = "Eje del Motor"
	LabelMotorPulley     = "Polea del Motor"
	LabelBelt            = "Correa de Transmisión"
	LabelToolRest        = "Soporte de Herramienta"
	LabelToolRestBase    = "Base del Soporte"
	LabelToolRestPost    = "Poste del Soporte"
	LabelToolRestSupport = "Apoyo de Herramienta"
)

const (
	colorBlank     = "#d2a679"
	colorCastIron  = "#2f5d50"
	colorSteel     = "#b0b7bf"
	colorDarkSteel = "#4a4f55"
	colorMotor     = "#2c4f7c"
	colorBelt      = "#1f1f1f"
	colorBase      = "#6b6b6b"
	colorBrass     = "#c9a227"
)

// The spindle axis runs along world X at y=0, z=0. Cylinders and cones are authored along +Y and
// rotated onto X.
var (
	alongX     = [3]float32{0, 0, 90}
	pointingX  = [3]float32{0, 0, -90} // cone apex towards +X
	pointingNX = [3]float32{0, 0, 90}  // cone apex towards -X
	axisX      = [3]float32{1, 0, 0}
)

const (
	pulleyX        = -2.75
	spindlePulleyR = 0.32
	motorPulleyR   = 0.13
)

var motorAt = [3]float32{-2.0, -1.35, -0.75}

// Lathe returns the definition of the wood lathe at the given revision.
func Lathe(rev Revision) Def {
	rev = rev.Clamp()
	parts := []PartDef{
		basePlate(),
		bed(),
		headstock(),
		{
			Label:    LabelWorkpiece,
			Color:    colorBlank,
			Rotation: alongX,
			Shape:    cylinder(0.15, 2.5),
		},
	}
	if rev >= RevisionTailstock {
		parts = append(parts, tailstock())
	}
	if rev >= RevisionDrive {
		parts = append(parts, motor(), belt())
	}
	if rev >= RevisionToolRest {
		parts = append(parts, toolRest())
	}
	parts = append(parts, gizmo())
	return Def{Name: "Torno de Madera " + rev.String(), Parts: parts}
}

// BuildLathe builds the built-in lathe. The definition is static, so a failure is a programming error.
func BuildLathe(rev Revision) *scene.Tree {
	t, err := Build(Lathe(rev))
	if err != nil {
		panic(fmt.Sprintf("model: built-in lathe is invalid: %v", err))
	}
	return t
}

func box(sx, sy, sz float32) *ShapeDef {
	return &ShapeDef{Kind: geom.KindBox, Size: [3]float32{sx, sy, sz}}
}

func cylinder(r, h float32) *ShapeDef {
	return &ShapeDef{Kind: geom.KindCylinder, Radius: r, Height: h}
}

func cone(r, h float32) *ShapeDef {
	return &ShapeDef{Kind: geom.KindCone, Radius: r, Height: h}
}

func basePlate() PartDef {
	return PartDef{
		Label:    LabelBase,
		Color:    colorBase,
		Position: [3]float32{0, -1.75, -0.2},
		Shape:    box(6.0, 0.1, 2.2),
	}
}

func bed() PartDef {
	leg := func(x float32) PartDef {
		return PartDef{Color: colorCastIron, Position: [3]float32{x, -1.35, 0}, Shape: box(0.35, 0.7, 0.8)}
	}
	return PartDef{
		Label: LabelBed,
		Children: []PartDef{
			{Label: LabelBedFront, Color: colorCastIron, Position: [3]float32{0, -0.9, 0.25}, Shape: box(5.0, 0.25, 0.15)},
			{Label: LabelBedBack, Color: colorCastIron, Position: [3]float32{0, -0.9, -0.25}, Shape: box(5.0, 0.25, 0.15)},
			leg(-2.2),
			leg(2.2),
		},
	}
}

func headstock() PartDef {
	return PartDef{
		Label:    LabelHeadstock,
		Position: [3]float32{-2.0, 0, 0},
		Children: []PartDef{
			// Housing; hovering it names the headstock.
			{Color: colorCastIron, Position: [3]float32{0, -0.25, 0}, Shape: box(0.9, 1.1, 0.8)},
			{
				Label: LabelSpindle,
				Spin:  &SpinDef{Axis: axisX, Rate: 1},
				Children: []PartDef{
					{Label: LabelSpindleShaft, Color: colorSteel, Position: [3]float32{-0.15, 0, 0}, Rotation: alongX, Shape: cylinder(0.07, 1.5)},
					{Label: LabelSpindlePulley, Color: colorDarkSteel, Position: [3]float32{pulleyX + 2.0, 0, 0}, Rotation: alongX, Shape: cylinder(spindlePulleyR, 0.14)},
					{Label: LabelFaceplate, Color: colorDarkSteel, Position: [3]float32{0.6, 0, 0}, Rotation: alongX, Shape: cylinder(0.22, 0.16)},
					{Label: LabelDriveCenter, Color: colorSteel, Position: [3]float32{0.73, 0, 0}, Rotation: pointingX, Shape: cone(0.08, 0.1)},
				},
			},
		},
	}
}

func tailstock() PartDef {
	return PartDef{
		Label:    LabelTailstock,
		Position: [3]float32{1.9, 0, 0},
		Children: []PartDef{
			{Label: LabelTailHousing, Color: colorCastIron, Position: [3]float32{0, -0.35, 0}, Shape: box(0.6, 0.85, 0.55)},
			{Label: LabelQuill, Color: colorSteel, Position: [3]float32{-0.45, 0, 0}, Rotation: alongX, Shape: cylinder(0.09, 0.3)},
			{Label: LabelLiveCenter, Color: colorSteel, Position: [3]float32{-0.65, 0, 0}, Rotation: pointingNX, Shape: cone(0.08, 0.1)},
			{Label: LabelHandwheel, Color: colorBrass, Position: [3]float32{0.35, 0, 0}, Rotation: alongX, Shape: cylinder(0.18, 0.06)},
			{Label: LabelClamp, Color: colorDarkSteel, Position: [3]float32{0, -0.6, 0.33}, Shape: box(0.08, 0.35, 0.08)},
		},
	}
}

func motor() PartDef {
	return PartDef{
		Label:    LabelMotor,
		Position: motorAt,
		Children: []PartDef{
			{Label: LabelMotorBody, Color: colorMotor, Rotation: alongX, Shape: cylinder(0.25, 0.7)},
			// Mount plate.
			{Color: colorDarkSteel, Position: [3]float32{0, -0.3, 0}, Shape: box(0.5, 0.1, 0.4)},
			{
				// Rotor: the small pulley turns faster by the pulley ratio.
				Spin: &SpinDef{Axis: axisX, Rate: spindlePulleyR / motorPulleyR},
				Children: []PartDef{
					{Label: LabelMotorShaft, Color: colorSteel, Position: [3]float32{-0.55, 0, 0}, Rotation: alongX, Shape: cylinder(0.04, 0.5)},
					{Label: LabelMotorPulley, Color: colorDarkSteel, Position: [3]float32{pulleyX - motorAt[0], 0, 0}, Rotation: alongX, Shape: cylinder(motorPulleyR, 0.14)},
				},
			},
		},
	}
}

// belt returns the two straight runs between the spindle and motor pulleys. Both runs are
// unlabeled so they resolve to the belt group.
func belt() PartDef {
	a := [2]float32{0, 0} // spindle pulley centre (y, z)
	b := [2]float32{motorAt[1], motorAt[2]}
	return PartDef{
		Label:    LabelBelt,
		Position: [3]float32{pulleyX, 0, 0},
		Children: []PartDef{
			beltRun(a, b, spindlePulleyR, motorPulleyR, 1),
			beltRun(a, b, spindlePulleyR, motorPulleyR, -1),
		},
	}
}

// beltRun is a thin box spanning from pulley a to pulley b, offset by each radius on the given
// side of the line between the centres. Points are (y, z) in the belt plane.
func beltRun(a, b [2]float32, ra, rb, side float32) PartDef {
	dy, dz := b[0]-a[0], b[1]-a[1]
	l := math32.Hypot(dy, dz)
	ny, nz := -dz/l*side, dy/l*side
	p := [2]float32{a[0] + ny*ra, a[1] + nz*ra}
	q := [2]float32{b[0] + ny*rb, b[1] + nz*rb}
	ry, rz := q[0]-p[0], q[1]-p[1]
	angle := math32.Atan2(rz, ry) * 180 / math32.Pi
	return PartDef{
		Color:    colorBelt,
		Position: [3]float32{0, (p[0] + q[0]) / 2, (p[1] + q[1]) / 2},
		Rotation: [3]float32{angle, 0, 0},
		Shape:    box(0.1, math32.Hypot(ry, rz), 0.03),
	}
}

func toolRest() PartDef {
	return PartDef{
		Label:    LabelToolRest,
		Position: [3]float32{0.2, 0, 0},
		Children: []PartDef{
			{Label: LabelToolRestBase, Color: colorCastIron, Position: [3]float32{0, -0.7, 0.15}, Shape: box(0.5, 0.15, 0.7)},
			{Label: LabelToolRestPost, Color: colorSteel, Position: [3]float32{0, -0.425, 0.35}, Shape: cylinder(0.05, 0.4)},
			{Label: LabelToolRestSupport, Color: colorDarkSteel, Position: [3]float32{0, -0.2, 0.3}, Shape: box(1.2, 0.06, 0.06)},
		},
	}
}

// gizmo is the unlabeled XYZ orientation marker on the base plate corner.
func gizmo() PartDef {
	arrow := func(color string, rot [3]float32) PartDef {
		return PartDef{
			Rotation: rot,
			Children: []PartDef{
				{Color: color, Position: [3]float32{0, 0.125, 0}, Shape: cylinder(0.015, 0.25)},
				{Color: color, Position: [3]float32{0, 0.29, 0}, Shape: cone(0.04, 0.08)},
			},
		}
	}
	return PartDef{
		Position: [3]float32{2.6, -1.7, 0.5},
		Children: []PartDef{
			arrow("#e53935", [3]float32{0, 0, -90}),
			arrow("#43a047", [3]float32{}),
			arrow("#1e88e5", [3]float32{90, 0, 0}),
		},
	}
}

// Package model describes machines declaratively and builds their part trees.
//
// A Def is a nested list of parts. It can be written as a Go literal (see Lathe) or loaded
// from YAML, for example:
//
//	name: Torno de madera
//	parts:
//	  - label: Pieza de Trabajo
//	    color: "#d2a679"
//	    rotation: [0, 0, 90]
//	    shape: {kind: cylinder, radius: 0.15, height: 2.5}
package model

import (
	"errors"
	"fmt"
	"io"
	"os"

	"lathe-viewer/internal/geom"
	"lathe-viewer/internal/rgba"
	"lathe-viewer/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Def is a whole model.
type Def struct {
	Name  string    `yaml:"name"`
	Parts []PartDef `yaml:"parts"`
}

// PartDef is one node. Parts without a shape group their children; parts without a label are
// decoration and resolve to their nearest labeled ancestor when hovered.
type PartDef struct {
	Label    string     `yaml:"label,omitempty"`
	Shape    *ShapeDef  `yaml:"shape,omitempty"`
	Color    string     `yaml:"color,omitempty"`
	Position [3]float32 `yaml:"position,flow"`
	// Rotation is in degrees about X, then Y, then Z.
	Rotation [3]float32 `yaml:"rotation,flow"`
	Scale    [3]float32 `yaml:"scale,flow"`
	Spin     *SpinDef   `yaml:"spin,omitempty"`
	Children []PartDef  `yaml:"children,omitempty"`
}

// ShapeDef selects a primitive. Size is used by boxes; Radius and Height by the others
// (spheres use Radius only).
type ShapeDef struct {
	Kind   geom.Kind  `yaml:"kind"`
	Size   [3]float32 `yaml:"size,omitempty,flow"`
	Radius float32    `yaml:"radius,omitempty"`
	Height float32    `yaml:"height,omitempty"`
}

// SpinDef marks a rotating subassembly. Rate multiplies the configured spin rate.
type SpinDef struct {
	Axis [3]float32 `yaml:"axis,flow"`
	Rate float32    `yaml:"rate"`
}

// defaultColor is used for parts without a color.
var defaultColor = rgba.Color{R: 128, G: 128, B: 128, A: 255}

// Shape converts the definition to a geom.Shape.
func (s ShapeDef) Shape() (geom.Shape, error) {
	switch s.Kind {
	case geom.KindBox:
		if s.Size[0] <= 0 || s.Size[1] <= 0 || s.Size[2] <= 0 {
			return nil, fmt.Errorf("box size must be positive, got %v", s.Size)
		}
		return geom.Box{Size: mgl32.Vec3(s.Size)}, nil
	case geom.KindSphere:
		if s.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %v", s.Radius)
		}
		return geom.Sphere{Radius: s.Radius}, nil
	case geom.KindCylinder, geom.KindCone:
		if s.Radius <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("%s radius and height must be positive, got %v, %v", s.Kind, s.Radius, s.Height)
		}
		if s.Kind == geom.KindCone {
			return geom.Cone{Radius: s.Radius, Height: s.Height}, nil
		}
		return geom.Cylinder{Radius: s.Radius, Height: s.Height}, nil
	}
	return nil, fmt.Errorf("unknown shape kind %q", s.Kind)
}

// Validate reports every malformed part. Parts are identified by their path of labels/indices.
func (d Def) Validate() error {
	var errs []error
	var check func(path string, p PartDef)
	check = func(path string, p PartDef) {
		if p.Shape != nil {
			if _, err := p.Shape.Shape(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
			}
		}
		if p.Color != "" {
			if _, ok := rgba.Parse(p.Color); !ok {
				errs = append(errs, fmt.Errorf("%s: invalid color %q", path, p.Color))
			}
		}
		for i, c := range p.Children {
			check(partPath(path, i, c), c)
		}
	}
	for i, p := range d.Parts {
		check(partPath("", i, p), p)
	}
	return errors.Join(errs...)
}

func partPath(parent string, i int, p PartDef) string {
	name := p.Label
	if name == "" {
		name = fmt.Sprintf("#%d", i)
	}
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// Build validates d and turns it into a part tree.
func Build(d Def) (*scene.Tree, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("model %q: %w", d.Name, err)
	}
	t := scene.New()
	for _, p := range d.Parts {
		addPart(t, scene.None, p)
	}
	return t, nil
}

func addPart(t *scene.Tree, parent scene.NodeID, p PartDef) {
	n := scene.Node{
		Label: p.Label,
		Color: defaultColor,
		Local: scene.Transform{
			Position: mgl32.Vec3(p.Position),
			Rotation: mgl32.AnglesToQuat(
				mgl32.DegToRad(p.Rotation[0]),
				mgl32.DegToRad(p.Rotation[1]),
				mgl32.DegToRad(p.Rotation[2]),
				mgl32.XYZ,
			),
			Scale: mgl32.Vec3(p.Scale),
		},
	}
	if p.Shape != nil {
		// Validated by Build.
		n.Shape, _ = p.Shape.Shape()
	}
	if c, ok := rgba.Parse(p.Color); ok {
		n.Color = c
	}
	if p.Spin != nil {
		n.Spin = &scene.Spin{Axis: mgl32.Vec3(p.Spin.Axis), Rate: p.Spin.Rate}
	}
	id := t.Add(parent, n)
	for _, c := range p.Children {
		addPart(t, id, c)
	}
}

// Decode reads a YAML definition.
func Decode(r io.Reader) (Def, error) {
	var d Def
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Def{}, err
	}
	return d, nil
}

// Encode writes d as YAML.
func Encode(w io.Writer, d Def) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

// LoadFile reads and validates a YAML definition from path.
func LoadFile(path string) (Def, error) {
	f, err := os.Open(path)
	if err != nil {
		return Def{}, err
	}
	defer f.Close()
	d, err := Decode(f)
	if err != nil {
		return Def{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return Def{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// SaveFile writes d to path as YAML.
func SaveFile(path string, d Def) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, d); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

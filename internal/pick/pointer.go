package pick

import "github.com/go-gl/mathgl/mgl32"

// Pointer tracks the last pointer position in pixels and in normalized device coordinates.
// Positions outside the viewport are kept as-is and simply map outside [-1, 1].
type Pointer struct {
	X, Y          float32
	Width, Height int
	NDC           mgl32.Vec2
	// Seen is false until the first Move; an unseen pointer hovers nothing.
	Seen bool
}

// NewPointer returns a pointer for a viewport of w x h pixels.
func NewPointer(w, h int) Pointer {
	p := Pointer{}
	p.Resize(w, h)
	return p
}

// Move records a pointer-move event at pixel (px, py), origin top-left.
func (p *Pointer) Move(px, py float32) {
	p.X, p.Y = px, py
	p.Seen = true
	p.NDC = ToNDC(px, py, p.Width, p.Height)
}

// Resize updates the viewport and re-derives NDC from the last pixel position.
func (p *Pointer) Resize(w, h int) {
	p.Width, p.Height = w, h
	p.NDC = ToNDC(p.X, p.Y, w, h)
}

// ToNDC maps a pixel to normalized device coordinates: nx = px/w*2-1, ny = -(py/h)*2+1.
// A zero or negative dimension is treated as 1 pixel.
func ToNDC(px, py float32, w, h int) mgl32.Vec2 {
	fw, fh := float32(max(w, 1)), float32(max(h, 1))
	return mgl32.Vec2{px/fw*2 - 1, -(py/fh)*2 + 1}
}

// ToPixel is the inverse of ToNDC.
func ToPixel(ndc mgl32.Vec2, w, h int) (px, py float32) {
	fw, fh := float32(max(w, 1)), float32(max(h, 1))
	return (ndc.X() + 1) / 2 * fw, (1 - ndc.Y()) / 2 * fh
}

package css

import (
	"strconv"
	"strings"

	"lathe-viewer/internal/rgba"
)

// Style holds resolved values used for drawing.
// LeftPct/TopPct: 0–100 for percentage positioning; -1 means use Left/Top as pixels.
// Padding is the offset (in pixels) from the node's left/top when drawing text.
type Style struct {
	Background rgba.Color
	Color      rgba.Color
	Border     rgba.Color
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32 // -1 = not set
	TopPct     int32 // -1 = not set
	Padding    int32 // text offset from node bounds (default 4)
	FontSize   int32
}

// DefaultFontSize is the text size when no font-size is given.
const DefaultFontSize = 20

var (
	transparent = rgba.Color{}
	white       = rgba.Color{R: 255, G: 255, B: 255, A: 255}
	black       = rgba.Color{A: 255}
)

// DefaultStyle returns a minimal style (transparent background, white text, no border, zero size).
func DefaultStyle() Style {
	return Style{
		Background: transparent,
		Color:      white,
		Border:     black,
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   DefaultFontSize,
	}
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100). Used for left/top percentage positioning.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// Resolve builds a Style from a merged property map (e.g. from Stylesheet.Match).
// Unparseable values leave the default in place.
func Resolve(props map[string]string) Style {
	out := DefaultStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if c, ok := rgba.Parse(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := rgba.Parse(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := rgba.Parse(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}

// Place returns the top-left corner of a w x h box with style s on a screenW x screenH screen.
// Percentages position the box inside the free space, so 100% puts it flush right or bottom.
func (s Style) Place(w, h, screenW, screenH int32) (x, y int32) {
	x, y = s.Left, s.Top
	if s.LeftPct >= 0 {
		x = (screenW - w) * s.LeftPct / 100
	}
	if s.TopPct >= 0 {
		y = (screenH - h) * s.TopPct / 100
	}
	return x, y
}

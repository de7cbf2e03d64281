package ui

import (
	_ "embed"
	"os"
	"strings"

	"lathe-viewer/internal/rgba"
	"lathe-viewer/internal/ui/css"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed default.css
var defaultCSS string

// DefaultStylesheet returns the built-in HUD styles.
func DefaultStylesheet() *css.Stylesheet {
	return css.MustParse(defaultCSS)
}

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached per node and only recomputed when the stylesheet changes or a node's class changes.
// If font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default (pixel) font is used.
type Engine struct {
	sheet  *css.Stylesheet
	nodes  []*Node
	styles map[*Node]cachedStyle
	font   rl.Font
}

type cachedStyle struct {
	typ, class, id string
	style          css.Style
}

// New creates a UI engine with the built-in stylesheet and no nodes.
func New() *Engine {
	return &Engine{sheet: DefaultStylesheet(), styles: make(map[*Node]cachedStyle)}
}

// LoadCSS loads and parses a CSS file from path. Its rules are applied on top of the built-in stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := css.Parse(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(DefaultStylesheet().Merge(sheet))
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded or merged CSS).
func (e *Engine) SetStylesheet(sheet *css.Stylesheet) {
	e.sheet = sheet
	clear(e.styles)
}

// Stylesheet returns the current stylesheet.
func (e *Engine) Stylesheet() *css.Stylesheet {
	return e.sheet
}

// fontRunes are the glyphs baked into a loaded font: printable ASCII plus Spanish letters and marks.
var fontRunes = func() []rune {
	var rs []rune
	for r := rune(32); r < 127; r++ {
		rs = append(rs, r)
	}
	return append(rs, []rune("áéíóúÁÉÍÓÚñÑüÜ¿¡·»")...)
}()

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFontEx(path, 48, fontRunes)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Unload frees the loaded font, if any.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
}

// Style returns the resolved style of n.
func (e *Engine) Style(n *Node) css.Style {
	if c, ok := e.styles[n]; ok && c.typ == n.Type && c.class == n.Class && c.id == n.ID {
		return c.style
	}
	s := css.Resolve(e.sheet.Match(n.Type, n.Class, n.ID))
	e.styles[n] = cachedStyle{typ: n.Type, class: n.Class, id: n.ID, style: s}
	return s
}

// MeasureText returns the width and height of text at the given size, with the engine's font.
func (e *Engine) MeasureText(text string, size int32) (w, h float32) {
	for i, line := range strings.Split(text, "\n") {
		var lw float32
		if e.font.Texture.ID != 0 {
			lw = rl.MeasureTextEx(e.font, line, float32(size), 1).X
		} else {
			lw = float32(rl.MeasureText(line, size))
		}
		w = max(w, lw)
		if i > 0 {
			h += lineGap(size)
		}
		h += float32(size)
	}
	return w, h
}

// Wrap breaks text into lines that fit width pixels at the given size.
func (e *Engine) Wrap(text string, size int32, width float32) string {
	return css.Wrap(text, width, func(line string) float32 {
		w, _ := e.MeasureText(line, size)
		return w
	})
}

// Font returns the loaded font; its texture ID is zero when raylib's default font is in use.
func (e *Engine) Font() rl.Font { return e.font }

func lineGap(size int32) float32 { return float32(size) * 0.3 }

func toRL(c rgba.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// layout sets n.Bounds from its style, text and anchor for the current screen size.
func (e *Engine) layout(n *Node, style css.Style, screenW, screenH int32) {
	w, h := float32(style.Width), float32(style.Height)
	if n.Size.X > 0 {
		w = n.Size.X
	}
	if n.Size.Y > 0 {
		h = n.Size.Y
	}
	if n.Text != "" && (w == 0 || h == 0) {
		tw, th := e.MeasureText(n.Text, style.FontSize)
		pad := float32(2 * style.Padding)
		if w == 0 {
			w = tw + pad
		}
		if h == 0 {
			h = th + pad
		}
	}
	n.Bounds.Width, n.Bounds.Height = w, h
	if n.Anchor != nil {
		n.Bounds.X, n.Bounds.Y = n.Anchor.X, n.Anchor.Y
		if n.KeepOnScreen {
			n.Bounds.X = max(min(n.Bounds.X, float32(screenW)-w), 0)
			n.Bounds.Y = max(min(n.Bounds.Y, float32(screenH)-h), 0)
		}
		return
	}
	x, y := style.Place(int32(w), int32(h), screenW, screenH)
	n.Bounds.X, n.Bounds.Y = float32(x), float32(y)
}

// Draw draws all visible nodes: for each node, resolve style (cached), update bounds, then draw background, border, and text.
func (e *Engine) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for _, n := range e.nodes {
		if n.Hidden {
			continue
		}
		style := e.Style(n)
		e.layout(n, style, screenW, screenH)
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		// Background
		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, toRL(style.Background))
		}
		// Border (1px)
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, toRL(style.Border))
		}
		if n.Text != "" {
			e.drawText(n.Text, float32(x+style.Padding), float32(y+style.Padding), style)
		}
	}
}

func (e *Engine) drawText(text string, x, y float32, style css.Style) {
	size := style.FontSize
	color := toRL(style.Color)
	for _, line := range strings.Split(text, "\n") {
		if e.font.Texture.ID != 0 {
			rl.DrawTextEx(e.font, line, rl.NewVector2(x, y), float32(size), 1, color)
		} else {
			rl.DrawText(line, int32(x), int32(y), size, color)
		}
		y += float32(size) + lineGap(size)
	}
}

// HasStylesheet returns whether any rules are loaded.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

package css

import (
	"testing"

	"lathe-viewer/internal/rgba"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hud = `
/* tooltip follows the pointer */
.tooltip { background: #000000cc; color: #fff; padding: 6px; }
.panel, #info { left: 100%; top: 10%; width: 280px; }
label { color: #ddd; font-size: 18 }
div > span { color: red; }
#info { width: 300px; }
`

func TestParse(t *testing.T) {
	sheet, err := Parse(hud)
	require.NoError(t, err)
	var sels []string
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	assert.Equal(t, []string{".tooltip", ".panel", "#info", "label", "#info"}, sels, "combinators are skipped")
	assert.Equal(t, "#000000cc", sheet.Rules[0].Props["background"])
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(".a { color: #fff;")
	assert.Error(t, err)
	_, err = Parse("color: red; }")
	assert.Error(t, err)

	sheet, err := Parse("   ")
	require.NoError(t, err)
	assert.Empty(t, sheet.Rules)

	assert.Panics(t, func() { MustParse(".a {") })
}

func TestMatchPrecedence(t *testing.T) {
	sheet := MustParse(hud)
	props := sheet.Match("label", "panel", "info")
	assert.Equal(t, "300px", props["width"], "id wins over class, later id rule wins")
	assert.Equal(t, "#ddd", props["color"])

	assert.Empty(t, sheet.Match("", "", ""))
	var nilSheet *Stylesheet
	assert.Empty(t, nilSheet.Match("label", "", ""))
}

func TestMerge(t *testing.T) {
	base := MustParse(".tooltip { color: #fff; }")
	user := MustParse(".tooltip { color: #f00; }")
	props := base.Merge(user).Match("", "tooltip", "")
	assert.Equal(t, "#f00", props["color"])
	assert.Len(t, base.Merge(nil).Rules, 1)
}

func TestResolve(t *testing.T) {
	s := Resolve(MustParse(hud).Match("label", "tooltip", ""))
	assert.Equal(t, rgba.Color{A: 0xcc}, s.Background)
	assert.Equal(t, rgba.Color{R: 255, G: 255, B: 255, A: 255}, s.Color)
	assert.Equal(t, int32(6), s.Padding)
	assert.Equal(t, int32(18), s.FontSize)
	assert.False(t, s.HasBorder)

	s = Resolve(map[string]string{"left": "120", "top": "50%", "border": "#123", "width": "wide"})
	assert.Equal(t, int32(120), s.Left)
	assert.Equal(t, int32(-1), s.LeftPct)
	assert.Equal(t, int32(50), s.TopPct)
	assert.True(t, s.HasBorder)
	assert.Zero(t, s.Width)
}

func TestParseUnits(t *testing.T) {
	n, ok := ParsePx(" 12px ")
	assert.True(t, ok)
	assert.Equal(t, int32(12), n)
	_, ok = ParsePx("1em")
	assert.False(t, ok)

	p, ok := ParsePct("100%")
	assert.True(t, ok)
	assert.Equal(t, int32(100), p)
	_, ok = ParsePct("101%")
	assert.False(t, ok)
	_, ok = ParsePct("50")
	assert.False(t, ok)
}

func TestPlace(t *testing.T) {
	s := Resolve(map[string]string{"left": "100%", "top": "20"})
	x, y := s.Place(200, 100, 800, 600)
	assert.Equal(t, int32(600), x)
	assert.Equal(t, int32(20), y)
}

func TestWrap(t *testing.T) {
	// Every character is 10px wide.
	measure := func(s string) float32 { return float32(10 * len(s)) }

	assert.Equal(t, "use gafas\nsiempre", Wrap("use gafas siempre", 100, measure))
	assert.Equal(t, "a\nmotorizado\nb", Wrap("a motorizado b", 50, measure), "long words stand alone")
	assert.Equal(t, "uno\n\ndos", Wrap("uno\n\ndos", 100, measure))
	assert.Equal(t, "sin ancho", Wrap("sin ancho", 0, measure))
}

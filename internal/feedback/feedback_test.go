package feedback

import (
	"testing"

	"lathe-viewer/internal/pick"
	"lathe-viewer/internal/rgba"
	"lathe-viewer/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(label string) pick.Hit {
	return pick.Hit{Surface: 3, Part: 2, Label: label}
}

func decoration() pick.Hit {
	return pick.Hit{Surface: 4, Part: scene.None}
}

func TestInitialStateHidden(t *testing.T) {
	p := New(Tooltip)
	assert.Equal(t, State{}, p.State())
	assert.Equal(t, "HIDDEN", p.State().String())
	assert.False(t, p.View().Shown)

	var zero Presenter
	assert.False(t, zero.View().Shown)
}

func TestTransitions(t *testing.T) {
	p := New(Tooltip)

	require.True(t, p.Present(named("Plato"), 100, 50))
	assert.Equal(t, "VISIBLE(Plato)", p.State().String())

	assert.False(t, p.Present(named("Plato"), 120, 60), "same label is not a change")
	assert.True(t, p.Present(named("Motor"), 120, 60))
	assert.Equal(t, State{Visible: true, Label: "Motor"}, p.State())

	assert.True(t, p.Present(decoration(), 0, 0), "decoration hides")
	assert.Equal(t, State{}, p.State())
	assert.False(t, p.Present(pick.NoHit(), 0, 0))
}

func TestTooltipFollowsPointer(t *testing.T) {
	p := New(Tooltip)
	p.Present(named("Husillo"), 200, 150)
	v := p.View()
	require.True(t, v.Shown)
	assert.Equal(t, "Husillo", v.Text)
	assert.Equal(t, float32(212), v.X)
	assert.Equal(t, float32(162), v.Y)

	p.Present(named("Husillo"), 10, 20)
	v = p.View()
	assert.Equal(t, float32(22), v.X)
	assert.Equal(t, float32(32), v.Y)

	p.Present(pick.NoHit(), 10, 20)
	assert.False(t, p.View().Shown)
}

func TestPanelRevealAnimates(t *testing.T) {
	p := New(Panel)
	p.Present(named("Bancada"), 0, 0)

	v := p.View()
	assert.True(t, v.Shown)
	assert.Equal(t, float32(0), v.Reveal)

	p.Advance(PanelDuration / 2)
	assert.InDelta(t, 0.5, p.View().Reveal, 1e-5)
	p.Advance(1)
	assert.Equal(t, float32(1), p.View().Reveal)

	// Collapsing keeps the last text until fully closed.
	p.Present(pick.NoHit(), 0, 0)
	p.Advance(PanelDuration / 2)
	v = p.View()
	assert.True(t, v.Shown)
	assert.Equal(t, "Bancada", v.Text)
	assert.InDelta(t, 0.5, v.Reveal, 1e-5)

	p.Advance(PanelDuration)
	v = p.View()
	assert.False(t, v.Shown)
	assert.Equal(t, float32(0), v.Reveal)

	p.Advance(-1)
	assert.Equal(t, float32(0), p.View().Reveal)
}

func TestSetModeKeepsState(t *testing.T) {
	p := New(Panel)
	p.Present(named("Motor"), 5, 5)
	p.Advance(1)

	p.SetMode(Tooltip)
	assert.Equal(t, Tooltip, p.Mode())
	assert.Equal(t, "VISIBLE(Motor)", p.State().String())
	v := p.View()
	assert.True(t, v.Shown)
	assert.Equal(t, float32(17), v.X)

	p.SetMode(Panel)
	assert.Equal(t, float32(0), p.View().Reveal, "panel reopens from closed")
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Panel ")
	require.NoError(t, err)
	assert.Equal(t, Panel, m)
	assert.Equal(t, "panel", m.String())

	m, err = ParseMode("tooltip")
	require.NoError(t, err)
	assert.Equal(t, Tooltip, m)

	_, err = ParseMode("sidebar")
	assert.Error(t, err)
}

func TestTint(t *testing.T) {
	grey := rgba.Color{R: 100, G: 100, B: 100, A: 255}
	tree := scene.New()
	group := tree.Add(scene.None, scene.Node{Label: "Motor", Color: grey})
	piece := tree.Add(group, scene.Node{Color: grey})
	other := tree.Add(scene.None, scene.Node{Label: "Placa Base", Color: grey})

	lit := grey.Lerp(HighlightColor, HighlightMix)
	assert.Equal(t, lit, Tint(tree, group, group))
	assert.Equal(t, lit, Tint(tree, piece, group), "the whole subtree is lit")
	assert.Equal(t, grey, Tint(tree, other, group))
	assert.Equal(t, grey, Tint(tree, piece, scene.None))
	assert.Equal(t, uint8(255), Tint(tree, piece, group).A)
}

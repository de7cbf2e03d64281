package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedWidth(title string) float32 { return float32(len(title)) * 10 }

func TestDefaultTabs(t *testing.T) {
	b := Default()
	require.Len(t, b.Tabs(), 4)
	assert.Equal(t, Model, b.Active().ID)
	assert.True(t, b.ShowsModel())
	assert.Nil(t, b.Content())

	for _, tab := range b.Tabs()[1:] {
		require.NotNil(t, tab.Content, tab.ID)
		assert.NotEmpty(t, tab.Content.Items, tab.ID)
	}
}

func TestSelect(t *testing.T) {
	b := Default()
	changed, err := b.Select(Safety)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, b.ShowsModel())
	assert.Equal(t, "Normas de seguridad", b.Content().Heading)

	changed, err = b.Select(Safety)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = b.Select("galería")
	assert.Error(t, err)
	assert.Equal(t, Safety, b.Active().ID, "unknown id keeps the active tab")
}

func TestParseID(t *testing.T) {
	b := Default()
	id, err := b.ParseID("Modelo 3D")
	require.NoError(t, err)
	assert.Equal(t, Model, id)

	id, err = b.ParseID("SEGURIDAD")
	require.NoError(t, err)
	assert.Equal(t, Safety, id)

	_, err = b.ParseID("x")
	assert.Error(t, err)
}

func TestLayoutAndHitTest(t *testing.T) {
	b := Default()
	_, ok := b.HitTest(5, 5)
	assert.False(t, ok, "nothing to hit before layout")
	assert.Equal(t, Rect{}, b.Bounds())
	assert.Equal(t, Rect{}, b.Strip(800))

	b.Layout(0, 0, 30, 8, fixedWidth)
	rects := b.Rects()
	require.Len(t, rects, 4)
	// "Modelo 3D" is 9 chars: 90 + 16 padding.
	assert.Equal(t, Rect{X: 0, Y: 0, W: 106, H: 30}, rects[0])
	assert.Equal(t, float32(106), rects[1].X)

	id, ok := b.HitTest(110, 10)
	require.True(t, ok)
	assert.Equal(t, Components, id)

	_, ok = b.HitTest(110, 31)
	assert.False(t, ok, "below the bar")

	bounds := b.Bounds()
	last := rects[3]
	assert.Equal(t, last.X+last.W, bounds.W)

	strip := b.Strip(800)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 800, H: 30}, strip)
	assert.True(t, strip.Contains(bounds.W+1, 29), "right of the last tab is still bar")
	assert.Equal(t, bounds.W, b.Strip(100).W, "never narrower than the tabs")

	assert.True(t, b.Click(110, 10))
	assert.Equal(t, Components, b.Active().ID)
	assert.False(t, b.Click(110, 10))
	assert.False(t, b.Click(2000, 10))

	// Relayout replaces the previous rectangles.
	b.Layout(0, 100, 30, 8, fixedWidth)
	_, ok = b.HitTest(110, 10)
	assert.False(t, ok)
}

func TestNewRejectsBadLists(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
	assert.Panics(t, func() { New([]Tab{{ID: Model}, {ID: Model}}) })
}

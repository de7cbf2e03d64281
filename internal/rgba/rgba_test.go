package rgba

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	c, ok := Parse("#8b5a2b")
	assert.True(t, ok)
	assert.Equal(t, Color{0x8b, 0x5a, 0x2b, 255}, c)

	c, ok = Parse("#fff")
	assert.True(t, ok)
	assert.Equal(t, Color{255, 255, 255, 255}, c)

	c, ok = Parse(" #00000080 ")
	assert.True(t, ok)
	assert.Equal(t, Color{0, 0, 0, 0x80}, c)

	for _, bad := range []string{"", "fff", "#ff", "#ggg", "#12345"} {
		_, ok := Parse(bad)
		assert.False(t, ok, bad)
	}
}

func TestLerp(t *testing.T) {
	a := Color{0, 100, 200, 255}
	b := Color{200, 100, 0, 10}
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, Color{200, 100, 0, 255}, a.Lerp(b, 1))
	assert.Equal(t, Color{100, 100, 100, 255}, a.Lerp(b, 0.5))
}

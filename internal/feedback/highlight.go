package feedback

import (
	"lathe-viewer/internal/rgba"
	"lathe-viewer/internal/scene"
)

// HighlightColor is the tint hovered parts are mixed toward.
var HighlightColor = rgba.Color{R: 255, G: 196, B: 64, A: 255}

// HighlightMix is how far a hovered part's color moves toward HighlightColor.
const HighlightMix = 0.45

// Tint returns the draw color of node id. Every node in the hovered part's subtree is mixed toward
// HighlightColor, so hovering a group lights up all of its pieces.
func Tint(t *scene.Tree, id, hovered scene.NodeID) rgba.Color {
	c := t.Node(id).Color
	if hovered == scene.None || !t.Within(id, hovered) {
		return c
	}
	return c.Lerp(HighlightColor, HighlightMix)
}

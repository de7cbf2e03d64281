// Package debug draws developer overlays in the top-right corner: frame rate, heap size and the
// last pick result.
package debug

import (
	"fmt"
	"runtime"

	"lathe-viewer/internal/pick"
	"lathe-viewer/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
	markerRadius   = 5
)

// Debug holds runtime debugging overlays. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowHit      bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	hitText      string
	lastHit      pick.Hit
	// marker is the hit point on screen; markerOn is false when there is none.
	markerX, markerY float32
	markerOn         bool
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetFont sets the font used to draw the overlays. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// SetHit records the latest pick seen through cam on a w x h window. The text is rebuilt only
// when the hit changes; the marker follows the hit point every frame.
func (d *Debug) SetHit(hit pick.Hit, cam pick.Camera, w, h int) {
	d.markerOn = false
	if hit.Surface != scene.None {
		d.markerX, d.markerY, d.markerOn = cam.ScreenPoint(hit.Point, w, h)
	}
	if hit == d.lastHit && d.hitText != "" {
		return
	}
	d.lastHit = hit
	d.hitText = HitText(hit)
}

// HitText formats a pick result for the overlay.
func HitText(h pick.Hit) string {
	switch {
	case h.Named():
		return fmt.Sprintf("Hit: %s @ %.2f", h.Label, h.Distance)
	case h.Surface != scene.None:
		return fmt.Sprintf("Hit: (decoración) @ %.2f", h.Distance)
	}
	return "Hit: -"
}

// Draw renders any enabled debug overlays, one line each from the top-right corner down.
// FPS and memory text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	y := int32(fpsPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawLine(d.lastFpsText, y)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawLine(d.lastMemText, y)
		y += fpsLineHeight
	}
	if d.ShowHit {
		d.drawLine(d.hitText, y)
		if d.markerOn {
			rl.DrawCircleLines(int32(d.markerX), int32(d.markerY), markerRadius, rl.Green)
		}
	}
}

// drawLine draws text right-aligned at height y.
func (d *Debug) drawLine(text string, y int32) {
	if text == "" {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fpsFontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-float32(fpsPadding), float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.Green)
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
}

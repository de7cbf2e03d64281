// Package graphics owns the raylib window: it opens it, runs the frame loop and turns raylib's
// input state into a viewer.Frame each tick.
package graphics

import (
	"lathe-viewer/internal/render"
	"lathe-viewer/internal/viewer"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Title is the window caption.
const Title = "Torno de Madera 3D"

// Window size before the user resizes it.
const (
	DefaultWidth  = 1280
	DefaultHeight = 800
	targetFPS     = 60
)

// KeyReset restores the start-up camera.
const KeyReset = rl.KeyR

// Run opens a resizable window and runs the main loop. Each frame it calls update (input, state),
// then clears the screen and calls draw (3D scene, then 2D overlay). unload runs before the window
// closes, while GPU resources can still be freed. ESC is left to the console; the window closes
// through its close button.
func Run(update, draw, unload func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(DefaultWidth, DefaultHeight, Title)
	defer rl.CloseWindow()
	defer unload()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(render.Background)
		draw()
		rl.EndDrawing()
	}
}

// Input converts raylib's per-frame input into viewer frames.
type Input struct {
	lastX, lastY float32
	started      bool
}

// Poll reads this frame's window size, pointer, buttons and wheel. captured marks frames where
// the console owns the keyboard and mouse.
func (in *Input) Poll(captured bool) viewer.Frame {
	pos := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	f := viewer.Frame{
		Width:       rl.GetScreenWidth(),
		Height:      rl.GetScreenHeight(),
		MouseX:      pos.X,
		MouseY:      pos.Y,
		LeftPressed: rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		LeftDown:    rl.IsMouseButtonDown(rl.MouseButtonLeft),
		DragDX:      delta.X,
		DragDY:      delta.Y,
		Wheel:       rl.GetMouseWheelMove(),
		Dt:          rl.GetFrameTime(),
		Captured:    captured,
	}
	// raylib reports (0,0) until the pointer first enters the window.
	if in.started {
		f.MouseMoved = pos.X != in.lastX || pos.Y != in.lastY
	} else {
		f.MouseMoved = rl.IsCursorOnScreen()
	}
	if f.MouseMoved {
		in.started = true
		in.lastX, in.lastY = pos.X, pos.Y
	}
	return f
}

// KeyPressed reports whether key went down this frame.
func KeyPressed(key int32) bool {
	return rl.IsKeyPressed(key)
}

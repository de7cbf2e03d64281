// Package terminal draws the developer console over the viewer and polls the keyboard into it.
// Editing, history and command dispatch live in the console package.
package terminal

import (
	"lathe-viewer/internal/commands"
	"lathe-viewer/internal/console"
	"lathe-viewer/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	barHeight = 40
	// windowedLift keeps the bar above the taskbar when not fullscreen.
	windowedLift = 56
	textSize     = 20
	inset        = 8
	tailLines    = 14
	rowHeight    = textSize + 4
)

var (
	barColor    = rl.NewColor(40, 40, 40, 255)
	borderColor = rl.NewColor(80, 80, 80, 255)
	tailColor   = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the console window. ESC shows and hides it; while shown the viewer gets no input.
type Terminal struct {
	con  *console.Console
	font rl.Font
}

// New returns a hidden terminal over a console logging to log and running commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{con: console.New(log, reg)}
}

// IsOpen reports whether the terminal is shown.
func (t *Terminal) IsOpen() bool { return t.con.Open() }

// SetFont sets the font used for the log and the input line. A zero texture keeps raylib's default.
func (t *Terminal) SetFont(font rl.Font) { t.font = font }

// Update reads this frame's keys into the console. Call once per frame before the viewer steps.
func (t *Terminal) Update() { t.con.Feed(pollKeys()) }

func pollKeys() console.Keys {
	k := console.Keys{
		Toggle:    rl.IsKeyPressed(rl.KeyEscape),
		Backspace: rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace),
		Enter:     rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter),
		Up:        rl.IsKeyPressed(rl.KeyUp),
		Down:      rl.IsKeyPressed(rl.KeyDown),
	}
	if rl.IsKeyPressed(rl.KeyV) && modifierDown() {
		k.Text = rl.GetClipboardText()
		drainChars()
		return k
	}
	var typed []rune
	for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
		typed = append(typed, c)
	}
	k.Text = string(typed)
	return k
}

// modifierDown covers Ctrl on Windows and Linux and Cmd on macOS.
func modifierDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
}

func drainChars() {
	for rl.GetCharPressed() != 0 {
	}
}

// Draw draws the log tail and the input bar along the bottom of the window when open.
func (t *Terminal) Draw() {
	if !t.con.Open() {
		return
	}
	w := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - barHeight
	if !rl.IsWindowFullscreen() {
		barY -= windowedLift
	}
	tailY := max(barY-tailLines*rowHeight, int32(0))
	if barY > tailY {
		rl.DrawRectangle(0, tailY, w, barY-tailY, tailColor)
	}
	for i, line := range t.con.Tail(tailLines) {
		t.text(line, tailY+int32(i*rowHeight)+inset, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, w, barHeight, barColor)
	rl.DrawRectangle(0, barY, w, 1, borderColor)
	t.text(console.Prompt+t.con.Input()+"|", barY+inset, rl.White)
}

func (t *Terminal) text(s string, y int32, c rl.Color) {
	if t.font.Texture.ID == 0 {
		rl.DrawText(s, inset, y, textSize, c)
		return
	}
	rl.DrawTextEx(t.font, s, rl.NewVector2(inset, float32(y)), textSize, 1, c)
}

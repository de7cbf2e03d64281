// Package feedback keeps the hover indicator in sync with the part under the pointer.
//
// The indicator is either a tooltip that follows the pointer or a fixed side panel that slides in
// and out. Either way there are two states: hidden, or visible with a label.
package feedback

import (
	"fmt"
	"strings"

	"lathe-viewer/internal/pick"
)

// Mode selects how the hovered label is shown.
type Mode int

const (
	Tooltip Mode = iota
	Panel
)

func (m Mode) String() string {
	if m == Panel {
		return "panel"
	}
	return "tooltip"
}

// ParseMode accepts "tooltip" or "panel" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tooltip":
		return Tooltip, nil
	case "panel":
		return Panel, nil
	}
	return Tooltip, fmt.Errorf("feedback: unknown mode %q (want tooltip or panel)", s)
}

const (
	// TooltipOffset is how far right and down of the pointer the tooltip is anchored, in pixels.
	TooltipOffset = 12
	// PanelDuration is the time the panel takes to fully open or close, in seconds.
	PanelDuration = 0.25
)

// State is HIDDEN (zero value) or VISIBLE(Label).
type State struct {
	Visible bool
	Label   string
}

func (s State) String() string {
	if !s.Visible {
		return "HIDDEN"
	}
	return "VISIBLE(" + s.Label + ")"
}

// View is what the HUD should draw this frame.
type View struct {
	Mode Mode
	// Shown is false when nothing should be drawn.
	Shown bool
	Text  string
	// X, Y anchor the tooltip (pointer plus TooltipOffset).
	X, Y float32
	// Reveal is the panel's open fraction in [0, 1].
	Reveal float32
}

// Presenter holds the feedback state machine. The zero value is a hidden tooltip.
type Presenter struct {
	mode   Mode
	state  State
	x, y   float32
	reveal float32
	// text is the last label shown; the panel keeps drawing it while it closes.
	text string
}

// New returns a hidden presenter in the given mode.
func New(mode Mode) *Presenter {
	return &Presenter{mode: mode}
}

// Mode returns the current mode.
func (p *Presenter) Mode() Mode { return p.mode }

// SetMode switches the indicator. The state is kept; the panel starts closed.
func (p *Presenter) SetMode(m Mode) {
	if m == p.mode {
		return
	}
	p.mode = m
	p.reveal = 0
}

// State returns the current state.
func (p *Presenter) State() State { return p.state }

// Present applies a hit result observed with the pointer at pixel (px, py). A named hit makes the
// state VISIBLE(label); anything else makes it HIDDEN. It reports whether the state changed.
func (p *Presenter) Present(h pick.Hit, px, py float32) bool {
	p.x, p.y = px, py
	next := State{}
	if h.Named() {
		next = State{Visible: true, Label: h.Label}
		p.text = h.Label
	}
	changed := next != p.state
	p.state = next
	return changed
}

// Advance moves the panel's reveal towards open (visible) or closed (hidden) by dt seconds.
func (p *Presenter) Advance(dt float32) {
	if dt <= 0 {
		return
	}
	step := dt / PanelDuration
	if p.state.Visible {
		p.reveal = min(1, p.reveal+step)
	} else {
		p.reveal = max(0, p.reveal-step)
	}
}

// View returns the current display snapshot.
func (p *Presenter) View() View {
	v := View{Mode: p.mode, Reveal: p.reveal}
	switch p.mode {
	case Tooltip:
		if p.state.Visible {
			v.Shown = true
			v.Text = p.state.Label
			v.X, v.Y = p.x+TooltipOffset, p.y+TooltipOffset
		}
	case Panel:
		if p.reveal > 0 || p.state.Visible {
			v.Shown = true
			v.Text = p.text
		}
	}
	return v
}

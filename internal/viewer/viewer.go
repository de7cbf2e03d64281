// Package viewer runs one interactive frame of the lathe viewer: it applies window and input
// changes to the camera and pointer, turns the lathe, resolves the hovered part and updates the
// hover feedback. It has no drawing code; graphics polls input into a Frame and render/ui draw
// from the viewer's state.
package viewer

import (
	"lathe-viewer/internal/feedback"
	"lathe-viewer/internal/pick"
	"lathe-viewer/internal/scene"
	"lathe-viewer/internal/tabs"

	"github.com/chewxy/math32"
)

// Logger is the subset of logger.Logger the viewer writes to.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}

// Frame is the input observed during one tick.
type Frame struct {
	// Width and Height are the current viewport size in pixels.
	Width, Height int
	// MouseX, MouseY is the pointer position in pixels, origin top-left. Only read when MouseMoved.
	MouseX, MouseY float32
	MouseMoved     bool
	// LeftPressed is true on the frame the left button goes down; LeftDown while it is held.
	LeftPressed bool
	LeftDown    bool
	// DragDX, DragDY is the pointer movement this frame, in pixels.
	DragDX, DragDY float32
	// Wheel is the scroll amount this frame; positive zooms in.
	Wheel float32
	// Dt is the frame time in seconds.
	Dt float32
	// Captured is true while the console owns input; camera and tab clicks are ignored.
	Captured bool
}

// Options are the user-adjustable viewer settings.
type Options struct {
	Feedback feedback.Mode
	Spin     bool
	// SpinRate is the spindle speed in radians per second.
	SpinRate float32
	// OrbitSpeed is radians of orbit per dragged pixel.
	OrbitSpeed float32
	// ZoomStep is the distance factor per wheel notch.
	ZoomStep float32
}

// DefaultOptions returns tooltip feedback with the lathe at rest.
func DefaultOptions() Options {
	return Options{
		Feedback:   feedback.Tooltip,
		SpinRate:   2,
		OrbitSpeed: 0.006,
		ZoomStep:   0.9,
	}
}

// Viewer owns the interactive state of one window.
type Viewer struct {
	tree      *scene.Tree
	bar       *tabs.Bar
	cam       pick.Camera
	pointer   pick.Pointer
	presenter *feedback.Presenter
	opts      Options
	hit       pick.Hit
	log       Logger

	width, height int
}

// New returns a viewer of tree for a w x h window. log may be nil.
func New(tree *scene.Tree, bar *tabs.Bar, w, h int, opts Options, log Logger) *Viewer {
	if log == nil {
		log = nopLogger{}
	}
	if bar == nil {
		bar = tabs.Default()
	}
	return &Viewer{
		tree:      tree,
		bar:       bar,
		cam:       pick.DefaultCamera(w, h),
		pointer:   pick.NewPointer(w, h),
		presenter: feedback.New(opts.Feedback),
		opts:      opts,
		hit:       pick.NoHit(),
		log:       log,
		width:     w,
		height:    h,
	}
}

// Step runs one frame. The order matters: the viewport is updated before anything reads the
// camera, and the pick uses this frame's camera, pointer and spin angles.
func (v *Viewer) Step(f Frame) {
	if f.Width != v.width || f.Height != v.height {
		v.resize(f.Width, f.Height)
	}

	px, py := v.pointer.X, v.pointer.Y
	if f.MouseMoved {
		px, py = f.MouseX, f.MouseY
	}
	overHUD := v.bar.Strip(float32(v.width)).Contains(px, py)

	if !f.Captured && !overHUD && v.bar.ShowsModel() {
		if f.LeftDown && !f.LeftPressed && (f.DragDX != 0 || f.DragDY != 0) {
			v.cam.Orbit(-f.DragDX*v.opts.OrbitSpeed, f.DragDY*v.opts.OrbitSpeed)
		}
		if f.Wheel != 0 {
			v.cam.Zoom(math32.Pow(v.opts.ZoomStep, f.Wheel))
		}
	}

	if f.LeftPressed && !f.Captured && v.bar.Click(px, py) {
		v.log.Infof("tab: %s", v.bar.Active().Title)
	}

	if f.MouseMoved {
		v.pointer.Move(f.MouseX, f.MouseY)
	}

	if v.opts.Spin {
		v.tree.Advance(f.Dt, v.opts.SpinRate)
	}

	v.hit = pick.NoHit()
	if v.pointer.Seen && !overHUD && v.bar.ShowsModel() {
		v.hit = pick.Resolve(v.tree, v.cam.Ray(v.pointer.NDC))
	}

	if v.presenter.Present(v.hit, v.pointer.X, v.pointer.Y) {
		v.log.Debugf("hover: %s", v.presenter.State())
	}
	v.presenter.Advance(f.Dt)
}

func (v *Viewer) resize(w, h int) {
	v.width, v.height = w, h
	v.cam.SetViewport(w, h)
	v.pointer.Resize(w, h)
	v.log.Debugf("resize: %dx%d", w, h)
}

// Tree returns the part tree being viewed.
func (v *Viewer) Tree() *scene.Tree { return v.tree }

// SetTree replaces the part tree, e.g. after switching revision. The hover is cleared.
func (v *Viewer) SetTree(t *scene.Tree) {
	v.tree = t
	v.hit = pick.NoHit()
	v.presenter.Present(v.hit, v.pointer.X, v.pointer.Y)
}

// Tabs returns the navigation bar.
func (v *Viewer) Tabs() *tabs.Bar { return v.bar }

// Camera returns the current camera.
func (v *Viewer) Camera() pick.Camera { return v.cam }

// ResetCamera restores the start-up view, keeping the current aspect ratio.
func (v *Viewer) ResetCamera() {
	v.cam = pick.DefaultCamera(v.width, v.height)
}

// Hit returns the result of the last pick.
func (v *Viewer) Hit() pick.Hit { return v.hit }

// Pointer returns the pointer state.
func (v *Viewer) Pointer() pick.Pointer { return v.pointer }

// Feedback returns what the hover indicator should show.
func (v *Viewer) Feedback() feedback.View { return v.presenter.View() }

// FeedbackState returns the hover state machine's state.
func (v *Viewer) FeedbackState() feedback.State { return v.presenter.State() }

// Options returns the current settings.
func (v *Viewer) Options() Options { return v.opts }

// SetFeedback switches between tooltip and panel feedback.
func (v *Viewer) SetFeedback(m feedback.Mode) {
	v.opts.Feedback = m
	v.presenter.SetMode(m)
}

// SetSpin turns the lathe on or off. A rate <= 0 keeps the current one.
func (v *Viewer) SetSpin(on bool, rate float32) {
	v.opts.Spin = on
	if rate > 0 {
		v.opts.SpinRate = rate
	}
}

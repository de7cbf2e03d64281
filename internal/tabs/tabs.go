// Package tabs implements the navigation bar above the viewer: one tab shows the 3D model, the
// others show reference text about the lathe. Only the active tab is tracked.
package tabs

import (
	"fmt"
	"strings"
)

// ID identifies a tab.
type ID string

const (
	Model      ID = "modelo"
	Components ID = "componentes"
	Operation  ID = "funcionamiento"
	Safety     ID = "seguridad"
)

// Section is the text shown under a content tab.
type Section struct {
	Heading string
	Items   []string
}

// Tab is one entry of the bar. Content is nil for the 3D model tab.
type Tab struct {
	ID      ID
	Title   string
	Content *Section
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether pixel (px, py) lies inside r.
func (r Rect) Contains(px, py float32) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Bar is the ordered tab list with one active tab.
type Bar struct {
	tabs   []Tab
	active int
	rects  []Rect
}

// New returns a bar over tabs with the first one active. It panics on an empty or duplicate list.
func New(tabs []Tab) *Bar {
	if len(tabs) == 0 {
		panic("tabs: empty tab list")
	}
	seen := map[ID]bool{}
	for _, t := range tabs {
		if seen[t.ID] {
			panic(fmt.Sprintf("tabs: duplicate id %q", t.ID))
		}
		seen[t.ID] = true
	}
	return &Bar{tabs: tabs}
}

// Default returns the lathe page tabs.
func Default() *Bar {
	return New(lathePages())
}

// Tabs returns the tabs in display order.
func (b *Bar) Tabs() []Tab { return b.tabs }

// Active returns the active tab.
func (b *Bar) Active() Tab { return b.tabs[b.active] }

// ShowsModel reports whether the 3D view is the active page.
func (b *Bar) ShowsModel() bool { return b.tabs[b.active].Content == nil }

// Content returns the active section, or nil on the model tab.
func (b *Bar) Content() *Section { return b.tabs[b.active].Content }

// Select activates the tab with the given id. It reports whether the active tab changed and
// returns an error for unknown ids.
func (b *Bar) Select(id ID) (bool, error) {
	for i, t := range b.tabs {
		if t.ID == id {
			changed := i != b.active
			b.active = i
			return changed, nil
		}
	}
	return false, fmt.Errorf("tabs: unknown tab %q", id)
}

// ParseID matches s against tab ids and titles, ignoring case.
func (b *Bar) ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	for _, t := range b.tabs {
		if strings.EqualFold(string(t.ID), s) || strings.EqualFold(t.Title, s) {
			return t.ID, nil
		}
	}
	return "", fmt.Errorf("tabs: unknown tab %q", s)
}

// Layout places the tabs left to right starting at (x, y), each as wide as its measured title
// plus padding on both sides.
func (b *Bar) Layout(x, y, height, padding float32, measure func(title string) float32) {
	b.rects = b.rects[:0]
	for _, t := range b.tabs {
		w := measure(t.Title) + 2*padding
		b.rects = append(b.rects, Rect{X: x, Y: y, W: w, H: height})
		x += w
	}
}

// Rects returns the rectangles from the last Layout, parallel to Tabs.
func (b *Bar) Rects() []Rect { return b.rects }

// Bounds returns the rectangle covering every tab, zero before Layout.
func (b *Bar) Bounds() Rect {
	if len(b.rects) == 0 {
		return Rect{}
	}
	first, last := b.rects[0], b.rects[len(b.rects)-1]
	return Rect{X: first.X, Y: first.Y, W: last.X + last.W - first.X, H: first.H}
}

// Strip returns the full-width band the bar is drawn in on a screen width pixels wide: from the
// left edge to the right edge at the tabs' height. It is zero before Layout.
func (b *Bar) Strip(width float32) Rect {
	bounds := b.Bounds()
	if bounds.H == 0 {
		return Rect{}
	}
	return Rect{X: 0, Y: bounds.Y, W: max(width, bounds.X+bounds.W), H: bounds.H}
}

// HitTest returns the tab under pixel (px, py).
func (b *Bar) HitTest(px, py float32) (ID, bool) {
	for i, r := range b.rects {
		if r.Contains(px, py) {
			return b.tabs[i].ID, true
		}
	}
	return "", false
}

// Click selects the tab under (px, py), if any, and reports whether the active tab changed.
func (b *Bar) Click(px, py float32) bool {
	id, ok := b.HitTest(px, py)
	if !ok {
		return false
	}
	changed, _ := b.Select(id)
	return changed
}

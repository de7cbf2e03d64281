package ui

import (
	"strings"

	"lathe-viewer/internal/feedback"
	"lathe-viewer/internal/tabs"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsHint is the help line drawn in the bottom-left corner over the model.
const ControlsHint = "Arrastrar: girar la vista   Rueda: acercar   R: vista inicial   Esc: consola"

// contentMargin is the gap between the content page and the screen edges.
const contentMargin = 24

// HUD builds the 2D overlay each frame: the tab bar, the hover tooltip or info panel, the text of
// content tabs, the controls hint and the missing-assets banner.
type HUD struct {
	engine  *Engine
	bar     *Node
	tabs    []*Node
	tab     *Node // styles the tab bar metrics, never drawn
	tooltip *Node
	panel   *InfoPanel
	content *Node
	heading *Node
	body    *Node
	hint    *Node
	banner  *Node
	// bodyFor caches the wrapped text of the last content page and width.
	bodyFor struct {
		section *tabs.Section
		width   float32
	}
}

// NewHUD returns a HUD drawn with e. banner is shown at the bottom when non-empty.
func NewHUD(e *Engine, banner string) *HUD {
	h := &HUD{
		engine:  e,
		bar:     NewNode("panel", "tabbar", "", ""),
		tab:     NewNode("label", "tab", "", ""),
		tooltip: NewNode("label", "tooltip", "", ""),
		panel:   NewInfoPanel(),
		content: NewNode("panel", "content", "", ""),
		heading: NewNode("label", "content-heading", "", ""),
		body:    NewNode("label", "content-body", "", ""),
		hint:    NewNode("label", "hint", "", ControlsHint),
		banner:  NewNode("label", "banner", "", banner),
	}
	h.tooltip.KeepOnScreen = true
	h.banner.Hidden = banner == ""
	return h
}

// LayoutTabs measures the tab titles and places the bar along the top edge so that the next
// frame's clicks and hover blocking use the current font. Call before viewer.Step.
func (h *HUD) LayoutTabs(bar *tabs.Bar) {
	style := h.engine.Style(h.tab)
	pad := float32(style.Padding)
	_, th := h.engine.MeasureText("Mg", style.FontSize)
	bar.Layout(0, 0, th+2*pad, pad, func(title string) float32 {
		w, _ := h.engine.MeasureText(title, style.FontSize)
		return w
	})

	for len(h.tabs) < len(bar.Tabs()) {
		h.tabs = append(h.tabs, NewNode("label", "tab", "", ""))
	}
	h.tabs = h.tabs[:len(bar.Tabs())]
	active := bar.Active().ID
	for i, t := range bar.Tabs() {
		n, r := h.tabs[i], bar.Rects()[i]
		n.Text = t.Title
		n.Class = "tab"
		if t.ID == active {
			n.Class = "tab-active"
		}
		n.MoveTo(r.X, r.Y)
		n.Resize(r.W, r.H)
	}
}

// Draw lays out and draws the overlay for this frame. info describes the hovered part, when any.
func (h *HUD) Draw(bar *tabs.Bar, view feedback.View, info PartInfo) {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	strip := bar.Strip(screenW)
	h.bar.MoveTo(strip.X, strip.Y)
	h.bar.Resize(strip.W, strip.H)

	nodes := []*Node{h.bar}
	nodes = append(nodes, h.tabs...)

	if section := bar.Content(); section != nil {
		nodes = h.appendContent(nodes, section, strip.Y+strip.H, screenW, screenH)
	} else {
		h.tooltip.Hidden = view.Mode != feedback.Tooltip || !view.Shown
		h.tooltip.Text = view.Text
		h.tooltip.MoveTo(view.X, view.Y)
		nodes = append(nodes, h.hint)
		nodes = h.panel.AppendNodes(nodes, h.engine, view, info, screenW)
		nodes = append(nodes, h.tooltip)
	}
	nodes = append(nodes, h.banner)

	h.engine.SetNodes(nodes)
	h.engine.Draw()
}

// appendContent lays the page of a content tab over the model area below the tab bar.
func (h *HUD) appendContent(dst []*Node, section *tabs.Section, top, screenW, screenH float32) []*Node {
	box := h.engine.Style(h.content)
	pad := float32(box.Padding)
	x, y := float32(contentMargin), top+contentMargin
	w, ht := screenW-2*contentMargin, screenH-top-2*contentMargin
	h.content.MoveTo(x, y)
	h.content.Resize(w, ht)

	inner := w - 2*pad
	if h.bodyFor.section != section || h.bodyFor.width != inner {
		items := make([]string, len(section.Items))
		for i, it := range section.Items {
			items[i] = "· " + it
		}
		h.heading.Text = section.Heading
		h.body.Text = h.engine.Wrap(strings.Join(items, "\n\n"), h.engine.Style(h.body).FontSize, inner)
		h.bodyFor.section, h.bodyFor.width = section, inner
	}
	h.heading.MoveTo(x+pad, y+pad)
	_, hh := h.engine.MeasureText(h.heading.Text, h.engine.Style(h.heading).FontSize)
	h.body.MoveTo(x+pad, y+pad+hh+pad)
	return append(dst, h.content, h.heading, h.body)
}

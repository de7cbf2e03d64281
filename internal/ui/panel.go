package ui

import (
	"strings"

	"lathe-viewer/internal/feedback"
)

// panelTop is the panel's distance from the top of the screen, below the tab bar.
const panelTop = 64

// PartInfo is what the info panel shows about the hovered part. Path lists the labeled
// assemblies from the outermost down to the part itself.
type PartInfo struct {
	Label string
	Path  []string
}

// InfoPanel is the right-side panel of the panel feedback mode. It slides in from the right edge
// as the presenter's reveal goes from 0 to 1 and keeps its text while sliding out.
type InfoPanel struct {
	box   *Node
	title *Node
	name  *Node
	path  *Node
}

// NewInfoPanel creates the panel nodes, styled by .panel, .panel-title, .panel-name and .panel-path.
func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		box:   NewNode("panel", "panel", "info", ""),
		title: NewNode("label", "panel-title", "", "Componente"),
		name:  NewNode("label", "panel-name", "", ""),
		path:  NewNode("label", "panel-path", "", ""),
	}
}

// AppendNodes appends the panel to dst when view is a panel with something to show, laid out for
// a screenW wide screen. The part name is taken from view; info adds the assembly path.
func (p *InfoPanel) AppendNodes(dst []*Node, e *Engine, view feedback.View, info PartInfo, screenW float32) []*Node {
	if view.Mode != feedback.Panel || !view.Shown || view.Reveal <= 0 {
		return dst
	}
	box := e.Style(p.box)
	width := float32(box.Width)
	inner := width - 2*float32(box.Padding)

	p.name.Text = e.Wrap(view.Text, e.Style(p.name).FontSize, inner)
	p.path.Text = ""
	if len(info.Path) > 1 && info.Label == view.Text {
		p.path.Text = e.Wrap(strings.Join(info.Path, " » "), e.Style(p.path).FontSize, inner)
	}

	x := screenW - width*view.Reveal
	y := float32(panelTop + box.Padding)
	labels := []*Node{p.title, p.name}
	if p.path.Text != "" {
		labels = append(labels, p.path)
	}
	for _, n := range labels {
		n.MoveTo(x+float32(box.Padding), y)
		_, h := e.MeasureText(n.Text, e.Style(n).FontSize)
		y += h + float32(box.Padding)/2
	}
	p.box.MoveTo(x, panelTop)
	p.box.Resize(width, y-panelTop+float32(box.Padding)/2)
	return append(append(dst, p.box), labels...)
}

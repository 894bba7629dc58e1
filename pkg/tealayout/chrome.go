package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ToolbarLayer renders content across the toolbar region.
func ToolbarLayer(content string, r Region, style lipgloss.Style) *lipgloss.Layer {
	return RegionLayer(r, style.Width(int(r.Rect.Width())).Render(content), "toolbar", 0)
}

// FooterLayer renders content across the footer region.
func FooterLayer(content string, r Region, style lipgloss.Style) *lipgloss.Layer {
	return RegionLayer(r, style.Width(int(r.Rect.Width())).Render(content), "footer", 0)
}

// VerticalSeparator draws a column of │ down the region's left edge.
func VerticalSeparator(r Region, style lipgloss.Style) *lipgloss.Layer {
	lines := make([]string, r.Rect.Height())
	for i := range lines {
		lines[i] = "│"
	}
	return RegionLayer(r, style.Render(strings.Join(lines, "\n")), "separator", 0)
}

// ModalLayer renders content inside boxStyle and centres it on the
// terminal above every other layer.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := max((termW-lipgloss.Width(rendered))/2, 0)
	cy := max((termH-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}

// RegionLayer places pre-rendered content at a region's position.
func RegionLayer(r Region, content string, id string, z int) *lipgloss.Layer {
	return lipgloss.NewLayer(content).
		X(int(r.Rect.Position.X)).
		Y(int(r.Rect.Position.Y)).
		Z(z).
		ID(id)
}

// FillLayer creates a Layer covering the region with blank cells in style.
// Useful as a background for a layout region.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	if r.Rect.IsEmpty() {
		return RegionLayer(r, "", id, z)
	}
	line := strings.Repeat(" ", int(r.Rect.Width()))
	lines := make([]string, r.Rect.Height())
	for i := range lines {
		lines[i] = line
	}
	return RegionLayer(r, style.Render(strings.Join(lines, "\n")), id, z)
}

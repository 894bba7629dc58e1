package viewer

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/gridshape/pkg/tealayout"
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#0a1510")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)
)

// toolNames maps Tool to display name.
var toolNames = map[Tool]string{
	ToolSelect:  "SELECT",
	ToolDraw:    "DRAW",
	ToolConnect: "CONNECT",
}

// toolLabel describes the active tool for the toolbar.
func (m Model) toolLabel() string {
	switch {
	case m.ConnectFromID != nil:
		return fmt.Sprintf("CONNECT from #%d → click target", *m.ConnectFromID)
	case m.CurrentTool == ToolDraw:
		return fmt.Sprintf("DRAW [%s]", m.DrawKind)
	}
	return toolNames[m.CurrentTool]
}

// scriptStatus summarizes the interpreter state for the footer.
func (m Model) scriptStatus() string {
	in := m.Interp
	switch {
	case in.Err != "":
		return "error"
	case in.WaitInput:
		return "input"
	case in.Done:
		return "done"
	case m.AutoRunning:
		return fmt.Sprintf("auto line %d", in.Line)
	case in.StepCount > 0:
		return fmt.Sprintf("line %d", in.Line)
	}
	return "ready"
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()
	canvas := layout.Get("canvas")
	panel := layout.Get("panel")

	var layers []*lipgloss.Layer

	// Backgrounds
	layers = append(layers,
		tealayout.FillLayer(layout.Get("toolbar"), tbStyle, "toolbar-bg", 0),
		tealayout.FillLayer(layout.Get("footer"), ftStyle, "footer-bg", 0),
		tealayout.FillLayer(panel, bgStyle, "panel-bg", 0),
	)

	tbContent := fmt.Sprintf(
		" %s  │  %s  │  corridor: %s  │  [:]command  │  [q]uit",
		m.name, m.toolLabel(), m.Order,
	)
	layers = append(layers, tealayout.ToolbarLayer(tbContent, layout.Get("toolbar"), tbStyle))

	selStr := "none"
	if m.SelectedID != nil {
		if it := m.Scene().Item(*m.SelectedID); it != nil {
			selStr = it.String()
		}
	}
	ftContent := fmt.Sprintf(
		" Mouse: %v  Cam: %v  Sel: %s  Items: %d  Script: %s",
		m.Mouse, m.Cam, selStr, m.Scene().Len(), m.scriptStatus(),
	)
	layers = append(layers, tealayout.FooterLayer(ftContent, layout.Get("footer"), ftStyle))

	layers = append(layers, buildCanvasLayer(m, canvas))

	if pr := panel.Rect; !pr.IsEmpty() {
		layers = append(layers, tealayout.VerticalSeparator(layout.Get("separator"), panelSepStyle))
		layers = append(layers, buildPanelLayers(m,
			int(pr.Left())+1, int(pr.Bottom()), int(pr.Width())-2, int(pr.Height()))...)
	}

	if m.PromptOpen {
		layers = append(layers, buildPromptLayer(m))
	}

	comp := lipgloss.NewCompositor(layers...)
	screen := lipgloss.NewCanvas(m.Width, m.Height)
	screen.Compose(comp)

	v := tea.NewView(screen.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

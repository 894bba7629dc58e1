package viewer

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
)

var panelBG = c("#1a2a20")

// Panel styles share one background.
var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#00d4a0")).
			Background(panelBG)

	panelErrStyle = lipgloss.NewStyle().
			Foreground(c("#ff6644")).
			Background(panelBG).
			Bold(true)

	panelVarNameStyle = lipgloss.NewStyle().
				Foreground(c("#ddaa44")).
				Background(panelBG)

	panelVarValStyle = lipgloss.NewStyle().
				Foreground(c("#00ffc8")).
				Background(panelBG)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(panelBG)

	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads a styled line with background to the given width.
func padLine(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// panelSection renders a titled block of exactly height lines.
func panelSection(title string, body []string, x, y, width, height int, id string) *lipgloss.Layer {
	lines := []string{
		panelTitleStyle.Render(title),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
	}
	lines = append(lines, body...)
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(x).Y(y).Z(1).ID(id)
}

// varsLines lists script variables sorted by name.
func varsLines(vars map[string]any) []string {
	if len(vars) == 0 {
		return []string{panelDimStyle.Render("  (none)")}
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, panelVarNameStyle.Render("  "+k)+
			panelDimStyle.Render(" = ")+
			panelVarValStyle.Render(fmt.Sprintf("%v", vars[k])))
	}
	return lines
}

// consoleLines shows the tail of the script output that fits in rows,
// followed by the error if the script failed.
func consoleLines(output []string, errMsg string, rows int) []string {
	var lines []string
	for _, l := range output {
		lines = append(lines, panelTextStyle.Render("  "+l))
	}
	if errMsg != "" {
		lines = append(lines, panelErrStyle.Render("  "+errMsg))
	}
	if len(lines) == 0 {
		return []string{panelDimStyle.Render("  (empty)")}
	}
	if rows > 0 && len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	return lines
}

func helpLines() []string {
	help := []string{
		"  click=select drag=move",
		"  [s]elect [c]onnect [o]rder",
		"  [1]line [2]rect [3]border",
		"  [4]disc [5]ring  [d]elete",
		"  [r]un [n]step [g]auto [x]reset",
		"  [:]command [f]rame  ←↑↓→ pan",
	}
	for i, h := range help {
		help[i] = panelTextStyle.Render(h)
	}
	return help
}

// buildPanelLayers lays out the variables, console and help sections.
func buildPanelLayers(m Model, x, y, width, height int) []*lipgloss.Layer {
	const varsH, helpH = 7, 8
	consoleH := max(height-varsH-helpH, 3)

	return []*lipgloss.Layer{
		panelSection("VARIABLES", varsLines(m.Interp.Vars), x, y, width, varsH, "panel-vars"),
		panelSection("CONSOLE", consoleLines(m.Interp.Output, m.Interp.Err, consoleH-2),
			x, y+varsH, width, consoleH, "panel-console"),
		panelSection("HELP", helpLines(), x, y+varsH+consoleH, width, helpH, "panel-help"),
	}
}

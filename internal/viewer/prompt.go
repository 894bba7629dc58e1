package viewer

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/gridshape/pkg/tealayout"
)

// openPrompt opens the command prompt. While the script waits for input
// the prompt answers it; otherwise the line is evaluated against the
// current scene.
func (m Model) openPrompt() (tea.Model, tea.Cmd) {
	m.PromptOpen = true
	m.Prompt = textinput.New()
	m.Prompt.Prompt = "› "
	m.Prompt.CharLimit = 120
	m.Prompt.Placeholder = `border(0, 0, 8, 4, "room")`
	if m.Interp.WaitInput {
		m.Prompt.Placeholder = ""
	}
	return m, m.Prompt.Focus()
}

// handlePromptKeys processes keys while the prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.PromptOpen = false
		return m, nil

	case "enter":
		m.PromptOpen = false
		line := strings.TrimSpace(m.Prompt.Value())
		if m.Interp.WaitInput {
			m.Interp.Step(&line)
			return m.afterStep()
		}
		if line != "" {
			m.runCommand(line)
		}
		return m.afterStep()

	default:
		var cmd tea.Cmd
		m.Prompt, cmd = m.Prompt.Update(msg)
		return m, cmd
	}
}

// runCommand evaluates line and echoes it with its result to the console.
func (m Model) runCommand(line string) {
	out := append(m.Interp.Output, "» "+line)
	res, err := m.Interp.Eval(line)
	switch {
	case err != nil:
		out = append(out, err.Error())
	case res != "":
		out = append(out, res)
	}
	m.Interp.Output = out
}

// buildPromptLayer renders the prompt as a centered modal layer.
func buildPromptLayer(m Model) *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().
		Foreground(c("#00ffc8")).
		Background(c("#0a1510")).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(c("#336655")).
		Background(c("#0a1510")).
		Italic(true)

	title := "COMMAND"
	if m.Interp.WaitInput {
		title = "INPUT: " + m.Interp.InputPrompt
	}

	content := strings.Join([]string{
		titleStyle.Render(title),
		"",
		m.Prompt.View(),
		"",
		hintStyle.Render("[enter] run  [esc] cancel"),
	}, "\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(c("#00d4a0")).
		Background(c("#0a1510")).
		Width(56).
		Padding(1, 2)

	return tealayout.ModalLayer(content, m.Width, m.Height, boxStyle)
}

package viewer

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/gridshape/pkg/grid"
	"github.com/wesen/gridshape/pkg/gridgeom"
	"github.com/wesen/gridshape/pkg/scene"
	"github.com/wesen/gridshape/pkg/tealayout"
)

const (
	panStep    = 3
	panelWidth = 34
)

// drawKindKeys selects the draw tool's shape kind.
var drawKindKeys = map[string]scene.Kind{
	"1": scene.KindLine,
	"2": scene.KindRect,
	"3": scene.KindBorder,
	"4": scene.KindDisc,
	"5": scene.KindRing,
}

type autoTickMsg struct{}

func (m Model) autoTick() tea.Cmd {
	return tea.Tick(m.AutoSpeed, func(time.Time) tea.Msg { return autoTickMsg{} })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case autoTickMsg:
		if !m.AutoRunning {
			return m, nil
		}
		return m.step()

	case tea.KeyMsg:
		if m.PromptOpen {
			return m.handlePromptKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return handleMouse(m, msg, m.layout().Get("canvas"))
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Camera panning
	case "up":
		m.Cam.Y -= panStep
	case "down":
		m.Cam.Y += panStep
	case "left":
		m.Cam.X -= panStep
	case "right":
		m.Cam.X += panStep
	case "f":
		m = m.frameScene()

	// Tool selection
	case "s":
		m.CurrentTool = ToolSelect
		m.ConnectFromID = nil
	case "c":
		m.CurrentTool = ToolConnect
		m.ConnectFromID = nil
	case "1", "2", "3", "4", "5":
		m.DrawKind = drawKindKeys[key]
		m.CurrentTool = ToolDraw
		m.ConnectFromID = nil
	case "o":
		m.Order = m.Order.Toggle()

	// Delete selected
	case "d", "delete", "backspace":
		if m.SelectedID != nil {
			if err := m.Scene().Remove(*m.SelectedID); err != nil {
				grid.Logger().Warn("viewer: remove", "id", *m.SelectedID, "error", err)
			}
			m.SelectedID = nil
		}

	// Interpreter
	case "n":
		m.AutoRunning = false
		return m.step()
	case "r":
		m.AutoRunning = false
		if err := m.Interp.Run(); err != nil {
			grid.Logger().Warn("viewer: run", "error", err)
		}
		return m.afterStep()
	case "g":
		m.AutoRunning = !m.AutoRunning
		if m.AutoRunning {
			return m, m.autoTick()
		}
	case "x":
		m.AutoRunning = false
		m.Interp.Reset()
		m = m.clearSelection()
	case ":":
		return m.openPrompt()

	// Escape: cancel current operation
	case "esc", "escape":
		m = m.clearSelection()
		m.CurrentTool = ToolSelect
	}

	return m, nil
}

// step advances the interpreter one line and schedules the next tick
// while auto-running.
func (m Model) step() (tea.Model, tea.Cmd) {
	if m.Interp.WaitInput {
		m.AutoRunning = false
		return m.openPrompt()
	}
	m.Interp.Step(nil)
	return m.afterStep()
}

func (m Model) afterStep() (tea.Model, tea.Cmd) {
	if m.SelectedID != nil && m.Scene().Item(*m.SelectedID) == nil {
		m.SelectedID = nil
	}
	switch {
	case m.Interp.WaitInput:
		m.AutoRunning = false
		return m.openPrompt()
	case m.Interp.Done || m.Interp.Err != "":
		m.AutoRunning = false
	case m.AutoRunning:
		return m, m.autoTick()
	}
	return m, nil
}

func (m Model) clearSelection() Model {
	m.SelectedID = nil
	m.ConnectFromID = nil
	m.Dragging = false
	m.DragID = -1
	m.Drawing = false
	return m
}

// frameScene moves the camera so the scene's bounds sit in the middle of
// the canvas.
func (m Model) frameScene() Model {
	b, ok := m.Scene().Bounds()
	if !ok {
		m.Cam = gridgeom.Coord{}
		return m
	}
	canvas := m.layout().Get("canvas").Rect
	half := gridgeom.C(int32(canvas.Width()/2), int32(canvas.Height()/2))
	m.Cam = b.Center().Sub(half)
	return m
}

// layout computes the screen regions. View and the mouse handler share
// it so coordinate transforms match what is drawn.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", panelWidth).
		RightFixed("separator", 1).
		Remaining("canvas").
		Build()
}

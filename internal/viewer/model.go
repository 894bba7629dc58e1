// Package viewer is a Bubble Tea program for drawing shapes on a grid
// and stepping through shape scripts.
package viewer

import (
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/gridshape/internal/shapescript"
	"github.com/wesen/gridshape/pkg/gridgeom"
	"github.com/wesen/gridshape/pkg/scene"
)

// Tool is the current interaction mode.
type Tool int

const (
	ToolSelect Tool = iota
	ToolDraw
	ToolConnect
)

// Options configures a new Model.
type Options struct {
	Name      string        // shown in the toolbar
	Script    string        // shape script source; empty starts a blank scene
	Run       bool          // run the script to completion before the first frame
	AutoSpeed time.Duration // delay between auto-run steps
}

// Model is the main application state.
type Model struct {
	Width, Height int
	Mouse         gridgeom.Coord // terminal cell under the pointer
	Cam           gridgeom.Coord // world cell shown at the canvas origin
	Interp        *shapescript.Interpreter
	SelectedID    *int
	CurrentTool   Tool
	DrawKind      scene.Kind           // kind created by the draw tool
	Order         gridgeom.TunnelOrder // order for new corridors

	// Drag state
	Dragging bool
	DragID   int
	DragLast gridgeom.Coord

	// Rubber-band state for the draw tool
	Drawing   bool
	DrawStart gridgeom.Coord
	DrawEnd   gridgeom.Coord

	// Connect state
	ConnectFromID *int

	AutoRunning bool
	AutoSpeed   time.Duration

	// Command prompt
	PromptOpen bool
	Prompt     textinput.Model

	name string
}

// NewModel creates the initial model.
func NewModel(opts Options) Model {
	m := Model{
		Interp:    shapescript.New(opts.Script),
		DrawKind:  scene.KindBorder,
		Order:     gridgeom.HorizontalFirst,
		DragID:    -1,
		AutoSpeed: opts.AutoSpeed,
		name:      opts.Name,
	}
	if m.AutoSpeed <= 0 {
		m.AutoSpeed = 200 * time.Millisecond
	}
	if m.name == "" {
		m.name = "gridshape"
	}
	if opts.Run {
		// Failures are reported in the console panel.
		_ = m.Interp.Run()
	}
	return m
}

// Scene returns the scene the interpreter builds and the tools edit.
func (m Model) Scene() *scene.Scene {
	return m.Interp.Scene
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

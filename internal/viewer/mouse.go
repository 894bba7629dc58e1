package viewer

import (
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/gridshape/pkg/grid"
	"github.com/wesen/gridshape/pkg/gridgeom"
	"github.com/wesen/gridshape/pkg/scene"
	"github.com/wesen/gridshape/pkg/tealayout"
)

// handleMouse processes mouse events and returns updated model + command.
func handleMouse(m Model, msg tea.MouseMsg, canvas tealayout.Region) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.Mouse = gridgeom.C(int32(mouse.X), int32(mouse.Y))

	// A release ends a gesture wherever it happens.
	if _, ok := msg.(tea.MouseReleaseMsg); ok {
		return finishGesture(m), nil
	}
	if !canvas.Contains(m.Mouse) {
		return m, nil
	}

	world := canvas.Local(m.Mouse).Add(m.Cam)

	switch msg.(type) {
	case tea.MouseMotionMsg:
		if m.Dragging && m.DragID >= 0 {
			if d := world.Sub(m.DragLast); d != (gridgeom.Coord{}) {
				if err := m.Scene().Move(m.DragID, d); err == nil {
					m.DragLast = world
				}
			}
		}
		if m.Drawing {
			m.DrawEnd = world
		}

	case tea.MouseClickMsg:
		if mouse.Button == tea.MouseLeft {
			m = handleLeftClick(m, world)
		}
	}

	return m, nil
}

// handleLeftClick dispatches based on the current tool.
func handleLeftClick(m Model, world gridgeom.Coord) Model {
	hitID := -1
	if hit := m.Scene().HitTest(world); hit != nil {
		hitID = hit.ID
	}

	switch m.CurrentTool {
	case ToolSelect:
		if hitID >= 0 {
			m.SelectedID = &hitID
			m.Scene().Raise(hitID)
			m.Dragging = true
			m.DragID = hitID
			m.DragLast = world
		} else {
			m.SelectedID = nil
		}

	case ToolDraw:
		m.Drawing = true
		m.DrawStart = world
		m.DrawEnd = world

	case ToolConnect:
		if m.ConnectFromID == nil {
			if hitID >= 0 {
				m.ConnectFromID = &hitID
			}
			return m
		}
		if hitID >= 0 && hitID != *m.ConnectFromID {
			if err := m.Scene().Connect(*m.ConnectFromID, hitID, m.Order); err != nil {
				grid.Logger().Warn("viewer: connect", "error", err)
			}
		}
		m.ConnectFromID = nil
		m.CurrentTool = ToolSelect
	}

	return m
}

// finishGesture ends a drag or commits the shape being drawn.
func finishGesture(m Model) Model {
	if m.Dragging {
		m.Dragging = false
		m.DragID = -1
	}
	if m.Drawing {
		m.Drawing = false
		id, err := m.Scene().Add(draftItem(m.DrawKind, m.DrawStart, m.DrawEnd))
		if err != nil {
			grid.Logger().Warn("viewer: add", "error", err)
			return m
		}
		m.SelectedID = &id
		m.CurrentTool = ToolSelect
	}
	return m
}

// draftItem builds the item a drag from a to b describes: a line from a
// to b, a rectangle spanning both corners, or a circle centred on a that
// reaches b.
func draftItem(kind scene.Kind, a, b gridgeom.Coord) scene.Item {
	switch kind {
	case scene.KindLine:
		return scene.NewLine(gridgeom.NewLine(a, b), "")
	case scene.KindRect:
		return scene.NewRect(gridgeom.RectangleFromCorners(a, b), "")
	case scene.KindDisc:
		return scene.NewDisc(gridgeom.NewCircle(a, chebyshev(a, b)), "")
	case scene.KindRing:
		return scene.NewRing(gridgeom.NewCircle(a, chebyshev(a, b)), "")
	}
	return scene.NewBorder(gridgeom.RectangleFromCorners(a, b), "")
}

// chebyshev returns max(|dx|, |dy|).
func chebyshev(a, b gridgeom.Coord) uint32 {
	dx := int64(b.X) - int64(a.X)
	dy := int64(b.Y) - int64(a.Y)
	return uint32(max(dx, -dx, dy, -dy))
}

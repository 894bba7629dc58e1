package viewer

import (
	"charm.land/lipgloss/v2"

	"github.com/wesen/gridshape/pkg/cellbuf"
	"github.com/wesen/gridshape/pkg/drawutil"
	"github.com/wesen/gridshape/pkg/gridgeom"
	"github.com/wesen/gridshape/pkg/scene"
	"github.com/wesen/gridshape/pkg/tealayout"
)

// itemStyle picks the canvas style for an item.
func (m Model) itemStyle(it *scene.Item) cellbuf.StyleKey {
	if m.SelectedID != nil && it.ID == *m.SelectedID {
		return styleSelected
	}
	if m.ConnectFromID != nil && it.ID == *m.ConnectFromID {
		return stylePreview
	}
	return kindStyle(it.Kind)
}

// drawCanvas renders the grid, the scene and any in-progress gesture into
// a buffer the size of the canvas region.
func (m Model) drawCanvas(canvas tealayout.Region) *cellbuf.Buffer {
	buf := cellbuf.New(int(canvas.Rect.Width()), int(canvas.Rect.Height()), styleBG)
	drawutil.DrawGrid(buf, m.Cam, gridgeom.Sz(5, 3), styleGrid)
	drawutil.DrawScene(buf, m.Scene(), m.Cam, drawutil.SceneStyle{
		Item:     m.itemStyle,
		Corridor: styleCorridor,
		Label:    styleLabel,
	})

	shift := gridgeom.Coord{}.Sub(m.Cam)

	// Corridor preview from the source item to the pointer.
	if m.ConnectFromID != nil && canvas.Contains(m.Mouse) {
		if from := m.Scene().Item(*m.ConnectFromID); from != nil {
			to := canvas.Local(m.Mouse).Add(m.Cam)
			l := gridgeom.NewLine(from.Center(), to).Translate(shift)
			drawutil.DrawDashedLine(buf, l, stylePreview)
		}
	}

	if m.Drawing {
		draft := draftItem(m.DrawKind, m.DrawStart, m.DrawEnd).Translated(shift)
		if draft.Kind == scene.KindLine {
			drawutil.DrawDashedLine(buf, draft.Shape.(gridgeom.Line), stylePreview)
		} else {
			drawutil.DrawItem(buf, draft, stylePreview)
		}
	}
	return buf
}

// buildCanvasLayer returns the canvas as a single layer at Z=0.
func buildCanvasLayer(m Model, canvas tealayout.Region) *lipgloss.Layer {
	if canvas.Rect.IsEmpty() {
		return tealayout.RegionLayer(canvas, "", "canvas", 0)
	}
	return tealayout.RegionLayer(canvas, m.drawCanvas(canvas).Render(bufStyles), "canvas", 0)
}

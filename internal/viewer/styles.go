package viewer

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/gridshape/pkg/cellbuf"
	"github.com/wesen/gridshape/pkg/scene"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette: CRT green terminal aesthetic.
var (
	colorBG = c("#080e0b")

	kindColors = map[scene.Kind]color.Color{
		scene.KindLine:   c("#00d4a0"),
		scene.KindRect:   c("#1a6a4a"),
		scene.KindBorder: c("#44ff88"),
		scene.KindDisc:   c("#00ccee"),
		scene.KindRing:   c("#ddaa44"),
	}

	selColor      = c("#00ffee")
	previewColor  = c("#ffcc00")
	corridorColor = c("#336655")
	labelColor    = c("#ffee66")

	toolbarColor = c("#00ffc8")
	footerColor  = c("#666666")
)

// cellbuf style keys for the canvas.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleCorridor
	styleLabel
	styleSelected
	stylePreview
	styleKindBase // styleKindBase + Kind
)

// bufStyles maps cellbuf StyleKeys to lipgloss styles for rendering.
var bufStyles = func() map[cellbuf.StyleKey]lipgloss.Style {
	base := lipgloss.NewStyle().Background(colorBG)
	m := map[cellbuf.StyleKey]lipgloss.Style{
		styleBG:       base.Foreground(c("#1a3a2a")),
		styleGrid:     base.Foreground(c("#0e2e20")),
		styleCorridor: base.Foreground(corridorColor),
		styleLabel:    base.Foreground(labelColor).Bold(true),
		styleSelected: base.Foreground(selColor).Bold(true),
		stylePreview:  base.Foreground(previewColor),
	}
	for k, col := range kindColors {
		m[kindStyle(k)] = base.Foreground(col)
	}
	return m
}()

func kindStyle(k scene.Kind) cellbuf.StyleKey {
	return styleKindBase + cellbuf.StyleKey(k)
}

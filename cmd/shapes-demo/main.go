// shapes-demo runs a shape script and prints the resulting scene to the
// terminal, optionally exporting it as a TIFF image.
//
// Run: GOWORK=off go run ./cmd/shapes-demo/ -tiff dungeon.tiff -scale 6
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"charm.land/lipgloss/v2"

	"github.com/wesen/gridshape/internal/shapescript"
	"github.com/wesen/gridshape/pkg/cellbuf"
	"github.com/wesen/gridshape/pkg/drawutil"
	"github.com/wesen/gridshape/pkg/grid"
	"github.com/wesen/gridshape/pkg/gridgeom"
	"github.com/wesen/gridshape/pkg/scene"
)

// Style keys
const (
	BG       cellbuf.StyleKey = 0
	Grid     cellbuf.StyleKey = 1
	Corridor cellbuf.StyleKey = 2
	Label    cellbuf.StyleKey = 3
	ItemBase cellbuf.StyleKey = 4 // ItemBase + scene.Kind
)

// kindColors holds one SVG colour name per kind, shared by the terminal
// and TIFF output.
var kindColors = map[scene.Kind]string{
	scene.KindLine:   "lightseagreen",
	scene.KindRect:   "seagreen",
	scene.KindBorder: "lime",
	scene.KindDisc:   "deepskyblue",
	scene.KindRing:   "goldenrod",
}

const corridorColor = "dimgray"

func main() {
	var (
		width      = flag.Int("width", 60, "canvas width in cells")
		height     = flag.Int("height", 30, "canvas height in cells")
		scriptPath = flag.String("script", "", "shape script (default: built-in demo)")
		tiffPath   = flag.String("tiff", "", "also write the scene to this TIFF file")
		scale      = flag.Int("scale", 4, "TIFF pixels per cell")
		debug      = flag.Bool("debug", false, "log to stderr at debug level")
	)
	flag.Parse()

	if *debug {
		grid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	src := shapescript.Demo
	if *scriptPath != "" {
		b, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		src = string(b)
	}

	interp := shapescript.New(src)
	if err := interp.Run(); err != nil {
		log.Fatalf("%v", err)
	}
	if interp.WaitInput {
		log.Fatalf("script waits for input (%s); shapes-demo is non-interactive", interp.InputPrompt)
	}

	palette := colorPalette()
	styles := map[cellbuf.StyleKey]lipgloss.Style{
		BG:       lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")).Background(lipgloss.Color("#0a0a0a")),
		Grid:     lipgloss.NewStyle().Foreground(lipgloss.Color("#1a3a1a")).Background(lipgloss.Color("#0a0a0a")),
		Corridor: lipgloss.NewStyle().Foreground(palette.Color(corridorColor)).Background(lipgloss.Color("#0a0a0a")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")).Background(lipgloss.Color("#0a0a0a")).Bold(true),
	}
	for k, name := range kindColors {
		styles[ItemBase+cellbuf.StyleKey(k)] = lipgloss.NewStyle().
			Foreground(palette.Color(name)).
			Background(lipgloss.Color("#0a0a0a"))
	}

	buf := cellbuf.New(*width, *height, BG)
	drawutil.DrawGrid(buf, gridgeom.Coord{}, gridgeom.Sz(4, 2), Grid)
	drawutil.DrawScene(buf, interp.Scene, gridgeom.Coord{}, drawutil.SceneStyle{
		Item:     func(it *scene.Item) cellbuf.StyleKey { return ItemBase + cellbuf.StyleKey(it.Kind) },
		Corridor: Corridor,
		Label:    Label,
	})

	fmt.Println()
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ffcc")).
		Bold(true).
		Underline(true)
	fmt.Println(title.Render(fmt.Sprintf("  gridshape demo: %d items, %d corridors",
		interp.Scene.Len(), len(interp.Scene.Corridors()))))
	fmt.Println()
	fmt.Println(buf.Render(styles))
	fmt.Println()

	legend := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	for _, line := range interp.Output {
		fmt.Println(legend.Render("  " + line))
	}
	fmt.Println()

	if *tiffPath != "" {
		if err := writeTIFF(*tiffPath, interp.Scene, *scale); err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("Scene saved to %s", *tiffPath)
	}
}

// colorPalette resolves the colour names used by kindColors and
// corridorColor. Empty cells are black.
func colorPalette() grid.Palette[string] {
	names := map[string]string{corridorColor: corridorColor}
	for _, name := range kindColors {
		names[name] = name
	}
	return grid.NewPalette(names, "black")
}

// writeTIFF stamps the whole scene, framed by a one-cell margin, onto a
// grid of colour names and encodes it.
func writeTIFF(path string, s *scene.Scene, scale int) error {
	b, ok := s.Bounds()
	if !ok {
		return fmt.Errorf("write %s: %w", path, grid.ErrEmptyImage)
	}
	size := gridgeom.Sz(b.Width()+2, b.Height()+2)
	if err := grid.CheckImageSize(size, scale); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	g := grid.New(size, "")
	offset := gridgeom.C(1, 1).Sub(b.Min())
	scene.Stamp(g, s, offset, func(it *scene.Item) string { return kindColors[it.Kind] }, corridorColor)

	img, err := grid.ToImage(g, colorPalette().Color, scale)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := grid.EncodeTIFF(f, img); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

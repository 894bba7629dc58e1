package grid

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/colornames"
	"golang.org/x/image/tiff"

	"github.com/wesen/gridshape/pkg/gridgeom"
)

// Palette maps cell values to colours for ToImage.
type Palette[T comparable] struct {
	Colors     map[T]color.Color
	Background color.Color
}

// NewPalette builds a palette from SVG colour names (see
// golang.org/x/image/colornames). Unknown names map to magenta so they
// stand out in the output.
func NewPalette[T comparable](names map[T]string, background string) Palette[T] {
	p := Palette[T]{
		Colors:     make(map[T]color.Color, len(names)),
		Background: lookupColor(background),
	}
	for v, name := range names {
		p.Colors[v] = lookupColor(name)
	}
	return p
}

// Color returns the colour for v, or the background colour.
func (p Palette[T]) Color(v T) color.Color {
	if c, ok := p.Colors[v]; ok {
		return c
	}
	if p.Background != nil {
		return p.Background
	}
	return color.Transparent
}

func lookupColor(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Magenta
}

// MaxImagePixels bounds the pixel count of an exported image (256 MiB of
// RGBA).
const MaxImagePixels = 1 << 26

// CheckImageSize reports whether a grid of the given size can be exported
// at scale pixels per cell. Call it before allocating a grid for export.
func CheckImageSize(size gridgeom.Size, scale int) error {
	if size.IsEmpty() || scale <= 0 {
		return ErrEmptyImage
	}
	if scale > MaxImagePixels || size.Area() > uint64(MaxImagePixels/(scale*scale)) {
		return fmt.Errorf("%w: %v cells at scale %d", ErrImageTooLarge, size, scale)
	}
	return nil
}

// ToImage renders g with each cell as a scale×scale block. Grid row 0 is
// the top row of the image.
func ToImage[T any](g *Grid[T], colorOf func(T) color.Color, scale int) (*image.RGBA, error) {
	size := g.Size()
	if err := CheckImageSize(size, scale); err != nil {
		return nil, err
	}
	w, h := int(size.Width)*scale, int(size.Height)*scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for c, v := range g.All() {
		col := colorOf(v)
		x0, y0 := int(c.X)*scale, int(c.Y)*scale
		for y := y0; y < y0+scale; y++ {
			for x := x0; x < x0+scale; x++ {
				img.Set(x, y, col)
			}
		}
	}
	Logger().Debug("grid: image", "width", w, "height", h, "scale", scale)
	return img, nil
}

// EncodeTIFF writes img as a Deflate-compressed TIFF.
func EncodeTIFF(w io.Writer, img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}
	if err := tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true}); err != nil {
		return fmt.Errorf("encode tiff: %w", err)
	}
	return nil
}

package grid

import "errors"

// Sentinel errors for the grid package.
var (
	// ErrEmptyImage is returned when exporting a grid with no cells or a
	// zero scale.
	ErrEmptyImage = errors.New("grid: empty image")

	// ErrImageTooLarge is returned when an export would exceed
	// MaxImagePixels.
	ErrImageTooLarge = errors.New("grid: image too large")
)

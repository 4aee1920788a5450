package aztecscope

import (
	"errors"
	"fmt"
)

var (
	// ErrGeometry is returned when the corner quadrilateral is degenerate
	// or the perspective transform cannot be inverted.
	ErrGeometry = errors.New("invalid geometry")

	// ErrGridSize is returned when a sampled or inferred module count is
	// not a legal Aztec size.
	ErrGridSize = errors.New("unrecognized grid size")
)

// GeometryError reports an unrecoverable geometric condition: a degenerate
// corner quadrilateral, a non-invertible transform, or a zero-size image.
// Decodes failing with it produce no partial result.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "aztecscope: geometry: " + e.Reason
}

func (e *GeometryError) Unwrap() error { return ErrGeometry }

// UnrecognizedGridSizeError reports a module count outside the compact and
// full-range Aztec size families, or outside the configured bounds.
type UnrecognizedGridSizeError struct {
	Size int
}

func (e *UnrecognizedGridSizeError) Error() string {
	return fmt.Sprintf("aztecscope: unrecognized grid size %d", e.Size)
}

func (e *UnrecognizedGridSizeError) Unwrap() error { return ErrGridSize }

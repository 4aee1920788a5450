package grid

import (
	"github.com/barcodelab/aztecscope"
	"github.com/barcodelab/aztecscope/transform"
)

// Raster is the perspective-corrected square luminance view of the symbol
// region, the input to thresholding and module sampling.
type Raster struct {
	pix  []byte
	size int
}

// Warp resamples the quadrilateral between the four corners (top-left,
// top-right, bottom-right, bottom-left, in source pixels) into a size×size
// luminance raster. Source reads outside the image clamp to its bounds.
//
// A zero-size image, non-positive size, or degenerate quadrilateral is
// unrecoverable and returns a GeometryError.
func Warp(l *Luminance, corners [4]aztecscope.Point, size int) (*Raster, error) {
	if size <= 0 {
		return nil, &aztecscope.GeometryError{Reason: "non-positive raster size"}
	}
	if l.width == 0 || l.height == 0 {
		return nil, &aztecscope.GeometryError{Reason: "zero-size image"}
	}

	fs := float64(size)
	square := [4]aztecscope.Point{{X: 0, Y: 0}, {X: fs, Y: 0}, {X: fs, Y: fs}, {X: 0, Y: fs}}
	xform, err := transform.NewQuadrilateral(square, corners)
	if err != nil {
		return nil, err
	}

	pix := make([]byte, size*size)
	row := make([]float64, 2*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			row[2*x] = float64(x) + 0.5
			row[2*x+1] = float64(y) + 0.5
		}
		xform.TransformPoints(row)
		for x := 0; x < size; x++ {
			pix[y*size+x] = l.At(int(row[2*x]), int(row[2*x+1]))
		}
	}
	return &Raster{pix: pix, size: size}, nil
}

// Size returns the raster side length in pixels.
func (r *Raster) Size() int { return r.size }

// Pix returns the raster's pixels in row-major order. The slice is shared,
// not copied; treat it as read-only.
func (r *Raster) Pix() []byte { return r.pix }

// At returns the luminance at (x, y), clamping out-of-range coordinates.
func (r *Raster) At(x, y int) byte {
	if x < 0 {
		x = 0
	} else if x >= r.size {
		x = r.size - 1
	}
	if y < 0 {
		y = 0
	} else if y >= r.size {
		y = r.size - 1
	}
	return r.pix[y*r.size+x]
}

// dark reports whether the pixel at (x, y) is below the cut point.
func (r *Raster) dark(x, y int, cut uint8) bool {
	return r.At(x, y) < cut
}

// Package locate finds the symbol quadrilateral in a full image. It wraps
// an external Aztec localizer and normalizes its result points into the
// corner order the warp stage expects; the decoded structure is thrown
// away, only the geometry (and the reference text) is kept.
package locate

import (
	"fmt"
	"image"
	"math"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/aztec"

	"github.com/barcodelab/aztecscope"
)

// Localization is the geometric result of finding a symbol: the four
// corners in source pixels ordered top-left, top-right, bottom-right,
// bottom-left, and the localizer's own decoded text for cross-checking.
// Dimension is zero; the localizer does not report a module count, so the
// pipeline infers it from the bullseye.
type Localization struct {
	Corners   [4]aztecscope.Point
	Text      string
	Dimension int
}

// Localize finds one Aztec symbol in the image.
func Localize(img image.Image) (*Localization, error) {
	src := gozxing.NewLuminanceSourceFromImage(img)
	bmp, err := gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(src))
	if err != nil {
		return nil, fmt.Errorf("locate: binarize: %w", err)
	}

	result, err := aztec.NewAztecReader().Decode(bmp, nil)
	if err != nil {
		return nil, fmt.Errorf("locate: %w", err)
	}

	pts := result.GetResultPoints()
	if len(pts) < 4 {
		return nil, &aztecscope.GeometryError{
			Reason: fmt.Sprintf("localizer returned %d corner points, need 4", len(pts)),
		}
	}

	var quad [4]aztecscope.Point
	for i := 0; i < 4; i++ {
		quad[i] = aztecscope.Point{X: pts[i].GetX(), Y: pts[i].GetY()}
	}

	return &Localization{
		Corners: orderCorners(quad),
		Text:    result.GetText(),
	}, nil
}

// orderCorners sorts four corner points into top-left, top-right,
// bottom-right, bottom-left order by their quadrant around the centroid.
// Ties (a rotated symbol whose corners straddle the centroid axes) break
// by angle, which keeps the winding consistent.
func orderCorners(pts [4]aztecscope.Point) [4]aztecscope.Point {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= 4
	cy /= 4

	// Angles relative to the centroid, measured so the sort order is
	// TL, TR, BR, BL. The sweep starts due left of the centroid, midway
	// between BL and TL for an upright symbol, so the labeling tolerates
	// rotations up to 45 degrees either way.
	angle := func(p aztecscope.Point) float64 {
		a := math.Atan2(p.Y-cy, p.X-cx) // -pi..pi, 0 = +x, positive = down
		a += math.Pi
		if a >= 2*math.Pi {
			a -= 2 * math.Pi
		}
		return a
	}

	ordered := pts
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if angle(ordered[j]) < angle(ordered[i]) {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
	}
	return ordered
}

package grid

import (
	"math"
	"sort"

	"github.com/barcodelab/aztecscope"
	"github.com/barcodelab/aztecscope/layout"
)

// Locate produces the module grid from a warped raster. When dimension is
// positive it is authoritative and only validated against the legal Aztec
// sizes and the [minSize, maxSize] bounds; when zero the module count is
// inferred from the bullseye ring geometry. The cut point separates dark
// from light.
//
// Size inference is inherently lossy, so it never overrides a supplied
// dimension.
func Locate(r *Raster, cut uint8, dimension, minSize, maxSize int) (*Grid, error) {
	size := dimension
	if size == 0 {
		inferred, err := inferSize(r, cut, minSize, maxSize)
		if err != nil {
			return nil, err
		}
		size = inferred
	}
	if !legalSize(size) || size < minSize || size > maxSize {
		return nil, &aztecscope.UnrecognizedGridSizeError{Size: size}
	}
	return sampleModules(r, cut, size), nil
}

// legalSize reports whether size belongs to either Aztec size family.
func legalSize(size int) bool {
	if _, ok := layout.CompactLayers(size); ok {
		return true
	}
	_, ok := layout.FullLayers(size)
	return ok
}

// ---------------------------------------------------------------------------
// Module sampling
// ---------------------------------------------------------------------------

// sampleModules reads every module as the area-average luminance over a
// small square centered on the module midpoint (radius one quarter of a
// module), thresholded by the cut point. Edge modules are biased half a
// pixel inward so the surrounding quiet zone does not bleed into them.
func sampleModules(r *Raster, cut uint8, size int) *Grid {
	g := New(size)
	modPx := float64(r.size) / float64(size)
	radius := int(math.Max(1, modPx/4))

	for my := 0; my < size; my++ {
		cy := (float64(my) + 0.5) * modPx
		if my == 0 {
			cy += 0.5
		} else if my == size-1 {
			cy -= 0.5
		}
		for mx := 0; mx < size; mx++ {
			cx := (float64(mx) + 0.5) * modPx
			if mx == 0 {
				cx += 0.5
			} else if mx == size-1 {
				cx -= 0.5
			}
			if areaMean(r, int(cx), int(cy), radius) < int(cut) {
				g.Set(mx, my)
			}
		}
	}
	return g
}

// areaMean averages the luminance over the square of the given radius
// around (cx, cy), clamping reads at the raster bounds.
func areaMean(r *Raster, cx, cy, radius int) int {
	sum := 0
	n := 0
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			sum += int(r.At(x, y))
			n++
		}
	}
	return sum / n
}

// ---------------------------------------------------------------------------
// Size inference (fallback when no authoritative dimension is available)
// ---------------------------------------------------------------------------

// inferSize estimates the module count from the bullseye. Four cardinal
// rays from the center yield ring widths; widths within a factor of two of
// the running median belong to the bullseye. The ring count classifies the
// family (seven or more approximately-equal rings mean full-range), the
// median ring width estimates the module size, and an independently
// detected outer boundary span divided by the module size estimates the
// module count, snapped to the nearest legal size of the detected family.
func inferSize(r *Raster, cut uint8, minSize, maxSize int) (int, error) {
	c := r.size / 2

	var ringCounts []int
	var widths []float64
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		runs := rayRuns(r, cut, c, c, d[0], d[1])
		accepted := acceptRings(runs)
		ringCounts = append(ringCounts, len(accepted))
		widths = append(widths, accepted...)
	}
	if len(widths) == 0 {
		return 0, &aztecscope.UnrecognizedGridSizeError{Size: 0}
	}

	rings := medianInt(ringCounts)
	moduleSize := median(widths)
	if moduleSize <= 0 {
		return 0, &aztecscope.UnrecognizedGridSizeError{Size: 0}
	}
	full := rings >= 7

	span := boundarySpan(r, cut)
	estimated := int(math.Round(span / moduleSize))
	if estimated < minSize || estimated > maxSize {
		return 0, &aztecscope.UnrecognizedGridSizeError{Size: estimated}
	}

	family := layout.CompactSizes()
	if full {
		family = layout.FullSizes()
	}
	return snap(estimated, family), nil
}

// rayRuns walks from (cx, cy) in direction (dx, dy) and returns the pixel
// widths of the successive same-color runs it crosses.
func rayRuns(r *Raster, cut uint8, cx, cy, dx, dy int) []float64 {
	var runs []float64
	color := r.dark(cx, cy, cut)
	width := 0
	x, y := cx, cy
	for x >= 0 && x < r.size && y >= 0 && y < r.size {
		if r.dark(x, y, cut) == color {
			width++
		} else {
			runs = append(runs, float64(width))
			color = !color
			width = 1
		}
		x += dx
		y += dy
	}
	if width > 0 {
		runs = append(runs, float64(width))
	}
	return runs
}

// acceptRings keeps the leading runs whose widths stay within a factor of
// two of the running median; the first oversized run is the edge of the
// bullseye region. Nine rings are enough to tell the families apart, so
// counting stops there.
func acceptRings(runs []float64) []float64 {
	var accepted []float64
	for _, w := range runs {
		if len(accepted) > 0 {
			med := median(accepted)
			if w > 2*med || med > 2*w {
				break
			}
		}
		accepted = append(accepted, w)
		if len(accepted) >= 9 {
			break
		}
	}
	return accepted
}

// boundarySpan finds the symbol's outer extent by scanning several lines
// and columns from each raster edge inward to the first dark pixel, and
// averages the horizontal and vertical spans.
func boundarySpan(r *Raster, cut uint8) float64 {
	probes := []int{r.size * 3 / 8, r.size / 2, r.size * 5 / 8}

	var lefts, rights, tops, bottoms []int
	for _, p := range probes {
		for x := 0; x < r.size; x++ {
			if r.dark(x, p, cut) {
				lefts = append(lefts, x)
				break
			}
		}
		for x := r.size - 1; x >= 0; x-- {
			if r.dark(x, p, cut) {
				rights = append(rights, x)
				break
			}
		}
		for y := 0; y < r.size; y++ {
			if r.dark(p, y, cut) {
				tops = append(tops, y)
				break
			}
		}
		for y := r.size - 1; y >= 0; y-- {
			if r.dark(p, y, cut) {
				bottoms = append(bottoms, y)
				break
			}
		}
	}
	if len(lefts) == 0 || len(rights) == 0 || len(tops) == 0 || len(bottoms) == 0 {
		return 0
	}
	h := float64(medianInt(rights)-medianInt(lefts)) + 1
	v := float64(medianInt(bottoms)-medianInt(tops)) + 1
	return (h + v) / 2
}

// snap returns the member of family closest to size.
func snap(size int, family []int) int {
	best := family[0]
	for _, s := range family[1:] {
		if abs(s-size) < abs(best-size) {
			best = s
		}
	}
	return best
}

func median(v []float64) float64 {
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	n := len(s)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

func medianInt(v []int) int {
	s := append([]int(nil), v...)
	sort.Ints(s)
	return s[len(s)/2]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

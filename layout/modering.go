package layout

// ModeBits returns the bit length of the mode message: 28 for compact
// symbols, 40 for full-range.
func ModeBits(compact bool) int {
	if compact {
		return 28
	}
	return 40
}

// ModeCoords returns the mode-message module coordinates of a symbol with
// the given side length, in read order: top side left to right, right side
// top to bottom, bottom side right to left, left side bottom to top. Each
// side skips the two orientation positions at both ends, and full-range
// sides additionally skip the reference-grid line through the center.
//
// The returned slice has length ModeBits(compact).
func ModeCoords(size int, compact bool) []Coord {
	c := size / 2
	r := ModeRadius(compact)

	// Per-side offsets from the side midpoint.
	span := r - 2
	offs := make([]int, 0, 2*span+1)
	for k := -span; k <= span; k++ {
		if !compact && k == 0 {
			continue // reference grid line
		}
		offs = append(offs, k)
	}

	coords := make([]Coord, 0, 4*len(offs))
	for _, k := range offs { // top, left to right
		coords = append(coords, Coord{c + k, c - r})
	}
	for _, k := range offs { // right, top to bottom
		coords = append(coords, Coord{c + r, c + k})
	}
	for i := len(offs) - 1; i >= 0; i-- { // bottom, right to left
		coords = append(coords, Coord{c + offs[i], c + r})
	}
	for i := len(offs) - 1; i >= 0; i-- { // left, bottom to top
		coords = append(coords, Coord{c - r, c + offs[i]})
	}
	return coords
}

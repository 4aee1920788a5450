package layout

// Coord is a module position in the sampled grid. X is the column, Y the
// row; the origin is the top-left corner.
type Coord struct {
	X, Y int
}

// DataCoords returns one module coordinate per bit position of the data+ECC
// stream, in the canonical Aztec reading order: outermost layer first,
// starting at the top-left corner and proceeding counterclockwise through
// four legs per layer (down the left side, right along the bottom, up the
// right side, left along the top). Each layer is a ring two modules wide;
// at every position the outer module is read before the inner one.
//
// For full-range symbols coordinates are routed through an alignment map so
// the reference grid lines, which carry no data, are skipped. The returned
// slice always has length TotalBits(layers, compact).
func DataCoords(layers int, compact bool) []Coord {
	base := baseSize(layers, compact)
	am := alignmentMap(layers, compact)

	coords := make([]Coord, TotalBits(layers, compact))
	rowOffset := 0
	for i := 0; i < layers; i++ {
		rowSize := (layers-i)*4 + 9
		if !compact {
			rowSize = (layers-i)*4 + 12
		}
		low := i * 2
		high := base - 1 - low

		for j := 0; j < rowSize; j++ {
			columnOffset := j * 2
			for k := 0; k < 2; k++ {
				// Left side: columns low (outer), low+1, rows running down.
				coords[rowOffset+columnOffset+k] = Coord{am[low+k], am[low+j]}
				// Bottom side: rows high (outer), high-1, columns running right.
				coords[rowOffset+2*rowSize+columnOffset+k] = Coord{am[low+j], am[high-k]}
				// Right side: columns high (outer), high-1, rows running up.
				coords[rowOffset+4*rowSize+columnOffset+k] = Coord{am[high-k], am[high-j]}
				// Top side: rows low (outer), low+1, columns running left.
				coords[rowOffset+6*rowSize+columnOffset+k] = Coord{am[high-j], am[low+k]}
			}
		}
		rowOffset += rowSize * 8
	}
	return coords
}

// LayerBits returns the number of bit positions contributed by each layer,
// outermost first. The values sum to TotalBits(layers, compact).
func LayerBits(layers int, compact bool) []int {
	bits := make([]int, layers)
	for i := 0; i < layers; i++ {
		rowSize := (layers-i)*4 + 9
		if !compact {
			rowSize = (layers-i)*4 + 12
		}
		bits[i] = rowSize * 8
	}
	return bits
}

// alignmentMap maps base-grid coordinates (the symbol without reference
// grid lines) to sampled-grid coordinates. For compact symbols it is the
// identity; for full-range symbols a data coordinate shifts outward by one
// for the center line plus one per reference line crossed every 16 modules.
func alignmentMap(layers int, compact bool) []int {
	base := baseSize(layers, compact)
	am := make([]int, base)
	if compact {
		for i := range am {
			am[i] = i
		}
		return am
	}
	matrixSize := Dimension(layers, false)
	origCenter := base / 2
	center := matrixSize / 2
	for i := 0; i < origCenter; i++ {
		newOffset := i + i/15
		am[origCenter-i-1] = center - newOffset - 1
		am[origCenter+i] = center + newOffset + 1
	}
	return am
}

// Package layout holds the pure geometry of Aztec symbols: size and layer
// tables, the counterclockwise spiral bit-reading order, and the
// mode-message ring. Everything here is a function of the layer count and
// the compact/full flag only, so results may be memoized and shared
// read-only across decodes.
package layout

// Layer-count limits for the two symbol families.
const (
	MaxCompactLayers = 4
	MaxFullLayers    = 32
)

// CodewordBits returns the codeword width in bits for a layer count.
func CodewordBits(layers int) int {
	switch {
	case layers <= 2:
		return 6
	case layers <= 8:
		return 8
	case layers <= 22:
		return 10
	default:
		return 12
	}
}

// TotalBits returns the number of bit positions in the data+ECC spiral.
func TotalBits(layers int, compact bool) int {
	base := 112
	if compact {
		base = 88
	}
	return (base + 16*layers) * layers
}

// baseSize is the symbol side length before reference-grid insertion:
// the core plus the data layers, with the extra full-range center line
// not yet counted.
func baseSize(layers int, compact bool) int {
	if compact {
		return 4*layers + 11
	}
	return 4*layers + 14
}

// Dimension returns the symbol side length in modules, including the
// reference grid lines of full-range symbols.
func Dimension(layers int, compact bool) int {
	base := baseSize(layers, compact)
	if compact {
		return base
	}
	return base + 1 + 2*((base/2-1)/15)
}

// CompactLayers returns the layer count for a compact symbol of the given
// side length, or false if the size is not a legal compact size.
func CompactLayers(size int) (int, bool) {
	if size < 15 || size > 27 || (size-11)%4 != 0 {
		return 0, false
	}
	return (size - 11) / 4, true
}

// FullLayers returns the layer count for a full-range symbol of the given
// side length, or false if the size is not a legal full-range size.
func FullLayers(size int) (int, bool) {
	for l := 1; l <= MaxFullLayers; l++ {
		switch d := Dimension(l, false); {
		case d == size:
			return l, true
		case d > size:
			return 0, false
		}
	}
	return 0, false
}

// CompactSizes lists the legal compact side lengths in ascending order.
func CompactSizes() []int {
	sizes := make([]int, 0, MaxCompactLayers)
	for l := 1; l <= MaxCompactLayers; l++ {
		sizes = append(sizes, Dimension(l, true))
	}
	return sizes
}

// FullSizes lists the legal full-range side lengths in ascending order.
func FullSizes() []int {
	sizes := make([]int, 0, MaxFullLayers)
	for l := 1; l <= MaxFullLayers; l++ {
		sizes = append(sizes, Dimension(l, false))
	}
	return sizes
}

// CoreRadius returns the Chebyshev radius of the bullseye core: everything
// at or inside it is finder pattern.
func CoreRadius(compact bool) int {
	if compact {
		return 4
	}
	return 6
}

// ModeRadius returns the Chebyshev radius of the mode-message ring.
func ModeRadius(compact bool) int {
	if compact {
		return 5
	}
	return 7
}

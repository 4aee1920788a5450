// Package grid turns a photographed symbol region into a boolean module
// grid: it converts pixels to luminance, computes a global black/white cut
// point, resamples the corner quadrilateral into a square raster, infers
// the module count from the bullseye when no authoritative dimension is
// supplied, and samples every module's footprint.
package grid

import "strings"

// Grid is a square matrix of modules (true = dark), bit-packed by row.
// It is produced once by the locator and read-only afterwards.
type Grid struct {
	size     int
	rowWords int
	bits     []uint32
}

// New creates an all-light Grid with the given side length.
func New(size int) *Grid {
	if size < 1 {
		panic("grid: size must be positive")
	}
	rowWords := (size + 31) / 32
	return &Grid{
		size:     size,
		rowWords: rowWords,
		bits:     make([]uint32, rowWords*size),
	}
}

// Size returns the side length in modules.
func (g *Grid) Size() int { return g.size }

// Get reports whether the module at (x, y) is dark.
func (g *Grid) Get(x, y int) bool {
	return (g.bits[y*g.rowWords+x/32]>>uint(x&31))&1 != 0
}

// Set marks the module at (x, y) dark.
func (g *Grid) Set(x, y int) {
	g.bits[y*g.rowWords+x/32] |= 1 << uint(x&31)
}

// String renders the grid with "##" for dark and "  " for light modules.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size * (2*g.size + 1))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.Get(x, y) {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals reports whether two grids have identical size and modules.
func (g *Grid) Equals(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i := range g.bits {
		if g.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

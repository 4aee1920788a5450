// Package inspect is the top-level pipeline: it takes an image and four
// corner points, produces the module grid, runs the structural analysis,
// decodes the codeword stream, and answers provenance queries linking
// decoded symbols back to the modules that carry their bits.
package inspect

import (
	"image"
	"sort"

	"github.com/barcodelab/aztecscope"
	"github.com/barcodelab/aztecscope/grid"
	"github.com/barcodelab/aztecscope/layout"
	"github.com/barcodelab/aztecscope/structure"
	"github.com/barcodelab/aztecscope/symbol"
)

// Result is the complete inspection of one symbol.
type Result struct {
	// Grid is the sampled module grid and Threshold the Otsu cut point
	// used to sample it. Threshold is zero for grid-only inspections.
	Grid      *grid.Grid
	Threshold uint8

	Geometry structure.Geometry
	Mode     structure.ModeMessage
	Modules  [][]structure.Module

	Codewords []int
	Symbols   []symbol.Symbol
	Text      string

	// DataBits maps each bit index of the padding-stripped data+ECC
	// stream to its module coordinate.
	DataBits []layout.Coord
}

// Inspect runs the full pipeline on an image region. The corners name the
// symbol quadrilateral in source pixels (top-left, top-right, bottom-right,
// bottom-left); they normally come from an external localizer. A nil opts
// uses defaults.
func Inspect(img image.Image, corners [4]aztecscope.Point, opts *aztecscope.Options) (*Result, error) {
	o := opts.Normalized()

	lum := grid.NewLuminance(img)
	raster, err := grid.Warp(lum, corners, o.SampleSize)
	if err != nil {
		return nil, err
	}
	cut := grid.CutPoint(raster.Pix())

	g, err := grid.Locate(raster, cut, o.Dimension, o.MinGridSize, o.MaxGridSize)
	if err != nil {
		return nil, err
	}

	r, err := InspectGrid(g)
	if err != nil {
		return nil, err
	}
	r.Threshold = cut
	return r, nil
}

// InspectGrid analyzes and decodes an already-sampled module grid, for
// callers that have their own sampling front end or synthetic grids.
func InspectGrid(g *grid.Grid) (*Result, error) {
	a, err := structure.Analyze(g)
	if err != nil {
		return nil, err
	}

	dec := symbol.DecodeCodewords(a.Codewords, a.Geometry.CodewordBits, a.Geometry.DataCodewords)

	return &Result{
		Grid:      g,
		Geometry:  a.Geometry,
		Mode:      a.Mode,
		Modules:   a.Modules,
		Codewords: a.Codewords,
		Symbols:   dec.Symbols,
		Text:      dec.Text,
		DataBits:  a.DataBits,
	}, nil
}

// FindSymbolAtBit returns the decoded record whose [StartBit, EndBit)
// range contains the given data-stream bit index. Records are ordered by
// StartBit, so the lookup is a binary search.
func (r *Result) FindSymbolAtBit(bit int) (symbol.Symbol, bool) {
	i := sort.Search(len(r.Symbols), func(i int) bool {
		return r.Symbols[i].Span().StartBit > bit
	})
	if i == 0 {
		return nil, false
	}
	s := r.Symbols[i-1]
	if bit >= s.Span().EndBit {
		return nil, false
	}
	return s, true
}

// ModulesForBitRange returns the module coordinates carrying the data-
// stream bits in [start, end), in stream order. Out-of-range indices are
// clamped.
func (r *Result) ModulesForBitRange(start, end int) []layout.Coord {
	if start < 0 {
		start = 0
	}
	if end > len(r.DataBits) {
		end = len(r.DataBits)
	}
	if start >= end {
		return nil
	}
	return r.DataBits[start:end]
}

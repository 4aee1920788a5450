package structure

import (
	"github.com/barcodelab/aztecscope"
	"github.com/barcodelab/aztecscope/grid"
	"github.com/barcodelab/aztecscope/layout"
)

// Analysis is everything the structural pass derives from a module grid.
// It is immutable once returned.
type Analysis struct {
	Geometry Geometry
	Mode     ModeMessage

	// Modules is indexed [y][x] and partitions the grid: every position
	// carries exactly one type.
	Modules [][]Module

	// Codewords holds one value per codeword index, each read from its
	// member modules most-significant-bit first.
	Codewords []int

	// DataBits maps each bit index of the padding-stripped data+ECC
	// stream to the module coordinate it was read from.
	DataBits []layout.Coord
}

// Analyze classifies a sampled grid and extracts its codewords.
//
// Grid-size failures are fatal; an unreadable or inconsistent mode message
// degrades to a heuristic data/ECC split (three quarters data) so the
// structure stays inspectable, with Mode.Valid and Geometry.Heuristic
// marking the result as tainted.
func Analyze(g *grid.Grid) (*Analysis, error) {
	size := g.Size()
	layers, compact, err := classifyFamily(g)
	if err != nil {
		return nil, err
	}

	mode := readModeMessage(g, size, compact)
	if mode.Valid && mode.Layers != layers {
		// The ring disagrees with the sampled size; trust the geometry.
		mode.Valid = false
	}

	geom := Geometry{
		Compact:      compact,
		Layers:       layers,
		CodewordBits: layout.CodewordBits(layers),
		TotalBits:    layout.TotalBits(layers, compact),
	}
	geom.TotalCodewords = geom.TotalBits / geom.CodewordBits
	geom.PaddingBits = geom.TotalBits % geom.CodewordBits
	if mode.Valid && mode.DataCodewords < geom.TotalCodewords {
		geom.DataCodewords = mode.DataCodewords
	} else {
		mode.Valid = false
		geom.DataCodewords = geom.TotalCodewords * 3 / 4
		geom.Heuristic = true
	}
	geom.ECCCodewords = geom.TotalCodewords - geom.DataCodewords

	coords := layout.DataCoords(layers, compact)
	codewords, dataBits := extractCodewords(g, coords, geom)
	modules := classify(g, geom, coords)

	return &Analysis{
		Geometry:  geom,
		Mode:      mode,
		Modules:   modules,
		Codewords: codewords,
		DataBits:  dataBits,
	}, nil
}

// classifyFamily resolves the layer count and family from the grid size.
// Sizes legal in both families (19, 23, 27) are disambiguated by probing
// for the reference-grid alternation full-range symbols carry on the rows
// and columns through the center.
func classifyFamily(g *grid.Grid) (layers int, compact bool, err error) {
	size := g.Size()
	cl, cok := layout.CompactLayers(size)
	fl, fok := layout.FullLayers(size)
	switch {
	case cok && fok:
		if referenceAlternation(g) {
			return fl, false, nil
		}
		return cl, true, nil
	case cok:
		return cl, true, nil
	case fok:
		return fl, false, nil
	default:
		return 0, false, &aztecscope.UnrecognizedGridSizeError{Size: size}
	}
}

// referenceAlternation probes the four center-line arms just outside the
// core for the dark-at-even-offset alternation of a full-range reference
// grid. Compact symbols have data there, so a strong match means full.
func referenceAlternation(g *grid.Grid) bool {
	size := g.Size()
	c := size / 2
	match, total := 0, 0
	for off := 7; off <= 10 && c+off < size; off++ {
		want := off%2 == 0
		for _, p := range [4][2]int{{c + off, c}, {c - off, c}, {c, c + off}, {c, c - off}} {
			if g.Get(p[0], p[1]) == want {
				match++
			}
			total++
		}
	}
	return total > 0 && match*4 >= total*3
}

// readModeMessage samples the mode-message ring and interprets its leading
// 8 (compact) or 16 (full) bits directly as the layers-1 and
// dataCodewords-1 fields. No Reed-Solomon correction is applied: the
// upstream localizer has already validated the symbol.
func readModeMessage(g *grid.Grid, size int, compact bool) ModeMessage {
	coords := layout.ModeCoords(size, compact)
	bits := make([]bool, 0, len(coords))
	for _, c := range coords {
		if c.X < 0 || c.X >= size || c.Y < 0 || c.Y >= size {
			return ModeMessage{RawBits: bits, Valid: false}
		}
		bits = append(bits, g.Get(c.X, c.Y))
	}

	msg := ModeMessage{RawBits: bits}
	if len(bits) != layout.ModeBits(compact) {
		return msg
	}
	if compact {
		msg.Layers = readBits(bits, 0, 2) + 1
		msg.DataCodewords = readBits(bits, 2, 6) + 1
	} else {
		msg.Layers = readBits(bits, 0, 5) + 1
		msg.DataCodewords = readBits(bits, 5, 11) + 1
	}
	msg.Valid = true
	return msg
}

// extractCodewords strips the leading padding bits from the spiral
// sequence and slices the remainder into codeword values, MSB first.
func extractCodewords(g *grid.Grid, coords []layout.Coord, geom Geometry) ([]int, []layout.Coord) {
	dataBits := coords[geom.PaddingBits:]
	codewords := make([]int, geom.TotalCodewords)
	for i := range codewords {
		w := 0
		for j := 0; j < geom.CodewordBits; j++ {
			c := dataBits[i*geom.CodewordBits+j]
			w <<= 1
			if g.Get(c.X, c.Y) {
				w |= 1
			}
		}
		codewords[i] = w
	}
	return codewords, dataBits
}

// classify tags every grid position. Concentric-distance rules cover the
// finder core, the orientation corners, the mode ring, and the full-range
// reference grid; the spiral sequence assigns everything else its codeword
// index, bit offset, and layer.
func classify(g *grid.Grid, geom Geometry, coords []layout.Coord) [][]Module {
	size := g.Size()
	c := size / 2
	rc := layout.CoreRadius(geom.Compact)
	rm := layout.ModeRadius(geom.Compact)

	modules := make([][]Module, size)
	for y := range modules {
		modules[y] = make([]Module, size)
		for x := range modules[y] {
			modules[y][x] = classifyFixed(x-c, y-c, geom.Compact, rc, rm)
		}
	}

	// Walk the spiral once to tag the codeword-bearing modules.
	layerEnds := layerEnds(geom)
	layer := 1
	for i, co := range coords {
		for i >= layerEnds[layer-1] {
			layer++
		}
		m := &modules[co.Y][co.X]
		if i < geom.PaddingBits {
			*m = Module{Type: Padding, Layer: layer, CodewordIndex: -1, BitOffset: -1}
			continue
		}
		bitIdx := i - geom.PaddingBits
		cw := bitIdx / geom.CodewordBits
		typ := Data
		if cw >= geom.DataCodewords {
			typ = ECC
		}
		*m = Module{
			Type:          typ,
			Layer:         layer,
			CodewordIndex: cw,
			BitOffset:     bitIdx % geom.CodewordBits,
		}
	}
	return modules
}

// classifyFixed tags the modules whose role is a pure function of position:
// finder core, orientation corners, mode ring, and alignment lines. Data
// region positions get a placeholder overwritten by the spiral walk.
func classifyFixed(dx, dy int, compact bool, rc, rm int) Module {
	r := max(abs(dx), abs(dy))
	none := Module{CodewordIndex: -1, BitOffset: -1}

	switch {
	case r <= rc:
		none.Type = Finder
	case !compact && (mod16(dx) == 0 || mod16(dy) == 0):
		none.Type = Alignment
	case r == rm:
		if min(abs(dx), abs(dy)) >= rm-1 {
			none.Type = Orientation
		} else {
			none.Type = Mode
		}
	default:
		none.Type = Data // placeholder; spiral walk overwrites
	}
	return none
}

// layerEnds returns the cumulative spiral-index boundary of each layer.
func layerEnds(geom Geometry) []int {
	bits := layout.LayerBits(geom.Layers, geom.Compact)
	ends := make([]int, len(bits))
	sum := 0
	for i, b := range bits {
		sum += b
		ends[i] = sum
	}
	return ends
}

func readBits(bits []bool, start, n int) int {
	v := 0
	for i := start; i < start+n; i++ {
		v <<= 1
		if bits[i] {
			v |= 1
		}
	}
	return v
}

func mod16(n int) int {
	return ((n % 16) + 16) % 16
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Package structure derives every structural fact of a sampled Aztec grid:
// the symbol geometry, the mode message, a classification for each module,
// the codeword values, and the table mapping each data-stream bit back to
// its module coordinate.
package structure

// ModuleType classifies a grid position by its structural role.
type ModuleType int

const (
	Finder ModuleType = iota
	Orientation
	Mode
	Data
	ECC
	Alignment
	Padding
)

// String returns the lower-case tag name.
func (t ModuleType) String() string {
	switch t {
	case Finder:
		return "finder"
	case Orientation:
		return "orientation"
	case Mode:
		return "mode"
	case Data:
		return "data"
	case ECC:
		return "ecc"
	case Alignment:
		return "alignment"
	case Padding:
		return "padding"
	default:
		return "unknown"
	}
}

// Module describes one grid position. Every module carries exactly one
// type; data and ECC modules additionally carry their codeword index, the
// bit offset within that codeword (0 = most significant), and the 1-based
// data layer counted from the outermost ring.
type Module struct {
	Type          ModuleType
	Layer         int
	CodewordIndex int
	BitOffset     int
}

// Geometry is the set of structural facts computed once per decode from
// the layer count and family. Heuristic is true when the data/ECC split
// came from the 75% fallback instead of a valid mode message; consumers
// should flag such results rather than trust DataCodewords.
type Geometry struct {
	Compact        bool
	Layers         int
	CodewordBits   int
	TotalBits      int
	TotalCodewords int
	DataCodewords  int
	ECCCodewords   int
	PaddingBits    int
	Heuristic      bool
}

// ModeMessage is the content of the ring of modules around the finder
// pattern, the root of the structural dependency graph. Valid is false when
// the ring could not be read or its fields are inconsistent with the grid;
// Layers and DataCodewords are then untrusted.
type ModeMessage struct {
	Layers        int
	DataCodewords int
	RawBits       []bool
	Valid         bool
}

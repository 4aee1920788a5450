package aztecscope

// Default inspection parameters.
const (
	// DefaultSampleSize is the side length in pixels of the
	// perspective-corrected square raster the symbol region is resampled
	// into before module sampling.
	DefaultSampleSize = 720

	// DefaultMinGridSize and DefaultMaxGridSize bound accepted module
	// counts. 15 is the smallest compact symbol, 151 the largest
	// full-range symbol including its reference grid.
	DefaultMinGridSize = 15
	DefaultMaxGridSize = 151
)

// Options configures an inspection.
type Options struct {
	// SampleSize is the side length in pixels of the resampled square.
	// It is a quality/performance knob; zero means DefaultSampleSize.
	SampleSize int

	// Dimension is an authoritative module count (width = height, Aztec
	// symbols are square) declared by the external localizer. When set it
	// is never second-guessed; when zero the size is inferred from the
	// bullseye ring geometry.
	Dimension int

	// MinGridSize and MaxGridSize bound the accepted module count.
	// Zero means the defaults.
	MinGridSize int
	MaxGridSize int
}

// Normalized returns a copy with zero fields replaced by defaults. A nil
// receiver yields all defaults.
func (o *Options) Normalized() Options {
	var n Options
	if o != nil {
		n = *o
	}
	if n.SampleSize == 0 {
		n.SampleSize = DefaultSampleSize
	}
	if n.MinGridSize == 0 {
		n.MinGridSize = DefaultMinGridSize
	}
	if n.MaxGridSize == 0 {
		n.MaxGridSize = DefaultMaxGridSize
	}
	return n
}

// Package aztecscope inspects Aztec 2D barcodes. Given a photographed or
// scanned image region and the symbol's corner coordinates, it resamples the
// region into a boolean module grid, classifies every module by its
// structural role (finder, mode message, data, ECC, alignment, padding), and
// decodes the character stream with byte-exact bit provenance for every
// decoded symbol.
//
// Localization of the symbol in a larger image is an external concern (see
// the locate subpackage); this package and its siblings only ever consume
// corner coordinates and an optional declared grid dimension. Module values
// are always resampled from the source pixels.
package aztecscope

// Point is an image coordinate in pixels.
type Point struct {
	X, Y float64
}

package grid

import "image"

// Luminance is an 8-bit greyscale view of a source image. Pixels are
// converted once on construction with the Rec. 601 weights
// 0.299R + 0.587G + 0.114B.
type Luminance struct {
	pix    []byte
	width  int
	height int
}

// NewLuminance converts an image to luminance. Fully transparent pixels are
// forced to white so symbols on transparent backgrounds keep a quiet zone.
func NewLuminance(img image.Image) *Luminance {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	pix := make([]byte, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, b, a := c.RGBA()
			if a == 0 {
				pix[y*w+x] = 0xFF
				continue
			}
			// 16-bit components scaled to 8 bits; integer Rec. 601 mix.
			r8 := r >> 8
			g8 := g >> 8
			b8 := b >> 8
			pix[y*w+x] = byte((299*r8 + 587*g8 + 114*b8) / 1000)
		}
	}
	return &Luminance{pix: pix, width: w, height: h}
}

// NewLuminanceFromPix wraps raw greyscale pixels. The slice is retained.
func NewLuminanceFromPix(pix []byte, width, height int) *Luminance {
	if len(pix) != width*height {
		panic("grid: pixel buffer does not match dimensions")
	}
	return &Luminance{pix: pix, width: width, height: height}
}

// Width returns the image width in pixels.
func (l *Luminance) Width() int { return l.width }

// Height returns the image height in pixels.
func (l *Luminance) Height() int { return l.height }

// At returns the luminance at (x, y). Out-of-range coordinates clamp to the
// image bounds; sampling never fails.
func (l *Luminance) At(x, y int) byte {
	if x < 0 {
		x = 0
	} else if x >= l.width {
		x = l.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= l.height {
		y = l.height - 1
	}
	return l.pix[y*l.width+x]
}

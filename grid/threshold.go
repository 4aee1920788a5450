package grid

// CutPoint computes the global black/white cut point for a luminance
// buffer by maximizing the inter-class variance over its histogram (the
// two-class optimal threshold; Otsu's method). A pixel is dark when its
// luminance is strictly below the returned value.
//
// A fixed cut point would misread photos whose lighting or print contrast
// differs from the calibration image, so the threshold is always derived
// from the data at hand.
func CutPoint(pix []byte) uint8 {
	var hist [256]int
	for _, p := range pix {
		hist[p]++
	}

	total := len(pix)
	if total == 0 {
		return 0
	}

	sum := 0.0
	for v, n := range hist {
		sum += float64(v) * float64(n)
	}

	var (
		weightB float64 // background (dark) pixel count so far
		sumB    float64 // background luminance mass so far
		best    float64
		cut     int
	)
	for v := 0; v < 256; v++ {
		weightB += float64(hist[v])
		if weightB == 0 {
			continue
		}
		weightF := float64(total) - weightB
		if weightF == 0 {
			break
		}
		sumB += float64(v) * float64(hist[v])

		meanB := sumB / weightB
		meanF := (sum - sumB) / weightF
		between := weightB * weightF * (meanB - meanF) * (meanB - meanF)
		if between > best {
			best = between
			cut = v + 1
		}
	}
	return uint8(cut)
}

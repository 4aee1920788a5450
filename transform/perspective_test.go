package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barcodelab/aztecscope"
)

func TestQuadrilateralIdentity(t *testing.T) {
	q := [4]aztecscope.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	p, err := NewQuadrilateral(q, q)
	require.NoError(t, err)

	for _, pt := range []aztecscope.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 10}, {X: 2.5, Y: 7.5}} {
		x, y := p.Apply(pt.X, pt.Y)
		assert.InDelta(t, pt.X, x, 1e-9)
		assert.InDelta(t, pt.Y, y, 1e-9)
	}
}

func TestQuadrilateralScaleTranslate(t *testing.T) {
	src := [4]aztecscope.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	dst := [4]aztecscope.Point{{X: 100, Y: 50}, {X: 300, Y: 50}, {X: 300, Y: 250}, {X: 100, Y: 250}}
	p, err := NewQuadrilateral(src, dst)
	require.NoError(t, err)

	x, y := p.Apply(0.5, 0.5)
	assert.InDelta(t, 200.0, x, 1e-9)
	assert.InDelta(t, 150.0, y, 1e-9)
}

func TestQuadrilateralPerspectiveCorners(t *testing.T) {
	// A genuinely projective (non-affine) mapping: the corners must still
	// land exactly.
	src := [4]aztecscope.Point{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8}}
	dst := [4]aztecscope.Point{{X: 3, Y: 2}, {X: 17, Y: 5}, {X: 15, Y: 19}, {X: 1, Y: 14}}
	p, err := NewQuadrilateral(src, dst)
	require.NoError(t, err)

	for i := range src {
		x, y := p.Apply(src[i].X, src[i].Y)
		assert.InDelta(t, dst[i].X, x, 1e-6, "corner %d x", i)
		assert.InDelta(t, dst[i].Y, y, 1e-6, "corner %d y", i)
	}
}

func TestQuadrilateralDegenerate(t *testing.T) {
	square := [4]aztecscope.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	tests := []struct {
		name string
		quad [4]aztecscope.Point
	}{
		{"coincident corners", [4]aztecscope.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}},
		{"collinear corners", [4]aztecscope.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewQuadrilateral(square, tc.quad)
			require.Error(t, err)
			assert.True(t, errors.Is(err, aztecscope.ErrGeometry))

			_, err = NewQuadrilateral(tc.quad, square)
			require.Error(t, err)
			assert.True(t, errors.Is(err, aztecscope.ErrGeometry))
		})
	}
}

func TestTransformPoints(t *testing.T) {
	src := [4]aztecscope.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	dst := [4]aztecscope.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	p, err := NewQuadrilateral(src, dst)
	require.NoError(t, err)

	pts := []float64{0, 0, 0.5, 0.5, 1, 1}
	p.TransformPoints(pts)
	assert.InDeltaSlice(t, []float64{0, 0, 1, 1, 2, 2}, pts, 1e-9)
}

// Package transform provides the perspective mapping between the square
// module grid and the photographed symbol quadrilateral.
package transform

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/barcodelab/aztecscope"
)

// Perspective is a 2D projective transform (homography). A point (x, y)
// maps to ((a11*x + a12*y + a13) / d, (a21*x + a22*y + a23) / d) with
// d = a31*x + a32*y + a33.
type Perspective struct {
	a11, a12, a13 float64
	a21, a22, a23 float64
	a31, a32, a33 float64
}

// NewQuadrilateral computes the transform taking the four src corners to
// the four dst corners. Corner order is top-left, top-right, bottom-right,
// bottom-left for both quadrilaterals.
//
// The eight homography coefficients are solved as a stacked 8x8 linear
// system (a33 is fixed at 1). A degenerate quadrilateral makes the system
// singular and surfaces as a GeometryError.
func NewQuadrilateral(src, dst [4]aztecscope.Point) (*Perspective, error) {
	if degenerate(src) || degenerate(dst) {
		return nil, &aztecscope.GeometryError{Reason: "degenerate corner quadrilateral"}
	}

	// Two rows per correspondence:
	//   x' = (a11*x + a12*y + a13) - x'*(a31*x + a32*y)
	//   y' = (a21*x + a22*y + a23) - y'*(a31*x + a32*y)
	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)
	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		xp, yp := dst[i].X, dst[i].Y

		a.Set(i*2, 0, x)
		a.Set(i*2, 1, y)
		a.Set(i*2, 2, 1)
		a.Set(i*2, 6, -x*xp)
		a.Set(i*2, 7, -y*xp)
		b.SetVec(i*2, xp)

		a.Set(i*2+1, 3, x)
		a.Set(i*2+1, 4, y)
		a.Set(i*2+1, 5, 1)
		a.Set(i*2+1, 6, -x*yp)
		a.Set(i*2+1, 7, -y*yp)
		b.SetVec(i*2+1, yp)
	}

	var h mat.VecDense
	if err := h.SolveVec(a, b); err != nil {
		return nil, &aztecscope.GeometryError{Reason: "singular perspective system"}
	}

	return &Perspective{
		a11: h.AtVec(0), a12: h.AtVec(1), a13: h.AtVec(2),
		a21: h.AtVec(3), a22: h.AtVec(4), a23: h.AtVec(5),
		a31: h.AtVec(6), a32: h.AtVec(7), a33: 1,
	}, nil
}

// Apply maps a single point through the transform.
func (p *Perspective) Apply(x, y float64) (float64, float64) {
	d := p.a31*x + p.a32*y + p.a33
	return (p.a11*x + p.a12*y + p.a13) / d,
		(p.a21*x + p.a22*y + p.a23) / d
}

// TransformPoints maps pairs of (x, y) coordinates in place.
// points must have even length: [x0, y0, x1, y1, ...].
func (p *Perspective) TransformPoints(points []float64) {
	for i := 0; i+1 < len(points); i += 2 {
		points[i], points[i+1] = p.Apply(points[i], points[i+1])
	}
}

// degenerate reports whether any two corners coincide or the quadrilateral
// has (near-)zero area.
func degenerate(q [4]aztecscope.Point) bool {
	const eps = 1e-9
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			dx := q[i].X - q[j].X
			dy := q[i].Y - q[j].Y
			if math.Abs(dx) < eps && math.Abs(dy) < eps {
				return true
			}
		}
	}
	// Shoelace area over the corner cycle.
	area := 0.0
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		area += q[i].X*q[j].Y - q[j].X*q[i].Y
	}
	return math.Abs(area/2) < eps
}

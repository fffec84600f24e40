package griffine

import "math/big"

// A Transformer maps grid space to model space and back. Any value
// exposing a forward map, an inverse map, and the six affine coefficients
// can be supplied wherever a transform is expected; [Affine] is the
// concrete implementation provided by this package.
type Transformer interface {
	// Forward maps the possibly fractional grid space coordinate
	// (col, row) to model space.
	Forward(col, row float64) (x, y float64)
	// Inverse maps the model space coordinate (x, y) to grid space.
	Inverse(x, y float64) (col, row float64, err error)
	// Coefficients returns the six coefficients a, b, c, d, e, f such
	// that x = a*col + b*row + c and y = d*col + e*row + f.
	Coefficients() (a, b, c, d, e, f float64)
}

// An Affine is a six-parameter affine transform from grid space to model
// space:
//
//	x = A*col + B*row + C
//	y = D*col + E*row + F
//
// C and F are the model space position of the grid's top left corner; A
// and E are the cell width and height in model space. Transforms are
// evaluated at extended precision and rounded to float64 once, so cell
// corners computed along different paths agree exactly.
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the transform mapping grid space to model space
// unchanged.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translation returns the transform offsetting grid space by (x, y).
func Translation(x, y float64) Affine {
	return Affine{A: 1, C: x, E: 1, F: y}
}

// Scale returns the transform scaling grid space by (sx, sy).
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

const prec = 128

func bigFloat(f float64) *big.Float {
	return big.NewFloat(f).SetPrec(prec)
}

// evaluate computes o + s1*v1 + s2*v2 at extended precision, rounding to
// float64 once.
func evaluate(s1, v1, s2, v2, o float64) float64 {
	acc := bigFloat(o)
	acc.Add(acc, bigFloat(s1).Mul(bigFloat(s1), bigFloat(v1)))
	acc.Add(acc, bigFloat(s2).Mul(bigFloat(s2), bigFloat(v2)))
	result, _ := acc.Float64()
	return result
}

// Forward maps the possibly fractional grid space coordinate (col, row) to
// model space.
func (a Affine) Forward(col, row float64) (float64, float64) {
	return evaluate(a.A, col, a.B, row, a.C), evaluate(a.D, col, a.E, row, a.F)
}

// Inverse maps the model space coordinate (x, y) to the possibly
// fractional grid space coordinate (col, row). It returns
// [ErrNotInvertible] if a is singular.
func (a Affine) Inverse(x, y float64) (float64, float64, error) {
	det := bigFloat(a.A).Mul(bigFloat(a.A), bigFloat(a.E))
	det.Sub(det, bigFloat(a.B).Mul(bigFloat(a.B), bigFloat(a.D)))
	if det.Sign() == 0 {
		return 0, 0, ErrNotInvertible
	}

	dx := bigFloat(x)
	dx.Sub(dx, bigFloat(a.C))
	dy := bigFloat(y)
	dy.Sub(dy, bigFloat(a.F))

	// col = (e*dx - b*dy) / det, row = (a*dy - d*dx) / det.
	colNum := bigFloat(a.E).Mul(bigFloat(a.E), dx)
	colNum.Sub(colNum, bigFloat(a.B).Mul(bigFloat(a.B), dy))
	rowNum := bigFloat(a.A).Mul(bigFloat(a.A), dy)
	rowNum.Sub(rowNum, bigFloat(a.D).Mul(bigFloat(a.D), dx))

	col, _ := colNum.Quo(colNum, det).Float64()
	row, _ := rowNum.Quo(rowNum, det).Float64()
	return col, row, nil
}

// Coefficients returns a's six coefficients.
func (a Affine) Coefficients() (float64, float64, float64, float64, float64, float64) {
	return a.A, a.B, a.C, a.D, a.E, a.F
}

// Determinant returns the determinant of a's linear part.
func (a Affine) Determinant() float64 {
	return a.A*a.E - a.B*a.D
}

// IsInvertible reports whether a can map model space back to grid space.
func (a Affine) IsInvertible() bool {
	return a.Determinant() != 0
}

// Invert returns the transform mapping model space to grid space, or
// [ErrNotInvertible] if a is singular.
func (a Affine) Invert() (Affine, error) {
	det := a.Determinant()
	if det == 0 {
		return Affine{}, ErrNotInvertible
	}
	inv := Affine{
		A: a.E / det,
		B: -a.B / det,
		D: -a.D / det,
		E: a.A / det,
	}
	inv.C, inv.F = inv.Forward(-a.C, -a.F)
	return inv, nil
}

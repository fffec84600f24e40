package griffine

import (
	"math/rand"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestAffine_Forward(t *testing.T) {
	a := Affine{A: 10, B: 0, C: 200000, D: 0, E: -10, F: 6100000}
	for _, tc := range []struct {
		col, row float64
		x, y     float64
	}{
		{col: 0, row: 0, x: 200000, y: 6100000},
		{col: 1, row: 1, x: 200010, y: 6099990},
		{col: 0.5, row: 0.5, x: 200005, y: 6099995},
		{col: 10000, row: 5000, x: 300000, y: 6050000},
	} {
		x, y := a.Forward(tc.col, tc.row)
		assert.Equal(t, tc.x, x)
		assert.Equal(t, tc.y, y)
	}
}

func TestAffine_Inverse(t *testing.T) {
	a := Affine{A: 10, B: 0, C: 200000, D: 0, E: -10, F: 6100000}
	for _, tc := range []struct {
		x, y     float64
		col, row float64
	}{
		{x: 200000, y: 6100000, col: 0, row: 0},
		{x: 200005, y: 6099995, col: 0.5, row: 0.5},
		{x: 300000, y: 6050000, col: 10000, row: 5000},
	} {
		col, row, err := a.Inverse(tc.x, tc.y)
		assert.NoError(t, err)
		assert.Equal(t, tc.col, col)
		assert.Equal(t, tc.row, row)
	}
}

func TestAffine_Inverse_Singular(t *testing.T) {
	a := Affine{A: 1, B: 2, D: 2, E: 4}
	assert.False(t, a.IsInvertible())
	_, _, err := a.Inverse(0, 0)
	assert.IsError(t, err, ErrNotInvertible)
	_, err = a.Invert()
	assert.IsError(t, err, ErrNotInvertible)
}

// Grid corners must survive a forward then inverse trip exactly, or cells
// on tile boundaries would resolve to a neighbor.
func TestAffine_RoundTripExact(t *testing.T) {
	transforms := []Affine{
		Identity(),
		Translation(200000, 6100000),
		Scale(25, -25),
		{A: 10, B: 0, C: 200000, D: 0, E: -10, F: 6100000},
		{A: 0, B: 10, C: 200000, D: 10, E: 0, F: 6100000}, // axis swap
	}
	r := rand.New(rand.NewSource(0))
	for _, a := range transforms {
		for i := 0; i < 1024; i++ {
			col := float64(r.Intn(10000))
			row := float64(r.Intn(5000))
			x, y := a.Forward(col, row)
			gotCol, gotRow, err := a.Inverse(x, y)
			assert.NoError(t, err)
			assert.Equal(t, col, gotCol)
			assert.Equal(t, row, gotRow)
		}
	}
}

func TestAffine_Invert(t *testing.T) {
	// Power-of-two scale so the inverted coefficients are exact.
	a := Affine{A: 8, B: 0, C: 200000, D: 0, E: -8, F: 6100000}
	inv, err := a.Invert()
	assert.NoError(t, err)
	col, row := inv.Forward(200008, 6099992)
	assert.Equal(t, 1.0, col)
	assert.Equal(t, 1.0, row)
}

func TestAffine_Constructors(t *testing.T) {
	x, y := Identity().Forward(3, 7)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 7.0, y)

	x, y = Translation(100, -200).Forward(3, 7)
	assert.Equal(t, 103.0, x)
	assert.Equal(t, -193.0, y)

	x, y = Scale(2, -4).Forward(3, 7)
	assert.Equal(t, 6.0, x)
	assert.Equal(t, -28.0, y)
}

func TestAffine_Coefficients(t *testing.T) {
	want := Affine{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	a, b, c, d, e, f := want.Coefficients()
	assert.Equal(t, want, Affine{A: a, B: b, C: c, D: d, E: e, F: f})
}

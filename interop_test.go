package griffine_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/paulmach/orb"

	"github.com/jkeifer/griffine"
)

// Any point-like value is accepted wherever a Point is expected; orb.Point
// satisfies the interchange interface with no adapter.
func TestPointInterchange(t *testing.T) {
	transform := griffine.Affine{A: 10, B: 0, C: 200000, D: 0, E: -10, F: 6100000}
	tiled, err := mustGrid(t, 10000, 5000).AddTransform(transform).TileBySize(1000, 1000)
	assert.NoError(t, err)

	point := orb.Point{225005, 6084995}

	cell, err := tiled.CellContaining(point)
	assert.NoError(t, err)
	assert.Equal(t, griffine.Cell{Col: 2500, Row: 1500}, cell.Cell)

	tile, err := tiled.TileContainingPoint(point)
	assert.NoError(t, err)
	assert.Equal(t, 2, tile.Col)
	assert.Equal(t, 1, tile.Row)

	assert.Equal(t, griffine.NewPoint(225005, 6084995), griffine.PointOf(point))
}

// The reverse direction: a Point's coordinate pair view is enough to build
// an external library's point type.
func TestPointInterchange_Reverse(t *testing.T) {
	cell, err := mustGrid(t, 10, 10).
		AddTransform(griffine.Translation(100, 100)).
		CellAt(3, 7)
	assert.NoError(t, err)
	centroid := cell.Centroid()
	assert.Equal(t, orb.Point{103.5, 107.5}, orb.Point{centroid.X(), centroid.Y()})
}

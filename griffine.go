// Package griffine models rectangular grids, tiled subdivisions of grids,
// and the mapping between integer grid space and continuous model space via
// an affine transform.
//
// A [Grid] addresses cells by (col, row), with col increasing rightward and
// row increasing downward from the top left corner. Tiling a grid produces a
// [TiledGrid] whose cells are [Tile] values, each of which is itself a grid.
// Attaching a transform produces an [AffineGrid] or [TiledAffineGrid], whose
// cells and tiles know their positions in model space. Tiling and attaching
// a transform commute.
//
// All values are immutable after construction and safe to share between
// goroutines. The package performs no I/O and has no awareness of coordinate
// reference systems; transforms are used exactly as supplied.
package griffine

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a cell, tile, or point falls outside
	// the addressable extent of a grid.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidGrid is returned when a grid dimension is less than 1.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrInvalidTiling is returned when a grid cannot be partitioned by the
	// requested tile size or into the requested tile grid shape.
	ErrInvalidTiling = errors.New("invalid tiling")

	// ErrNotInvertible is returned when a singular transform is asked to
	// map model space back to grid space.
	ErrNotInvertible = errors.New("transform is not invertible")
)

// A Pointer is anything that reports an (x, y) coordinate pair in model
// space. It is the interchange seam with external geometry libraries: any
// point-like value satisfying it is accepted wherever a [Point] would be.
type Pointer interface {
	X() float64
	Y() float64
}

// A Point is an immutable coordinate in model space. Points are comparable
// with == and equality is exact.
type Point struct {
	x float64
	y float64
}

// NewPoint returns the Point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{x: x, y: y}
}

// PointOf returns the Point with p's coordinates.
func PointOf(p Pointer) Point {
	return Point{x: p.X(), y: p.Y()}
}

func (p Point) X() float64 { return p.x }

func (p Point) Y() float64 { return p.y }

// XY returns p's coordinates as an (x, y) pair.
func (p Point) XY() (float64, float64) { return p.x, p.y }

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

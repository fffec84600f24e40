package griffine

import (
	"fmt"
	"math"
)

// An AffineGrid is a grid whose cells are mapped to model space by a
// transform. The transform is shared, not copied; transforms are stateless
// so sharing is safe.
type AffineGrid struct {
	Grid
	transform Transformer
}

// Transform returns the transform mapping ag's grid space to model space.
func (ag AffineGrid) Transform() Transformer { return ag.transform }

// AddTransform returns a grid over the same extent mapped by t instead of
// ag's current transform.
func (ag AffineGrid) AddTransform(t Transformer) AffineGrid {
	return AffineGrid{Grid: ag.Grid, transform: t}
}

// CellAt returns the affine cell at (col, row).
func (ag AffineGrid) CellAt(col, row int) (AffineCell, error) {
	c, err := ag.Grid.CellAt(col, row)
	if err != nil {
		return AffineCell{}, err
	}
	return AffineCell{Cell: c, grid: ag}, nil
}

// PointAt maps the possibly fractional grid space coordinate (col, row) to
// model space.
func (ag AffineGrid) PointAt(col, row float64) Point {
	x, y := ag.transform.Forward(col, row)
	return Point{x: x, y: y}
}

// CellContaining returns the cell whose footprint contains p. Footprints
// are half open: a point exactly on the boundary between cells belongs to
// the cell below and to the right. Points outside the grid's footprint are
// rejected with [ErrOutOfBounds].
func (ag AffineGrid) CellContaining(p Pointer) (AffineCell, error) {
	fcol, frow, err := ag.transform.Inverse(p.X(), p.Y())
	if err != nil {
		return AffineCell{}, err
	}
	c := Cell{Col: int(math.Floor(fcol)), Row: int(math.Floor(frow))}
	if !ag.Grid.Contains(c) {
		return AffineCell{}, fmt.Errorf("%w: point (%v, %v) outside grid footprint",
			ErrOutOfBounds, p.X(), p.Y())
	}
	return AffineCell{Cell: c, grid: ag}, nil
}

// Origin returns the model space position of c's top left corner. Origin,
// Centroid, and Antiorigin are pure functions of the transform and c's
// address; c is not bounds checked.
func (ag AffineGrid) Origin(c Cell) Point {
	return ag.PointAt(float64(c.Col), float64(c.Row))
}

// Centroid returns the model space position of c's center.
func (ag AffineGrid) Centroid(c Cell) Point {
	return ag.PointAt(float64(c.Col)+0.5, float64(c.Row)+0.5)
}

// Antiorigin returns the model space position of c's bottom right corner.
func (ag AffineGrid) Antiorigin(c Cell) Point {
	return ag.PointAt(float64(c.Col)+1, float64(c.Row)+1)
}

// TileBy partitions ag into tiles the size of tile, as [Grid.TileBy].
func (ag AffineGrid) TileBy(tile Grid) (TiledAffineGrid, error) {
	return ag.TileBySize(tile.cols, tile.rows)
}

// TileBySize is [AffineGrid.TileBy] with a raw (cols, rows) tile size.
func (ag AffineGrid) TileBySize(tileCols, tileRows int) (TiledAffineGrid, error) {
	tg, err := ag.Grid.TileBySize(tileCols, tileRows)
	if err != nil {
		return TiledAffineGrid{}, err
	}
	return tg.AddTransform(ag.transform), nil
}

// TileInto partitions ag into a tile grid of exactly layout's shape, as
// [Grid.TileInto].
func (ag AffineGrid) TileInto(layout Grid) (TiledAffineGrid, error) {
	tg, err := ag.Grid.TileInto(layout)
	if err != nil {
		return TiledAffineGrid{}, err
	}
	return tg.AddTransform(ag.transform), nil
}

// An AffineCell is a cell of an [AffineGrid]. It is computed on lookup and
// carries the grid whose transform places it in model space.
type AffineCell struct {
	Cell
	grid AffineGrid
}

// Origin returns the model space position of the cell's top left corner.
func (c AffineCell) Origin() Point {
	return c.grid.Origin(c.Cell)
}

// Centroid returns the model space position of the cell's center.
func (c AffineCell) Centroid() Point {
	return c.grid.Centroid(c.Cell)
}

// Antiorigin returns the model space position of the cell's bottom right
// corner.
func (c AffineCell) Antiorigin() Point {
	return c.grid.Antiorigin(c.Cell)
}

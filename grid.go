package griffine

import "fmt"

// A Cell is the integer address of one grid cell. Col increases rightward
// and Row increases downward from the grid's top left corner. A Cell does
// not reference its grid; its address is only meaningful within the bounds
// of the grid that produced it.
type Cell struct {
	Col int
	Row int
}

// A Grid is a rectangular collection of cells addressed by (col, row).
// Cells are computed on lookup, never stored. Throughout this package,
// coordinate arguments are ordered (col, row) and size pairs are ordered
// (cols, rows).
type Grid struct {
	cols int
	rows int
}

// NewGrid returns a Grid with the given dimensions. Both dimensions must
// be 1 or greater.
func NewGrid(cols, rows int) (Grid, error) {
	if cols < 1 {
		return Grid{}, fmt.Errorf("%w: cols must be 1 or greater, got %d", ErrInvalidGrid, cols)
	}
	if rows < 1 {
		return Grid{}, fmt.Errorf("%w: rows must be 1 or greater, got %d", ErrInvalidGrid, rows)
	}
	return Grid{cols: cols, rows: rows}, nil
}

func (g Grid) Cols() int { return g.cols }

func (g Grid) Rows() int { return g.rows }

// Size returns g's dimensions as (cols, rows).
func (g Grid) Size() (int, int) { return g.cols, g.rows }

// CellCount returns the number of cells in g.
func (g Grid) CellCount() int { return g.cols * g.rows }

// Contains reports whether c addresses a cell within g.
func (g Grid) Contains(c Cell) bool {
	return 0 <= c.Col && c.Col < g.cols && 0 <= c.Row && c.Row < g.rows
}

// CellAt returns the cell at (col, row), or [ErrOutOfBounds] if the
// address is outside [0, cols) x [0, rows).
func (g Grid) CellAt(col, row int) (Cell, error) {
	c := Cell{Col: col, Row: row}
	if !g.Contains(c) {
		return Cell{}, fmt.Errorf("%w: cell (%d, %d) outside %dx%d grid", ErrOutOfBounds, col, row, g.cols, g.rows)
	}
	return c, nil
}

// LinearIndexOf returns the index of c in the row-major linearization of
// g, as would be given by reshaping g into a one-dimensional array of
// length cols*rows.
func (g Grid) LinearIndexOf(c Cell) (int, error) {
	if !g.Contains(c) {
		return 0, fmt.Errorf("%w: cell (%d, %d) outside %dx%d grid", ErrOutOfBounds, c.Col, c.Row, g.cols, g.rows)
	}
	return g.cols*c.Row + c.Col, nil
}

// CellAtLinearIndex returns the cell at index i in the row-major
// linearization of g.
func (g Grid) CellAtLinearIndex(i int) (Cell, error) {
	if i < 0 || i >= g.CellCount() {
		return Cell{}, fmt.Errorf("%w: linear index %d outside %dx%d grid", ErrOutOfBounds, i, g.cols, g.rows)
	}
	return Cell{Col: i % g.cols, Row: i / g.cols}, nil
}

// TileBy partitions g into tiles the size of tile. The resulting tile grid
// has ceil(cols/tile.cols) tile columns and ceil(rows/tile.rows) tile
// rows; tiles in the last tile column or row are truncated to g's extent.
// Tiles larger than g in either dimension are rejected with
// [ErrInvalidTiling].
func (g Grid) TileBy(tile Grid) (TiledGrid, error) {
	return g.TileBySize(tile.cols, tile.rows)
}

// TileBySize is [Grid.TileBy] with a raw (cols, rows) tile size.
func (g Grid) TileBySize(tileCols, tileRows int) (TiledGrid, error) {
	nominal, err := NewGrid(tileCols, tileRows)
	if err != nil {
		return TiledGrid{}, err
	}
	if tileCols > g.cols || tileRows > g.rows {
		return TiledGrid{}, fmt.Errorf("%w: cannot tile %dx%d grid with %dx%d tiles",
			ErrInvalidTiling, g.cols, g.rows, tileCols, tileRows)
	}
	tiles := Grid{
		cols: (g.cols + tileCols - 1) / tileCols,
		rows: (g.rows + tileRows - 1) / tileRows,
	}
	return TiledGrid{Grid: tiles, base: g, nominal: nominal}, nil
}

// TileInto partitions g so that the resulting tile grid has exactly
// layout's shape. Not every shape is reachable: the tile size in each
// dimension must be the smallest span whose ceil quotient reproduces the
// requested count. Unreachable shapes are rejected with
// [ErrInvalidTiling].
func (g Grid) TileInto(layout Grid) (TiledGrid, error) {
	if layout.cols < 1 || layout.rows < 1 {
		return TiledGrid{}, fmt.Errorf("%w: tile grid dimensions must be 1 or greater", ErrInvalidTiling)
	}
	tileCols, okCols := tileSpan(g.cols, layout.cols)
	tileRows, okRows := tileSpan(g.rows, layout.rows)
	if !okCols || !okRows {
		return TiledGrid{}, fmt.Errorf("%w: cannot tile %dx%d grid into a %dx%d tile grid",
			ErrInvalidTiling, g.cols, g.rows, layout.cols, layout.rows)
	}
	return g.TileBySize(tileCols, tileRows)
}

// tileSpan returns the tile span partitioning gridSpan into tileCount
// tiles, and whether such a span exists.
func tileSpan(gridSpan, tileCount int) (int, bool) {
	span := (gridSpan + tileCount - 1) / tileCount
	if (gridSpan+span-1)/span != tileCount {
		return 0, false
	}
	return span, true
}

// AddTransform returns an AffineGrid mapping g's cells through t. The
// transform is used as supplied and is not validated; a singular transform
// only fails at point lookup time.
func (g Grid) AddTransform(t Transformer) AffineGrid {
	return AffineGrid{Grid: g, transform: t}
}

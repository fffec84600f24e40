package griffine

import "fmt"

// A Tile is a cell of a [TiledGrid] that is itself a grid over part of the
// tiled base grid. Its embedded Cell addresses the tile within the tile
// grid; its embedded Grid is the tile's actual size, which is smaller than
// the nominal size for truncated tiles in the last tile column or row.
type Tile struct {
	Cell
	Grid
	nominal Grid
}

// NominalSize returns the requested tile size as (cols, rows). The actual
// size, returned by Size, may be smaller at the base grid's far edges.
func (t Tile) NominalSize() (int, int) {
	return t.nominal.cols, t.nominal.rows
}

// Partial reports whether t is truncated against the base grid's far
// edges.
func (t Tile) Partial() bool {
	return t.Grid != t.nominal
}

// Offset returns the base grid address of t's top left cell.
func (t Tile) Offset() (col, row int) {
	return t.Col * t.nominal.cols, t.Row * t.nominal.rows
}

// GlobalCellAt returns the base grid cell at the tile-local address
// (col, row).
func (t Tile) GlobalCellAt(col, row int) (Cell, error) {
	local, err := t.Grid.CellAt(col, row)
	if err != nil {
		return Cell{}, err
	}
	offCol, offRow := t.Offset()
	return Cell{Col: offCol + local.Col, Row: offRow + local.Row}, nil
}

// A TiledGrid is a grid whose cells are tiles. Its own dimensions are
// those of the tile grid; the grid that was tiled is available via Base.
// The tiles partition the base grid exactly: every base cell belongs to
// exactly one tile.
type TiledGrid struct {
	Grid
	base    Grid
	nominal Grid
}

// Base returns the grid that was tiled.
func (tg TiledGrid) Base() Grid { return tg.base }

// NominalTileSize returns the nominal tile size as (cols, rows).
func (tg TiledGrid) NominalTileSize() (int, int) {
	return tg.nominal.cols, tg.nominal.rows
}

// TileAt returns the tile at (col, row) in the tile grid.
func (tg TiledGrid) TileAt(col, row int) (Tile, error) {
	pos, err := tg.Grid.CellAt(col, row)
	if err != nil {
		return Tile{}, err
	}
	return Tile{Cell: pos, Grid: tg.tileExtent(pos), nominal: tg.nominal}, nil
}

// TileContaining returns the tile containing the base grid cell c.
func (tg TiledGrid) TileContaining(c Cell) (Tile, error) {
	if !tg.base.Contains(c) {
		return Tile{}, fmt.Errorf("%w: cell (%d, %d) outside %dx%d grid",
			ErrOutOfBounds, c.Col, c.Row, tg.base.cols, tg.base.rows)
	}
	return tg.TileAt(c.Col/tg.nominal.cols, c.Row/tg.nominal.rows)
}

// AddTransform returns a TiledAffineGrid whose tiles carry transforms
// derived from t at each tile's offset. Tiling and adding a transform
// commute: tiling an [AffineGrid] yields the same value.
func (tg TiledGrid) AddTransform(t Transformer) TiledAffineGrid {
	return TiledAffineGrid{TiledGrid: tg, transform: t}
}

// tileExtent returns the actual size of the tile at pos, truncating the
// nominal size against the base grid's far edges.
func (tg TiledGrid) tileExtent(pos Cell) Grid {
	extent := tg.nominal
	if spare := tg.base.cols - pos.Col*tg.nominal.cols; spare < extent.cols {
		extent.cols = spare
	}
	if spare := tg.base.rows - pos.Row*tg.nominal.rows; spare < extent.rows {
		extent.rows = spare
	}
	return extent
}

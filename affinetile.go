package griffine

// A TiledAffineGrid is a tiled grid whose tiles carry transforms derived
// from a single parent transform. It is simultaneously an affine grid over
// the whole base extent, available via Base.
type TiledAffineGrid struct {
	TiledGrid
	transform Transformer
}

// Transform returns the parent transform over the whole extent.
func (tg TiledAffineGrid) Transform() Transformer { return tg.transform }

// AddTransform returns a tiled grid over the same extent mapped by t
// instead of tg's current transform.
func (tg TiledAffineGrid) AddTransform(t Transformer) TiledAffineGrid {
	return tg.TiledGrid.AddTransform(t)
}

// Base returns the whole base extent as a single affine grid.
func (tg TiledAffineGrid) Base() AffineGrid {
	return tg.TiledGrid.base.AddTransform(tg.transform)
}

// TileAt returns the affine tile at (col, row) in the tile grid.
func (tg TiledAffineGrid) TileAt(col, row int) (AffineTile, error) {
	tile, err := tg.TiledGrid.TileAt(col, row)
	if err != nil {
		return AffineTile{}, err
	}
	return AffineTile{Tile: tile, transform: tileTransform(tg.transform, tile)}, nil
}

// TileContaining returns the affine tile containing the base grid cell c.
func (tg TiledAffineGrid) TileContaining(c Cell) (AffineTile, error) {
	tile, err := tg.TiledGrid.TileContaining(c)
	if err != nil {
		return AffineTile{}, err
	}
	return AffineTile{Tile: tile, transform: tileTransform(tg.transform, tile)}, nil
}

// TileContainingPoint returns the affine tile whose footprint contains p.
func (tg TiledAffineGrid) TileContainingPoint(p Pointer) (AffineTile, error) {
	c, err := tg.Base().CellContaining(p)
	if err != nil {
		return AffineTile{}, err
	}
	return tg.TileContaining(c.Cell)
}

// CellContaining returns the base grid cell whose footprint contains p.
func (tg TiledAffineGrid) CellContaining(p Pointer) (AffineCell, error) {
	return tg.Base().CellContaining(p)
}

// tileTransform derives a tile-local transform from the parent transform:
// the linear coefficients are unchanged and the translation moves to the
// tile's offset, so tile-local coordinates map to the same model space
// positions as the corresponding base grid coordinates.
func tileTransform(t Transformer, tile Tile) Affine {
	a, b, _, d, e, _ := t.Coefficients()
	offCol, offRow := tile.Offset()
	c, f := t.Forward(float64(offCol), float64(offRow))
	return Affine{A: a, B: b, C: c, D: d, E: e, F: f}
}

// An AffineTile is a tile of a [TiledAffineGrid]: a tile that is itself an
// affine grid over its own extent, with a transform anchored at the tile's
// offset.
type AffineTile struct {
	Tile
	transform Transformer
}

// Transform returns the tile-local transform.
func (t AffineTile) Transform() Transformer { return t.transform }

// Base returns the tile as a single affine grid over its actual extent.
func (t AffineTile) Base() AffineGrid {
	return t.Tile.Grid.AddTransform(t.transform)
}

// CellAt returns the affine cell at the tile-local address (col, row).
func (t AffineTile) CellAt(col, row int) (AffineCell, error) {
	return t.Base().CellAt(col, row)
}

// CellContaining returns the tile-local affine cell whose footprint
// contains p.
func (t AffineTile) CellContaining(p Pointer) (AffineCell, error) {
	return t.Base().CellContaining(p)
}

// Origin returns the model space position of the tile's top left corner.
func (t AffineTile) Origin() Point {
	return t.Base().PointAt(0, 0)
}

// Centroid returns the model space position of the center of the tile's
// actual extent.
func (t AffineTile) Centroid() Point {
	return t.Base().PointAt(float64(t.Grid.cols)/2, float64(t.Grid.rows)/2)
}

// Antiorigin returns the model space position of the bottom right corner
// of the tile's actual extent.
func (t AffineTile) Antiorigin() Point {
	return t.Base().PointAt(float64(t.Grid.cols), float64(t.Grid.rows))
}

package tile

// Grid partitions a width x height canvas into tiles of tileW x tileH,
// with edge tiles truncated where the canvas is not evenly divisible.
// Grid itself holds no mutable per-tile state; it is safe for concurrent
// read access once built.
type Grid struct {
	tiles  []Tile
	tilesX int
	tilesY int
	width  int
	height int
	tileW  int
	tileH  int
}

// NewGrid builds a tile grid for a width x height canvas using tileW x
// tileH tiles. Non-positive canvas dimensions yield an empty grid.
// Non-positive tile dimensions fall back to DefaultWidth/DefaultHeight.
func NewGrid(width, height, tileW, tileH int) *Grid {
	if tileW <= 0 {
		tileW = DefaultWidth
	}
	if tileH <= 0 {
		tileH = DefaultHeight
	}
	g := &Grid{width: width, height: height, tileW: tileW, tileH: tileH}
	if width <= 0 || height <= 0 {
		return g
	}

	g.tilesX = (width + tileW - 1) / tileW
	g.tilesY = (height + tileH - 1) / tileH
	g.tiles = make([]Tile, g.tilesX*g.tilesY)

	for ty := 0; ty < g.tilesY; ty++ {
		for tx := 0; tx < g.tilesX; tx++ {
			w := tileW
			if (tx+1)*tileW > width {
				w = width - tx*tileW
			}
			h := tileH
			if (ty+1)*tileH > height {
				h = height - ty*tileH
			}
			g.tiles[ty*g.tilesX+tx] = Tile{
				X: tx, Y: ty,
				Width: w, Height: h,
				OriginX: tx * tileW, OriginY: ty * tileH,
			}
		}
	}
	return g
}

// TileAt returns the tile at grid coordinates (tx, ty), or nil if out of
// bounds.
func (g *Grid) TileAt(tx, ty int) *Tile {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return nil
	}
	return &g.tiles[ty*g.tilesX+tx]
}

// TileAtPixel returns the tile containing canvas pixel (px, py), or nil if
// out of bounds.
func (g *Grid) TileAtPixel(px, py int) *Tile {
	if px < 0 || px >= g.width || py < 0 || py >= g.height {
		return nil
	}
	return g.TileAt(px/g.tileW, py/g.tileH)
}

// TilesInRect returns every tile intersecting the pixel rectangle
// (x, y, w, h), clamped to the canvas bounds.
func (g *Grid) TilesInRect(x, y, w, h int) []*Tile {
	if w <= 0 || h <= 0 {
		return nil
	}
	x1, y1 := max(x, 0), max(y, 0)
	x2, y2 := min(x+w, g.width), min(y+h, g.height)
	if x1 >= x2 || y1 >= y2 {
		return nil
	}

	tx1, ty1 := x1/g.tileW, y1/g.tileH
	tx2, ty2 := (x2-1)/g.tileW, (y2-1)/g.tileH

	result := make([]*Tile, 0, (tx2-tx1+1)*(ty2-ty1+1))
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			if t := g.TileAt(tx, ty); t != nil {
				result = append(result, t)
			}
		}
	}
	return result
}

// TileCount returns the total number of tiles in the grid.
func (g *Grid) TileCount() int { return len(g.tiles) }

// TilesX returns the number of tile columns.
func (g *Grid) TilesX() int { return g.tilesX }

// TilesY returns the number of tile rows.
func (g *Grid) TilesY() int { return g.tilesY }

// Width returns the canvas width in pixels.
func (g *Grid) Width() int { return g.width }

// Height returns the canvas height in pixels.
func (g *Grid) Height() int { return g.height }

// All returns every tile in the grid, in row-major order. The returned
// slice must not be modified.
func (g *Grid) All() []Tile { return g.tiles }

// ForEach calls fn for each tile in row-major order.
func (g *Grid) ForEach(fn func(t *Tile)) {
	for i := range g.tiles {
		fn(&g.tiles[i])
	}
}

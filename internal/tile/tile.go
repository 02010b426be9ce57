// Package tile implements the tiled, multi-threaded command execution
// backbone of the rasterizer: the canvas is partitioned into a grid of
// tiles, each owned by exactly one worker goroutine and fed through its
// own bounded FIFO queue, so commands submitted against a given tile are
// always executed in submission order while distinct tiles render
// concurrently.
package tile

// Default tile dimensions, chosen to balance per-tile work against the
// number of tiles spawned for a typical canvas. Callers may pick any other
// size via Grid's tileW/tileH constructor arguments.
const (
	DefaultWidth  = 256
	DefaultHeight = 64
)

// Tile describes one rectangular region of the canvas in pixel space.
// A Tile does not own pixel storage: workers write directly into the
// shared framebuffer, relying on tiles never overlapping.
type Tile struct {
	// X, Y are the tile's column/row index in the grid (0-based).
	X, Y int

	// Width, Height are this tile's actual pixel dimensions. Edge tiles may
	// be smaller than the grid's nominal tile size.
	Width, Height int

	// OriginX, OriginY are this tile's top-left pixel coordinates in canvas
	// space.
	OriginX, OriginY int
}

// Bounds returns the tile's pixel rectangle in canvas space as
// (x, y, width, height).
func (t *Tile) Bounds() (x, y, w, h int) {
	return t.OriginX, t.OriginY, t.Width, t.Height
}

// Contains reports whether canvas-space pixel (cx, cy) falls within t.
func (t *Tile) Contains(cx, cy int) bool {
	return cx >= t.OriginX && cx < t.OriginX+t.Width &&
		cy >= t.OriginY && cy < t.OriginY+t.Height
}

// Local converts canvas-space coordinates to tile-local coordinates.
// ok is false if (cx, cy) is outside the tile.
func (t *Tile) Local(cx, cy int) (lx, ly int, ok bool) {
	lx, ly = cx-t.OriginX, cy-t.OriginY
	if lx < 0 || lx >= t.Width || ly < 0 || ly >= t.Height {
		return 0, 0, false
	}
	return lx, ly, true
}

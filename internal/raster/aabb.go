// Package raster implements per-pixel rasterization of points, lines, and
// triangles: edge-function barycentric triangle fill, Cohen-Sutherland
// line clipping with a DDA pixel walk, and axis-aligned bounding box
// utilities used to scope a primitive to the tiles it touches.
package raster

// AABB is an axis-aligned bounding box in integer pixel space, with Max
// exclusive (matching image.Rectangle conventions).
type AABB struct {
	MinX, MinY, MaxX, MaxY int
}

// Empty reports whether the box contains no pixels.
func (b AABB) Empty() bool { return b.MinX >= b.MaxX || b.MinY >= b.MaxY }

// Intersect returns the overlap of b and o. The result is Empty if they
// don't overlap.
func (b AABB) Intersect(o AABB) AABB {
	r := AABB{
		MinX: max(b.MinX, o.MinX),
		MinY: max(b.MinY, o.MinY),
		MaxX: min(b.MaxX, o.MaxX),
		MaxY: min(b.MaxY, o.MaxY),
	}
	if r.Empty() {
		return AABB{}
	}
	return r
}

// Intersects reports whether b and o overlap.
func (b AABB) Intersects(o AABB) bool {
	return !b.Intersect(o).Empty()
}

// Clip clamps b to lie within [0,width) x [0,height).
func (b AABB) Clip(width, height int) AABB {
	return b.Intersect(AABB{MaxX: width, MaxY: height})
}

// FromTriangle returns the bounding box of the three screen-space points.
func FromTriangle(x0, y0, x1, y1, x2, y2 float32) AABB {
	minX := minF(x0, x1, x2)
	minY := minF(y0, y1, y2)
	maxX := maxF(x0, x1, x2)
	maxY := maxF(y0, y1, y2)
	return AABB{
		MinX: int(floor(minX)),
		MinY: int(floor(minY)),
		MaxX: int(ceil(maxX)) + 1,
		MaxY: int(ceil(maxY)) + 1,
	}
}

func minF(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxF(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func floor(f float32) float32 {
	i := float32(int(f))
	if f < i {
		return i - 1
	}
	return i
}

func ceil(f float32) float32 {
	i := float32(int(f))
	if f > i {
		return i + 1
	}
	return i
}

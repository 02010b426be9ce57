package raster

// EdgeFunction evaluates the signed area of the parallelogram spanned by
// (bx-ax, by-ay) and (px-ax, py-ay). Its sign tells which side of the
// directed edge a->b the point p falls on; for a consistently wound
// triangle the three edge values of an interior point share one sign.
func EdgeFunction(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// Fragment is one covered pixel produced by rasterizing a primitive, with
// barycentric weights for attribute interpolation.
type Fragment struct {
	X, Y int
	// W0, W1, W2 are the barycentric weights of vertices 0, 1, 2
	// respectively, summing to 1 for points inside the triangle.
	W0, W1, W2 float32
}

// Triangle rasterizes the screen-space triangle (x0,y0)-(x1,y1)-(x2,y2)
// restricted to clip, calling emit for every covered pixel center with its
// barycentric weights. Winding order does not matter: both CW and CCW
// triangles are filled the same way. Edge ties (weight exactly zero) are
// accepted as covered, so pixels on an edge shared by two adjacent
// triangles may be emitted by both; no top-left fill rule is applied.
func Triangle(x0, y0, x1, y1, x2, y2 float32, clip AABB, emit func(Fragment)) {
	bounds := FromTriangle(x0, y0, x1, y1, x2, y2).Intersect(clip)
	if bounds.Empty() {
		return
	}

	area := EdgeFunction(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return // degenerate triangle
	}
	invArea := 1 / area
	positive := area > 0

	// Vertex order is never swapped: W0/W1/W2 must stay bound to the
	// caller's v0/v1/v2 so attribute interpolation in the caller lines up.
	// Instead the inside test's sign flips with the triangle's winding.
	for y := bounds.MinY; y < bounds.MaxY; y++ {
		py := float32(y) + 0.5
		for x := bounds.MinX; x < bounds.MaxX; x++ {
			px := float32(x) + 0.5

			w0 := EdgeFunction(x1, y1, x2, y2, px, py)
			w1 := EdgeFunction(x2, y2, x0, y0, px, py)
			w2 := EdgeFunction(x0, y0, x1, y1, px, py)

			if positive {
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
			} else {
				if w0 > 0 || w1 > 0 || w2 > 0 {
					continue
				}
			}

			emit(Fragment{
				X: x, Y: y,
				W0: w0 * invArea,
				W1: w1 * invArea,
				W2: w2 * invArea,
			})
		}
	}
}

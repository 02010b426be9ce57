package rita

// PrimitiveMode selects how Draw groups a vertex stream into drawable
// primitives.
type PrimitiveMode uint8

const (
	// Points draws every vertex as an independent point.
	Points PrimitiveMode = iota
	// Lines draws each disjoint pair of vertices as a line segment.
	Lines
	// LineStrip draws a connected line through every vertex in order.
	LineStrip
	// Triangles draws each disjoint triple of vertices as a triangle.
	Triangles
	// TriangleStrip draws a connected strip of triangles sharing edges,
	// alternating winding every other triangle.
	TriangleStrip
	// TriangleFan draws a fan of triangles sharing the first vertex.
	TriangleFan
)

// String returns the primitive mode's name.
func (m PrimitiveMode) String() string {
	switch m {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineStrip:
		return "LineStrip"
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	default:
		return "Unknown"
	}
}

// isTriangleMode reports whether m assembles 3-vertex primitives.
func (m PrimitiveMode) isTriangleMode() bool {
	return m == Triangles || m == TriangleStrip || m == TriangleFan
}

// isLineMode reports whether m assembles 2-vertex primitives.
func (m PrimitiveMode) isLineMode() bool {
	return m == Lines || m == LineStrip
}

// assemblePrimitives groups the n elements of a vertex/fragment stream
// according to mode and invokes emit once per assembled primitive with the
// stream indices involved: 1 index for Points, 2 for Lines/LineStrip, 3
// for the triangle modes (already re-ordered so the winding the caller
// sees is consistent: for TriangleStrip every other triangle swaps its
// last two indices to preserve winding, and TriangleFan always orders
// (0, i, i+1)). Incomplete trailing elements are dropped.
func assemblePrimitives(mode PrimitiveMode, n int, emit func(idx ...int)) {
	switch mode {
	case Points:
		for i := 0; i < n; i++ {
			emit(i)
		}
	case Lines:
		for i := 0; i+1 < n; i += 2 {
			emit(i, i+1)
		}
	case LineStrip:
		for i := 0; i+1 < n; i++ {
			emit(i, i+1)
		}
	case Triangles:
		for i := 0; i+2 < n; i += 3 {
			emit(i, i+1, i+2)
		}
	case TriangleStrip:
		for i := 0; i+2 < n; i++ {
			if i%2 == 0 {
				emit(i, i+1, i+2)
			} else {
				emit(i, i+2, i+1)
			}
		}
	case TriangleFan:
		if n < 3 {
			return
		}
		for i := 1; i+1 < n; i++ {
			emit(0, i, i+1)
		}
	}
}

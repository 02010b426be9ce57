// Package mathutil implements the fixed-size vector and matrix math used by
// the rasterizer pipeline: 2/3/4-component float32 vectors, 3x3/4x4
// column-major matrices, and the transform builders (LookAt, Perspective,
// Orthographic, Rotate) a vertex stage needs.
package mathutil

import "math"

// Vec2 is a 2-component vector of float32.
type Vec2 [2]float32

// Vec3 is a 3-component vector of float32.
type Vec3 [3]float32

// Vec4 is a 4-component vector of float32.
type Vec4 [4]float32

// Add sets v to contain l + r.
func (v *Vec2) Add(l, r *Vec2) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *Vec2) Sub(l, r *Vec2) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Lerp sets v to contain l + t*(r-l).
func (v *Vec2) Lerp(l, r *Vec2, t float32) {
	for i := range v {
		v[i] = l[i] + t*(r[i]-l[i])
	}
}

// Add sets v to contain l + r.
func (v *Vec3) Add(l, r *Vec3) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *Vec3) Sub(l, r *Vec3) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s*w.
func (v *Vec3) Scale(s float32, w *Vec3) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v . w.
func (v *Vec3) Dot(w *Vec3) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *Vec3) Len() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Norm sets v to contain w normalized. If w is the zero vector, v becomes
// the zero vector.
func (v *Vec3) Norm(w *Vec3) {
	l := w.Len()
	if l == 0 {
		*v = Vec3{}
		return
	}
	v.Scale(1/l, w)
}

// Cross sets v to contain l x r.
func (v *Vec3) Cross(l, r *Vec3) {
	x := l[1]*r[2] - l[2]*r[1]
	y := l[2]*r[0] - l[0]*r[2]
	z := l[0]*r[1] - l[1]*r[0]
	v[0], v[1], v[2] = x, y, z
}

// Lerp sets v to contain l + t*(r-l), component-wise.
func (v *Vec3) Lerp(l, r *Vec3, t float32) {
	for i := range v {
		v[i] = l[i] + t*(r[i]-l[i])
	}
}

// Reflect sets v to contain i reflected about normal n (n assumed normalized).
func (v *Vec3) Reflect(i, n *Vec3) {
	d := 2 * i.Dot(n)
	var scaled Vec3
	scaled.Scale(d, n)
	v.Sub(i, &scaled)
}

// MulM3 sets v to contain m . w.
func (v *Vec3) MulM3(m *Mat3, w *Vec3) {
	var r Vec3
	for i := range r {
		for j := range r {
			r[i] += m[j][i] * w[j]
		}
	}
	*v = r
}

// Add sets v to contain l + r.
func (v *Vec4) Add(l, r *Vec4) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *Vec4) Sub(l, r *Vec4) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s*w.
func (v *Vec4) Scale(s float32, w *Vec4) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Lerp sets v to contain l + t*(r-l), component-wise.
func (v *Vec4) Lerp(l, r *Vec4, t float32) {
	for i := range v {
		v[i] = l[i] + t*(r[i]-l[i])
	}
}

// MulM4 sets v to contain m . w.
func (v *Vec4) MulM4(m *Mat4, w *Vec4) {
	var r Vec4
	for i := range r {
		for j := range r {
			r[i] += m[j][i] * w[j]
		}
	}
	*v = r
}

// XYZ returns the first three components of v.
func (v *Vec4) XYZ() Vec3 { return Vec3{v[0], v[1], v[2]} }

// Clamp returns x clamped to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

package mathutil

// Mat3 is a column-major 3x3 matrix: Mat3[col][row].
type Mat3 [3]Vec3

// Mat4 is a column-major 4x4 matrix: Mat4[col][row].
type Mat4 [4]Vec4

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul sets m to contain a . b.
func (m *Mat4) Mul(a, b *Mat4) {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k][row] * b[c][k]
			}
			r[c][row] = sum
		}
	}
	*m = r
}

// Mul sets m to contain a . b.
func (m *Mat3) Mul(a, b *Mat3) {
	var r Mat3
	for c := 0; c < 3; c++ {
		for row := 0; row < 3; row++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += a[k][row] * b[c][k]
			}
			r[c][row] = sum
		}
	}
	*m = r
}

// Transpose sets m to contain the transpose of a.
func (m *Mat4) Transpose(a *Mat4) {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c][row] = a[row][c]
		}
	}
	*m = r
}

// Transpose sets m to contain the transpose of a.
func (m *Mat3) Transpose(a *Mat3) {
	var r Mat3
	for c := 0; c < 3; c++ {
		for row := 0; row < 3; row++ {
			r[c][row] = a[row][c]
		}
	}
	*m = r
}

// Upper3 returns the upper-left 3x3 of m (drops translation/projection).
func (m *Mat4) Upper3() Mat3 {
	return Mat3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// Invert sets m to contain the inverse of a. Returns false if a is singular,
// leaving m as the identity matrix.
func (m *Mat3) Invert(a *Mat3) bool {
	a00, a01, a02 := a[0][0], a[0][1], a[0][2]
	a10, a11, a12 := a[1][0], a[1][1], a[1][2]
	a20, a21, a22 := a[2][0], a[2][1], a[2][2]

	c00 := a11*a22 - a12*a21
	c01 := a12*a20 - a10*a22
	c02 := a10*a21 - a11*a20

	det := a00*c00 + a01*c01 + a02*c02
	if det == 0 {
		*m = Identity3()
		return false
	}
	invDet := 1 / det

	m[0] = Vec3{c00 * invDet, (a02*a21 - a01*a22) * invDet, (a01*a12 - a02*a11) * invDet}
	m[1] = Vec3{c01 * invDet, (a00*a22 - a02*a20) * invDet, (a02*a10 - a00*a12) * invDet}
	m[2] = Vec3{c02 * invDet, (a01*a20 - a00*a21) * invDet, (a00*a11 - a01*a10) * invDet}
	return true
}

// Translate returns a 4x4 translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity4()
	m[3] = Vec4{x, y, z, 1}
	return m
}

// Scale returns a 4x4 scale matrix.
func Scale(x, y, z float32) Mat4 {
	m := Identity4()
	m[0][0], m[1][1], m[2][2] = x, y, z
	return m
}

package mathutil

import "math"

// Rotate returns a 4x4 rotation matrix of angle radians about the given
// axis (need not be normalized).
func Rotate(axis Vec3, angle float32) Mat4 {
	var n Vec3
	n.Norm(&axis)
	s, c := math.Sincos(float64(angle))
	sf, cf := float32(s), float32(c)
	t := 1 - cf
	x, y, z := n[0], n[1], n[2]

	return Mat4{
		{t*x*x + cf, t*x*y + z*sf, t*x*z - y*sf, 0},
		{t*x*y - z*sf, t*y*y + cf, t*y*z + x*sf, 0},
		{t*x*z + y*sf, t*y*z - x*sf, t*z*z + cf, 0},
		{0, 0, 0, 1},
	}
}

// LookAt returns a 4x4 view matrix placing the camera at eye, looking
// toward center, with the given up direction.
func LookAt(eye, center, up Vec3) Mat4 {
	var f, s, u Vec3
	f.Sub(&center, &eye)
	f.Norm(&f)
	s.Cross(&f, &up)
	s.Norm(&s)
	u.Cross(&s, &f)

	return Mat4{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(&eye), -u.Dot(&eye), f.Dot(&eye), 1},
	}
}

// Perspective returns a 4x4 right-handed perspective projection matrix
// mapping view-space z in [-near,-far] to clip-space z in [-1,1]. fovY is
// in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	m := Mat4{}
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = (far + near) / (near - far)
	m[2][3] = -1
	m[3][2] = (2 * far * near) / (near - far)
	return m
}

// InfinitePerspective returns a perspective matrix with the far plane
// pushed to infinity, used when a far clip is undesirable.
func InfinitePerspective(fovY, aspect, near float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	m := Mat4{}
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = -1
	m[2][3] = -1
	m[3][2] = -2 * near
	return m
}

// Viewport returns the 4x4 matrix mapping NDC [-1,1]x[-1,1] to screen-space
// pixel coordinates [0,w]x[0,h], with y flipped so NDC +1 (up) maps to
// screen row 0.
func Viewport(w, h float32) Mat4 {
	m := Identity4()
	m[0][0] = w / 2
	m[1][1] = -h / 2
	m[3][0] = w / 2
	m[3][1] = h / 2
	return m
}

// Orthographic returns a 4x4 orthographic projection matrix.
func Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	m := Identity4()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[3][0] = -(right + left) / (right - left)
	m[3][1] = -(top + bottom) / (top - bottom)
	m[3][2] = -(far + near) / (far - near)
	return m
}

package rita

import (
	"math"

	"github.com/rita/rita/internal/color"
	"github.com/rita/rita/internal/mathutil"
)

// Quad returns a unit quad in the XY plane, centered on the origin,
// facing +Z, with vertices wound counter-clockwise and UVs covering
// [0,1]x[0,1]. Intended for BindVertexBuffer + UseVertexBufferMode
// IndexedBuffer + Draw(Triangles).
func Quad() (verts []Vertex, indices []int32) {
	normal := mathutil.Vec3{0, 0, 1}
	tangent := mathutil.Vec3{1, 0, 0}
	verts = []Vertex{
		{Position: mathutil.Vec4{-0.5, -0.5, 0, 1}, Normal: normal, Tangent: tangent, UV: mathutil.Vec2{0, 1}, Color: color.White},
		{Position: mathutil.Vec4{0.5, -0.5, 0, 1}, Normal: normal, Tangent: tangent, UV: mathutil.Vec2{1, 1}, Color: color.White},
		{Position: mathutil.Vec4{0.5, 0.5, 0, 1}, Normal: normal, Tangent: tangent, UV: mathutil.Vec2{1, 0}, Color: color.White},
		{Position: mathutil.Vec4{-0.5, 0.5, 0, 1}, Normal: normal, Tangent: tangent, UV: mathutil.Vec2{0, 0}, Color: color.White},
	}
	indices = []int32{0, 1, 2, 0, 2, 3}
	return verts, indices
}

// cubeFaceSpec describes one face of Cube: its outward normal, tangent,
// and the four corner offsets in winding order.
type cubeFaceSpec struct {
	normal, tangent mathutil.Vec3
	corners         [4]mathutil.Vec3
}

// Cube returns a unit cube centered on the origin with per-face normals
// and tangents (24 vertices, not 8, so each face shades independently)
// and UVs covering [0,1]x[0,1] per face.
func Cube() (verts []Vertex, indices []int32) {
	faces := [6]cubeFaceSpec{
		{ // +X
			normal: mathutil.Vec3{1, 0, 0}, tangent: mathutil.Vec3{0, 0, -1},
			corners: [4]mathutil.Vec3{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},
		},
		{ // -X
			normal: mathutil.Vec3{-1, 0, 0}, tangent: mathutil.Vec3{0, 0, 1},
			corners: [4]mathutil.Vec3{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},
		},
		{ // +Y
			normal: mathutil.Vec3{0, 1, 0}, tangent: mathutil.Vec3{1, 0, 0},
			corners: [4]mathutil.Vec3{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},
		},
		{ // -Y
			normal: mathutil.Vec3{0, -1, 0}, tangent: mathutil.Vec3{1, 0, 0},
			corners: [4]mathutil.Vec3{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}},
		},
		{ // +Z
			normal: mathutil.Vec3{0, 0, 1}, tangent: mathutil.Vec3{1, 0, 0},
			corners: [4]mathutil.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
		},
		{ // -Z
			normal: mathutil.Vec3{0, 0, -1}, tangent: mathutil.Vec3{-1, 0, 0},
			corners: [4]mathutil.Vec3{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}},
		},
	}
	uvs := [4]mathutil.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	for _, f := range faces {
		base := int32(len(verts))
		for i, c := range f.corners {
			verts = append(verts, Vertex{
				Position: mathutil.Vec4{c[0], c[1], c[2], 1},
				Normal:   f.normal,
				Tangent:  f.tangent,
				UV:       uvs[i],
				Color:    color.White,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return verts, indices
}

// UVSphere returns a unit-radius sphere centered on the origin, tessellated
// into stacks horizontal bands (at least 2) and slices vertical wedges (at
// least 3). Normals point outward; UVs wrap u around the equator and v from
// pole to pole.
func UVSphere(stacks, slices int) (verts []Vertex, indices []int32) {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	for i := 0; i <= stacks; i++ {
		v := float32(i) / float32(stacks)
		phi := v * math.Pi
		sinPhi, cosPhi := float32(math.Sin(float64(phi))), float32(math.Cos(float64(phi)))

		for j := 0; j <= slices; j++ {
			u := float32(j) / float32(slices)
			theta := u * 2 * math.Pi
			sinTheta, cosTheta := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))

			pos := mathutil.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			tangent := mathutil.Vec3{-sinTheta, 0, cosTheta}

			verts = append(verts, Vertex{
				Position: mathutil.Vec4{pos[0], pos[1], pos[2], 1},
				Normal:   pos,
				Tangent:  tangent,
				UV:       mathutil.Vec2{u, v},
				Color:    color.White,
			})
		}
	}

	ring := int32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := int32(i)*ring + int32(j)
			b := a + ring
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return verts, indices
}

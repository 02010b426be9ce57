package texture

import "github.com/rita/rita/internal/color"

// cubeFace indexes the six faces of a cubemap in the standard order.
type cubeFace int

const (
	facePosX cubeFace = iota
	faceNegX
	facePosY
	faceNegY
	facePosZ
	faceNegZ
)

// faceCell gives each face's (column, row) position in a 4x3 cross layout:
//
//	      [+Y]
//	[-X] [+Z] [+X] [-Z]
//	      [-Y]
var faceCell = map[cubeFace][2]int{
	facePosY: {1, 0},
	faceNegX: {0, 1}, facePosZ: {1, 1}, facePosX: {2, 1}, faceNegZ: {3, 1},
	faceNegY: {1, 2},
}

// SampleCubemap samples t as a cubemap stored in a 4x3 cross layout along
// direction dir (need not be normalized), selecting the major axis face
// and mapping the remaining two components to that face's UV square.
func (t *Texture) SampleCubemap(x, y, z float32) color.Color {
	ax, ay, az := absF(x), absF(y), absF(z)

	var face cubeFace
	var u, v float32

	switch {
	case ax >= ay && ax >= az:
		if x > 0 {
			face = facePosX
			u, v = -z/ax, -y/ax
		} else {
			face = faceNegX
			u, v = z/ax, -y/ax
		}
	case ay >= ax && ay >= az:
		if y > 0 {
			face = facePosY
			u, v = x/ay, z/ay
		} else {
			face = faceNegY
			u, v = x/ay, -z/ay
		}
	default:
		if z > 0 {
			face = facePosZ
			u, v = x/az, -y/az
		} else {
			face = faceNegZ
			u, v = -x/az, -y/az
		}
	}

	// u, v are in [-1,1]; remap to [0,1] within the selected cell.
	u = (u + 1) * 0.5
	v = (v + 1) * 0.5

	cell := faceCell[face]
	cellW := t.Width / 4
	cellH := t.Height / 3

	px := cell[0]*cellW + int(u*float32(cellW))
	py := cell[1]*cellH + int(v*float32(cellH))
	return t.At(px, py)
}

func absF(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

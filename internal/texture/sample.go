package texture

import "github.com/rita/rita/internal/color"

// Sample reads the texture at normalized box coordinates (u, v) in
// [0,1]x[0,1], using t's configured Filter and Wrap modes. (0,0) is the
// top-left texel.
func (t *Texture) Sample(u, v float32) color.Color {
	switch t.FilterMode {
	case Bilinear:
		return t.sampleBilinear(u, v)
	default:
		return t.sampleNearest(u, v)
	}
}

func (t *Texture) sampleNearest(u, v float32) color.Color {
	x := int(u * float32(t.Width))
	y := int(v * float32(t.Height))
	return t.At(x, y)
}

func (t *Texture) sampleBilinear(u, v float32) color.Color {
	fx := u*float32(t.Width) - 0.5
	fy := v*float32(t.Height) - 0.5

	x0 := floorInt(fx)
	y0 := floorInt(fy)
	x1 := x0 + 1
	y1 := y0 + 1

	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := t.At(x0, y0)
	c10 := t.At(x1, y0)
	c01 := t.At(x0, y1)
	c11 := t.At(x1, y1)

	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

func floorInt(f float32) int {
	i := int(f)
	if f < float32(i) {
		return i - 1
	}
	return i
}

package texture

import (
	"image"

	"github.com/rita/rita/internal/color"
)

// FromImage builds an owning Texture by copying every pixel of img,
// converting through img's color model's RGBA(). This is the seam where
// standard-library and golang.org/x/image decoders (png, jpeg, draw-scaled
// sources) hand pixels to the rasterizer.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	t := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bch, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			t.Set(x, y, color.RGBA(uint8(r>>8), uint8(g>>8), uint8(bch>>8), uint8(a>>8)))
		}
	}
	return t
}

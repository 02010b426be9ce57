package rita

import (
	"image/draw"
	"testing"

	"github.com/rita/rita/internal/color"
)

func TestFramebufferSetGetPixel(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(1, 2, color.Red)
	if got := fb.GetPixel(1, 2); got != color.Red {
		t.Errorf("GetPixel(1,2) = %+v, want %+v", got, color.Red)
	}
}

func TestFramebufferOutOfBoundsIsNoop(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(-1, 0, color.Red)
	if got := fb.GetPixel(-1, 0); got != color.Transparent {
		t.Errorf("GetPixel(-1,0) = %+v, want transparent", got)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(color.White)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := fb.GetPixel(x, y); got != color.White {
				t.Errorf("GetPixel(%d,%d) = %+v after Clear, want white", x, y, got)
			}
		}
	}
}

func TestFramebufferImplementsDrawImage(t *testing.T) {
	var _ draw.Image = NewFramebuffer(1, 1)
}

func TestFramebufferToImageMatchesPixels(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(0, 0, color.Green)
	img := fb.ToImage()
	r, g, b, a := img.At(0, 0).RGBA()
	if r != 0 || g>>8 != 255 || b != 0 || a>>8 != 255 {
		t.Errorf("ToImage pixel (0,0) = (%d,%d,%d,%d)", r, g, b, a)
	}
}

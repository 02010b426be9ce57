package texture

import (
	"image"
	"image/color"
	"testing"

	ritacolor "github.com/rita/rita/internal/color"
)

func TestSubtextureSharesBackingMemory(t *testing.T) {
	parent := New(8, 8)
	sub, ok := parent.Subtexture(2, 2, 4, 4)
	if !ok {
		t.Fatal("Subtexture(2,2,4,4) rejected a region that fits")
	}
	if !sub.IsSubtexture() {
		t.Error("IsSubtexture() = false, want true")
	}
	if parent.IsSubtexture() {
		t.Error("parent IsSubtexture() = true, want false")
	}

	sub.Set(0, 0, ritacolor.Red)
	if got := parent.At(2, 2); got != ritacolor.Red {
		t.Errorf("write through subtexture not visible in parent: parent.At(2,2) = %+v, want red", got)
	}
}

func TestSubtextureRejectsOutOfBoundsRegion(t *testing.T) {
	parent := New(4, 4)
	if _, ok := parent.Subtexture(2, 2, 4, 4); ok {
		t.Error("Subtexture(2,2,4,4) on a 4x4 parent should be rejected, region overflows")
	}
}

func TestSubtextureOfSubtextureRejected(t *testing.T) {
	parent := New(8, 8)
	sub, ok := parent.Subtexture(0, 0, 4, 4)
	if !ok {
		t.Fatal("Subtexture(0,0,4,4) rejected a region that fits")
	}
	if _, ok := sub.Subtexture(0, 0, 2, 2); ok {
		t.Error("Subtexture of a subtexture should be rejected")
	}
}

func TestFlipVerticallyReversesRows(t *testing.T) {
	tex := New(2, 2)
	tex.Set(0, 0, ritacolor.Red)
	tex.Set(0, 1, ritacolor.Blue)
	tex.FlipVertically()
	if got := tex.At(0, 0); got != ritacolor.Blue {
		t.Errorf("after flip At(0,0) = %+v, want blue", got)
	}
	if got := tex.At(0, 1); got != ritacolor.Red {
		t.Errorf("after flip At(0,1) = %+v, want red", got)
	}
}

func TestFlipVerticallyOnSubtextureStaysWithinView(t *testing.T) {
	parent := New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			parent.Set(x, y, ritacolor.RGBA(0, 0, 0, uint8(y*10)))
		}
	}
	sub, ok := parent.Subtexture(0, 1, 4, 2)
	if !ok {
		t.Fatal("Subtexture(0,1,4,2) rejected")
	}
	sub.FlipVertically()
	// Rows outside the view (row 0, row 3) must be untouched.
	if got := parent.At(0, 0); got.A != 0 {
		t.Errorf("row outside subtexture view changed: At(0,0).A = %d, want 0", got.A)
	}
	if got := parent.At(0, 3); got.A != 30 {
		t.Errorf("row outside subtexture view changed: At(0,3).A = %d, want 30", got.A)
	}
	// Rows 1 and 2 (the subtexture's local rows 0 and 1) should have swapped.
	if got := parent.At(0, 1); got.A != 20 {
		t.Errorf("row 1 after flip has A = %d, want 20", got.A)
	}
	if got := parent.At(0, 2); got.A != 10 {
		t.Errorf("row 2 after flip has A = %d, want 10", got.A)
	}
}

type solidImage struct {
	w, h int
	c    color.RGBA
}

func (s *solidImage) ColorModel() color.Model { return color.RGBAModel }
func (s *solidImage) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }
func (s *solidImage) At(x, y int) color.Color { return s.c }

func TestFromImageCopiesPixels(t *testing.T) {
	src := &solidImage{w: 3, h: 2, c: color.RGBA{R: 10, G: 20, B: 30, A: 255}}
	tex := FromImage(src)
	if tex.Width != 3 || tex.Height != 2 {
		t.Fatalf("FromImage size = %dx%d, want 3x2", tex.Width, tex.Height)
	}
	want := ritacolor.RGBA(10, 20, 30, 255)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := tex.At(x, y); got != want {
				t.Errorf("At(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

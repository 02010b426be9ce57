// Package texture implements texel storage and sampling: nearest/bilinear
// filtering, none/clamp/repeat wrap modes, and direction-vector sampling
// for equirectangular and cubemap-cross images.
package texture

import "github.com/rita/rita/internal/color"

// Filter selects how a sample between texel centers is resolved.
type Filter uint8

const (
	// Nearest snaps to the closest texel.
	Nearest Filter = iota
	// Bilinear interpolates the four nearest texels.
	Bilinear
)

// Wrap selects how out-of-range texture coordinates are resolved.
type Wrap uint8

const (
	// WrapNone leaves out-of-range coordinates unsampled (returns transparent).
	WrapNone Wrap = iota
	// WrapClamp clamps coordinates to the texture edge.
	WrapClamp
	// WrapRepeat tiles the texture by wrapping coordinates modulo size.
	WrapRepeat
)

// Texture is a 2D grid of RGBA8 texels. Stride is the number of texels
// between the start of consecutive rows in Data; Stride == Width for an
// owning texture, Stride > Width for a subtexture view that shares its
// parent's backing memory. OffsetX/OffsetY locate this view's origin
// within Data's row/column space.
type Texture struct {
	Width, Height int
	Stride        int
	OffsetX       int
	OffsetY       int
	Data          []color.Color

	// owns is false for a subtexture view: it must not be treated as
	// independently freeable, and must not itself be subtextured.
	owns bool

	FilterMode Filter
	WrapMode   Wrap
}

// New creates a transparent-black texture of the given dimensions.
func New(width, height int) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Stride: width,
		Data:   make([]color.Color, width*height),
		owns:   true,
	}
}

// IsSubtexture reports whether t is a view into another texture's memory.
func (t *Texture) IsSubtexture() bool { return !t.owns }

// Subtexture returns a view of t's (x, y, w, h) region sharing t's backing
// memory. ok is false if the region doesn't fit inside t or t is itself
// already a subtexture (subtexturing a subtexture is not supported).
func (t *Texture) Subtexture(x, y, w, h int) (*Texture, bool) {
	if t.IsSubtexture() || w <= 0 || h <= 0 {
		return nil, false
	}
	if x < 0 || y < 0 || x+w > t.Width || y+h > t.Height {
		return nil, false
	}
	return &Texture{
		Width:      w,
		Height:     h,
		Stride:     t.Stride,
		OffsetX:    t.OffsetX + x,
		OffsetY:    t.OffsetY + y,
		Data:       t.Data,
		owns:       false,
		FilterMode: t.FilterMode,
		WrapMode:   t.WrapMode,
	}, true
}

// index returns the Data offset for local texel (x, y), already assumed
// in-bounds for this view.
func (t *Texture) index(x, y int) int {
	return (t.OffsetY+y)*t.Stride + (t.OffsetX + x)
}

// Set stores c at texel (x, y). Out-of-range coordinates are ignored.
func (t *Texture) Set(x, y int, c color.Color) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	t.Data[t.index(x, y)] = c
}

// At returns the texel at (x, y), resolving it through WrapMode. Returns
// transparent if WrapMode is WrapNone and (x, y) is out of range.
func (t *Texture) At(x, y int) color.Color {
	x, y, ok := t.resolve(x, y)
	if !ok {
		return color.Transparent
	}
	return t.Data[t.index(x, y)]
}

// FlipVertically reverses t's rows in place. Subtexture views may be
// flipped; doing so flips the parent's shared rows within this view's
// column range only.
func (t *Texture) FlipVertically() {
	for y := 0; y < t.Height/2; y++ {
		o := t.Height - 1 - y
		for x := 0; x < t.Width; x++ {
			a, b := t.index(x, y), t.index(x, o)
			t.Data[a], t.Data[b] = t.Data[b], t.Data[a]
		}
	}
}

func (t *Texture) resolve(x, y int) (int, int, bool) {
	switch t.WrapMode {
	case WrapClamp:
		return clampInt(x, 0, t.Width-1), clampInt(y, 0, t.Height-1), true
	case WrapRepeat:
		return wrapInt(x, t.Width), wrapInt(y, t.Height), true
	default:
		if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
			return 0, 0, false
		}
		return x, y, true
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapInt(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

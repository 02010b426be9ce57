// Package blend implements the fragment and blit color-combining methods:
// fixed functions that take a source color produced by a shader and a
// destination color already in the framebuffer and return the color to
// store.
//
// All operations work on straight (non-premultiplied) 8-bit RGBA, matching
// the framebuffer's native pixel format.
package blend

import "github.com/rita/rita/internal/color"

// Method selects one of the fixed-function color combiners available to a
// fragment write or a blit operation.
type Method uint8

const (
	// Replace stores the source color unchanged, including alpha.
	Replace Method = iota
	// ReplaceSkipAlpha stores the source RGB but keeps the destination alpha.
	ReplaceSkipAlpha
	// Alpha performs standard source-over compositing using source alpha.
	Alpha
	// OneMinusAlpha performs source-over compositing using (1 - source alpha).
	OneMinusAlpha
	// Add clamps source + destination.
	Add
	// Subtract clamps destination - source.
	Subtract
	// SubtractSkipAlpha is Subtract but keeps the destination alpha.
	SubtractSkipAlpha
	// Multiply multiplies source and destination channel-wise.
	Multiply
)

// Func is the signature of a color combiner: given the fragment's source
// color and the framebuffer's current destination color, it returns the
// color to write.
type Func func(src, dst color.Color) color.Color

// Get returns the combiner function for method. Unknown methods fall back
// to Replace.
func Get(method Method) Func {
	switch method {
	case Replace:
		return replace
	case ReplaceSkipAlpha:
		return replaceSkipAlpha
	case Alpha:
		return alphaBlend
	case OneMinusAlpha:
		return oneMinusAlphaBlend
	case Add:
		return add
	case Subtract:
		return subtract
	case SubtractSkipAlpha:
		return subtractSkipAlpha
	case Multiply:
		return multiply
	default:
		return replace
	}
}

func replace(src, _ color.Color) color.Color {
	return src
}

func replaceSkipAlpha(src, dst color.Color) color.Color {
	return color.Color{R: src.R, G: src.G, B: src.B, A: dst.A}
}

func alphaBlend(src, dst color.Color) color.Color {
	return lerpColor(dst, src, src.A)
}

func oneMinusAlphaBlend(src, dst color.Color) color.Color {
	return lerpColor(dst, src, 255-src.A)
}

func add(src, dst color.Color) color.Color {
	return color.Color{
		R: addClamp(src.R, dst.R),
		G: addClamp(src.G, dst.G),
		B: addClamp(src.B, dst.B),
		A: addClamp(src.A, dst.A),
	}
}

func subtract(src, dst color.Color) color.Color {
	return color.Color{
		R: subClamp(dst.R, src.R),
		G: subClamp(dst.G, src.G),
		B: subClamp(dst.B, src.B),
		A: subClamp(dst.A, src.A),
	}
}

func subtractSkipAlpha(src, dst color.Color) color.Color {
	c := subtract(src, dst)
	c.A = dst.A
	return c
}

func multiply(src, dst color.Color) color.Color {
	return color.Color{
		R: mulDiv255(src.R, dst.R),
		G: mulDiv255(src.G, dst.G),
		B: mulDiv255(src.B, dst.B),
		A: mulDiv255(src.A, dst.A),
	}
}

// lerpColor returns dst + t/255*(src-dst), per channel.
func lerpColor(dst, src color.Color, t uint8) color.Color {
	return color.Color{
		R: lerp8(dst.R, src.R, t),
		G: lerp8(dst.G, src.G, t),
		B: lerp8(dst.B, src.B, t),
		A: lerp8(dst.A, src.A, t),
	}
}

func lerp8(a, b, t uint8) uint8 {
	n := (int32(b) - int32(a)) * int32(t)
	if n >= 0 {
		n = (n + 127) / 255
	} else {
		n = (n - 127) / 255
	}
	v := int32(a) + n
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func mulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

func addClamp(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func subClamp(a, b uint8) uint8 {
	if b >= a {
		return 0
	}
	return a - b
}

package rita

import (
	"image"
	stdcolor "image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/rita/rita/internal/color"
)

// Compile-time interface checks.
var (
	_ image.Image = (*Framebuffer)(nil)
	_ draw.Image  = (*Framebuffer)(nil)
)

// Framebuffer is the rectangular RGBA8 pixel buffer every tile worker
// writes into. It implements image.Image and draw.Image so it drops
// straight into Go's standard image ecosystem (PNG encoding, golang.org/x/image
// decoders for texture loading, etc).
//
// Framebuffer performs no synchronization of its own: callers must ensure
// writes from concurrent tile workers target disjoint pixel regions, which
// the tile grid guarantees by construction.
type Framebuffer struct {
	width, height int
	data          []uint8 // RGBA, 4 bytes per pixel
}

// NewFramebuffer creates a framebuffer of the given dimensions, cleared to
// transparent black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Data returns the raw RGBA pixel bytes, row-major, 4 bytes per pixel.
func (f *Framebuffer) Data() []uint8 { return f.data }

// SetPixel writes c at (x, y). Out-of-range coordinates are ignored.
func (f *Framebuffer) SetPixel(x, y int, c color.Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.data[i+0] = c.R
	f.data[i+1] = c.G
	f.data[i+2] = c.B
	f.data[i+3] = c.A
}

// GetPixel reads the color at (x, y). Out-of-range coordinates return
// transparent black.
func (f *Framebuffer) GetPixel(x, y int) color.Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.Transparent
	}
	i := (y*f.width + x) * 4
	return color.Color{R: f.data[i+0], G: f.data[i+1], B: f.data[i+2], A: f.data[i+3]}
}

// Clear fills the entire framebuffer with c.
func (f *Framebuffer) Clear(c color.Color) {
	for i := 0; i < len(f.data); i += 4 {
		f.data[i+0] = c.R
		f.data[i+1] = c.G
		f.data[i+2] = c.B
		f.data[i+3] = c.A
	}
}

// ToImage converts the framebuffer to an image.RGBA, copying pixel data.
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}

// SavePNG encodes the framebuffer as a PNG file at path.
func (f *Framebuffer) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	return png.Encode(file, f.ToImage())
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) stdcolor.Color {
	c := f.GetPixel(x, y)
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Set implements draw.Image.
func (f *Framebuffer) Set(x, y int, c stdcolor.Color) {
	r, g, b, a := c.RGBA()
	f.SetPixel(x, y, color.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
}

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() stdcolor.Model {
	return stdcolor.NRGBAModel
}

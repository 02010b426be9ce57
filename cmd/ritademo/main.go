// Command ritademo demonstrates the rita software rasterizer: it loads an
// optional texture image as the diffuse texture of a cube, renders the
// cube once at the rotation given by -angle, and saves the result to a PNG.
package main

import (
	"flag"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/rita/rita"
	"github.com/rita/rita/internal/color"
	"github.com/rita/rita/internal/mathutil"
	"github.com/rita/rita/internal/texture"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "ritademo.png", "output file")
		texPath = flag.String("texture", "", "optional diffuse texture (PNG/JPEG); a checker pattern is used if empty")
		angle   = flag.Float64("angle", 0.6, "model rotation about Y, in radians")
	)
	flag.Parse()

	rc, err := rita.NewRenderContext(*width, *height)
	if err != nil {
		log.Fatalf("NewRenderContext: %v", err)
	}
	defer rc.Close()

	if err := rc.EnableDepthBuffer(); err != nil {
		log.Fatalf("EnableDepthBuffer: %v", err)
	}
	rc.Enable(rita.DepthTesting | rita.DepthBufferWriting | rita.BackfaceCulling)

	diffuse, err := loadTexture(*texPath, 256, 256)
	if err != nil {
		log.Fatalf("loadTexture: %v", err)
	}
	if err := rc.BindTexture(rita.Diffuse, diffuse); err != nil {
		log.Fatalf("BindTexture: %v", err)
	}

	verts, indices := rita.Cube()
	rc.BindVertexBuffer(verts)
	rc.BindIndexBuffer(indices)
	rc.UseVertexBufferMode(rita.IndexedBuffer)

	rc.UseModelMatrix(mathutil.Rotate(mathutil.Vec3{0, 1, 0}, float32(*angle)))
	rc.UseCameraView(mathutil.Vec3{1.8, 1.4, 3.2}, mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 1, 0})
	rc.UsePerspectiveProjection(float32(50*math.Pi/180), float32(*width)/float32(*height), 0.1, 100)

	rc.UseClearColor(color.MortelBlack)
	if err := rc.Clear(rita.ColorAttachment | rita.DepthAttachment); err != nil {
		log.Fatalf("Clear: %v", err)
	}
	if err := rc.Draw(rita.Triangles); err != nil {
		log.Fatalf("Draw: %v", err)
	}
	rc.Finish()

	if err := rc.Framebuffer().SavePNG(*output); err != nil {
		log.Fatalf("SavePNG: %v", err)
	}
	log.Printf("rendered to %s (%dx%d)\n", *output, *width, *height)
}

// loadTexture decodes path into a texture scaled to w x h via
// golang.org/x/image/draw, or synthesizes a checker pattern if path is
// empty.
func loadTexture(path string, w, h int) (*texture.Texture, error) {
	if path == "" {
		return checkerTexture(w, h), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Over, nil)
	return texture.FromImage(scaled), nil
}

func checkerTexture(w, h int) *texture.Texture {
	tex := texture.New(w, h)
	const cells = 8
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cx, cy := x*cells/w, y*cells/h
			if (cx+cy)%2 == 0 {
				tex.Set(x, y, color.MortelWhite)
			} else {
				tex.Set(x, y, color.MortelBlue)
			}
		}
	}
	return tex
}

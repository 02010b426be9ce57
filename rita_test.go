package rita

import (
	"testing"

	"github.com/rita/rita/internal/blend"
	"github.com/rita/rita/internal/color"
	"github.com/rita/rita/internal/mathutil"
	"github.com/rita/rita/internal/texture"
)

func TestHelloTriangle(t *testing.T) {
	rc, err := NewRenderContext(576, 512)
	if err != nil {
		t.Fatalf("NewRenderContext: %v", err)
	}
	defer rc.Close()

	rc.UseClearColor(color.MortelBlack)
	if err := rc.Clear(ColorAttachment); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	rc.BindVertexBuffer([]Vertex{
		{Position: mathutil.Vec4{0, 0.5, 0, 1}, Color: color.Red},
		{Position: mathutil.Vec4{-0.5, -0.5, 0, 1}, Color: color.Blue},
		{Position: mathutil.Vec4{0.5, -0.5, 0, 1}, Color: color.Green},
	})
	if err := rc.Draw(Triangles); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	rc.Finish()

	fb := rc.Framebuffer()
	if got := fb.GetPixel(0, 0); got != color.MortelBlack {
		t.Errorf("corner pixel = %+v, want clear color %+v", got, color.MortelBlack)
	}

	cx, cy := fb.Width()/2, int(float32(fb.Height())*0.6)
	center := fb.GetPixel(cx, cy)
	if center == color.MortelBlack {
		t.Errorf("center-ish pixel (%d,%d) still equals clear color, triangle did not cover it", cx, cy)
	}
}

func TestHelloCubeWireframe(t *testing.T) {
	rc, err := NewRenderContext(800, 600)
	if err != nil {
		t.Fatalf("NewRenderContext: %v", err)
	}
	defer rc.Close()
	if err := rc.EnableDepthBuffer(); err != nil {
		t.Fatalf("EnableDepthBuffer: %v", err)
	}

	rc.Enable(WireFrames | DepthTesting | DepthBufferWriting)
	rc.UseModelMatrix(mathutil.Identity4())
	rc.UseCameraView(mathutil.Vec3{0, 0, 3}, mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 1, 0})
	rc.UsePerspectiveProjection(45*3.14159265/180, float32(800)/600, 0.1, 100)

	verts, indices := Cube()
	rc.BindVertexBuffer(verts)
	rc.BindIndexBuffer(indices)
	rc.UseVertexBufferMode(IndexedBuffer)

	if err := rc.Clear(ColorAttachment | DepthAttachment); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := rc.Draw(Triangles); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	rc.Finish()

	var litPixels int
	w, h := rc.Framebuffer().Width(), rc.Framebuffer().Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rc.Framebuffer().GetPixel(x, y) != rc.clearColor {
				litPixels++
			}
		}
	}
	if litPixels == 0 {
		t.Error("wireframe cube drew no pixels")
	}
}

func TestBlitClearColorMask(t *testing.T) {
	rc, err := NewRenderContext(64, 64)
	if err != nil {
		t.Fatalf("NewRenderContext: %v", err)
	}
	defer rc.Close()

	rc.UseClearColor(color.Black)
	if err := rc.Clear(ColorAttachment); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	gradient := texture.New(64, 64)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			gradient.Set(x, y, color.RGBA(uint8(x*4), uint8(y*4), 128, 255))
		}
	}

	if err := rc.Blit(BlitInfo{X: 0, Y: 0, W: 64, H: 64, Src: gradient, Blend: blend.Replace, Mask: MaskClearColor, Sampler: SampleBoxCoord}); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	rc.Finish()

	rc.BindVertexBuffer([]Vertex{
		{Position: mathutil.Vec4{-0.4, 0.4, 0, 1}, Color: color.White},
		{Position: mathutil.Vec4{-0.6, -0.4, 0, 1}, Color: color.White},
		{Position: mathutil.Vec4{-0.2, -0.4, 0, 1}, Color: color.White},
	})
	if err := rc.Draw(Triangles); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	rc.Finish()

	// After the first blit, no pixel remains the clear color (black), so a
	// second masked blit must touch nothing: the framebuffer should be
	// byte-identical before and after.
	before := make([]color.Color, 64*64)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			before[y*64+x] = rc.Framebuffer().GetPixel(x, y)
		}
	}

	if err := rc.Blit(BlitInfo{X: 0, Y: 0, W: 64, H: 64, Src: gradient, Blend: blend.Replace, Mask: MaskClearColor, Sampler: SampleBoxCoord}); err != nil {
		t.Fatalf("second Blit: %v", err)
	}
	rc.Finish()

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			after := rc.Framebuffer().GetPixel(x, y)
			if after != before[y*64+x] {
				t.Fatalf("pixel (%d,%d) changed on masked re-blit with no remaining clear-color pixels: %+v -> %+v", x, y, before[y*64+x], after)
			}
		}
	}
}

func TestCubemapSanity(t *testing.T) {
	cm := texture.New(4, 3)
	faceColors := map[[2]int]color.Color{
		{2, 1}: color.Red,   // +X right
		{0, 1}: color.Green, // -X left
		{1, 0}: color.Blue,  // +Y top
		{1, 2}: color.White, // -Y bottom
		{1, 1}: color.Black, // +Z front
		{3, 1}: color.Magenta, // -Z back
	}
	for fy := 0; fy < 3; fy++ {
		for fx := 0; fx < 4; fx++ {
			c, ok := faceColors[[2]int{fx, fy}]
			if !ok {
				continue
			}
			cm.Set(fx, fy, c)
		}
	}

	cases := []struct {
		dir  mathutil.Vec3
		want color.Color
	}{
		{mathutil.Vec3{1, 0, 0}, color.Red},
		{mathutil.Vec3{-1, 0, 0}, color.Green},
		{mathutil.Vec3{0, 1, 0}, color.Blue},
		{mathutil.Vec3{0, -1, 0}, color.White},
		{mathutil.Vec3{0, 0, 1}, color.Black},
		{mathutil.Vec3{0, 0, -1}, color.Magenta},
	}
	for _, c := range cases {
		if got := cm.SampleCubemap(c.dir[0], c.dir[1], c.dir[2]); got != c.want {
			t.Errorf("SampleCubemap(%v) = %+v, want %+v", c.dir, got, c.want)
		}
	}
}

func TestDispatchFinishBarrier(t *testing.T) {
	rc, err := NewRenderContext(256, 256, WithTileSize(256, 256))
	if err != nil {
		t.Fatalf("NewRenderContext: %v", err)
	}
	defer rc.Close()
	if err := rc.EnableDepthBuffer(); err != nil {
		t.Fatalf("EnableDepthBuffer: %v", err)
	}
	rc.Enable(DepthBufferWriting)

	const n = 10000
	verts := make([]Vertex, n)
	for i := range verts {
		z := 1 - float32(i)/float32(n) // last vertex has the smallest z (closest)
		verts[i] = Vertex{
			Position: mathutil.Vec4{0, 0, z, 1},
			Color:    color.RGBA(uint8(i%256), uint8(i%256), uint8(i%256), 255),
		}
	}
	rc.BindVertexBuffer(verts)
	if err := rc.Draw(Points); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	rc.Finish()

	last := verts[n-1]
	cx, cy := 128, 128
	if got := rc.Framebuffer().GetPixel(cx, cy); got != last.Color {
		t.Errorf("pixel after barrier = %+v, want last submitted color %+v", got, last.Color)
	}
}


package rita

import (
	"fmt"
	"sync"

	"github.com/rita/rita/internal/blend"
	"github.com/rita/rita/internal/color"
	"github.com/rita/rita/internal/cpuinfo"
	"github.com/rita/rita/internal/font"
	"github.com/rita/rita/internal/mathutil"
	"github.com/rita/rita/internal/raster"
	"github.com/rita/rita/internal/texture"
	"github.com/rita/rita/internal/tile"
)

// TextureUnit names one of the render context's fixed texture binding
// points.
type TextureUnit uint8

const (
	Diffuse TextureUnit = iota
	Specular
	Roughness
	Emissive
	Normal
	Displacement
	FrameBuffer
	DepthBuffer
	textureUnitCount
)

// EnableFlag is a bit in the render context's enable/disable option set.
type EnableFlag uint32

const (
	BackfaceCulling EnableFlag = 1 << iota
	DepthTesting
	OrderDependentAlphaBlend
	ZClipping
	DepthBufferWriting
	WireFrames
)

// VertexBufferMode selects whether Draw walks the vertex buffer directly
// or through the bound index buffer.
type VertexBufferMode uint8

const (
	ArrayBuffer VertexBufferMode = iota
	IndexedBuffer
)

// Winding selects which triangle winding is considered front-facing.
type Winding uint8

const (
	CCW Winding = iota
	CW
)

// Attachment is a bitmask of framebuffer attachments for Clear.
type Attachment uint8

const (
	ColorAttachment Attachment = 1 << iota
	DepthAttachment
)

// maxTiles bounds how many tiles a bound framebuffer may require, guarding
// against pathologically small tile sizes on a large framebuffer.
const maxTiles = 4096

// cameraState mirrors the inputs that produced the current view/projection
// matrices, kept around purely for introspection via CameraState.
type cameraState struct {
	Position, Target, Up      mathutil.Vec3
	FOV, Aspect, ZNear, ZFar  float32
	Orthographic              bool
}

// RenderContext is the bound state and dispatch engine of the rasterizer:
// buffers, textures, shaders, matrices, render options, and the tile
// worker pool that executes every draw and blit (Clear and DrawText write
// from the calling goroutine).
//
// A RenderContext is safe for one goroutine to drive at a time; the bound
// state itself must not be mutated while tile workers may still be
// executing commands from a prior Draw/Blit/Clear, which is why every
// binding method calls Finish before applying its change.
type RenderContext struct {
	mu sync.Mutex

	framebuffer *Framebuffer
	depthBuf    []float32

	grid  *tile.Grid
	sched *tile.Scheduler

	vertexBuffer []Vertex
	indexBuffer  []int32
	bufferMode   VertexBufferMode

	textures [textureUnitCount]*texture.Texture

	model, view, proj mathutil.Mat4
	normalMatrix      mathutil.Mat3
	invView           mathutil.Mat3
	viewport          mathutil.Mat4

	winding    Winding
	clearColor color.Color
	filterMode texture.Filter
	wrapMode   texture.Wrap
	enabled    EnableFlag
	variant    VertexVariant

	vertexShader   VertexShader
	fragmentShader FragmentShader

	camera cameraState
	opts   renderOptions
}

// NewRenderContext creates a render context bound to a fresh width x
// height RGBA8 framebuffer, spawning its tile worker pool. Matrices
// default to identity; the clear color defaults to color.MortelBlack,
// matching the original engine's default.
func NewRenderContext(width, height int, opts ...Option) (*RenderContext, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: framebuffer dimensions must be positive, got %dx%d", ErrInvalidArgument, width, height)
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	rc := &RenderContext{
		opts:       o,
		winding:    CCW,
		clearColor: color.MortelBlack,
		wrapMode:   texture.WrapClamp,
		model:      mathutil.Identity4(),
		view:       mathutil.Identity4(),
		proj:       mathutil.Identity4(),
	}

	if err := rc.bindFramebufferLocked(NewFramebuffer(width, height)); err != nil {
		return nil, err
	}

	Logger().Debug("render context created", "width", width, "height", height, "tiles", rc.grid.TileCount())
	return rc, nil
}

func (rc *RenderContext) bindFramebufferLocked(fb *Framebuffer) error {
	w, h := fb.Width(), fb.Height()
	tileW, tileH := rc.opts.tileWidth, rc.opts.tileHeight
	if tileW <= 0 {
		tileW = tile.DefaultWidth
	}
	if tileH <= 0 {
		tileH = tile.DefaultHeight
	}
	cols := ceilDiv(w, tileW)
	rows := ceilDiv(h, tileH)
	if cols*rows > maxTiles {
		return fmt.Errorf("%w: %dx%d framebuffer needs %d tiles, exceeds the %d tile limit", ErrResourceExhausted, w, h, cols*rows, maxTiles)
	}
	if rc.depthBuf != nil && len(rc.depthBuf) != w*h {
		return fmt.Errorf("%w: framebuffer dimensions must match the bound depth buffer", ErrPreconditionUnmet)
	}

	if rc.sched != nil {
		rc.sched.Close()
	}

	rc.grid = tile.NewGrid(w, h, tileW, tileH)
	rc.sched = tile.NewScheduler(rc.grid, rc.opts.queueCapacity)
	rc.framebuffer = fb
	rc.viewport = mathutil.Viewport(float32(w), float32(h))
	return nil
}

// BindFramebuffer rebinds the FRAME_BUFFER attachment, re-tiling the
// worker pool to exactly cover the new framebuffer's dimensions. After
// draining outstanding work it closes the old scheduler, stopping every
// existing tile worker, and builds a fresh grid and scheduler with one new
// worker per tile, whether the new framebuffer is larger or smaller than
// the old one. No tile worker goroutine leaks.
func (rc *RenderContext) BindFramebuffer(fb *Framebuffer) error {
	if fb == nil {
		return fmt.Errorf("%w: framebuffer must not be nil", ErrInvalidArgument)
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.sched != nil {
		rc.sched.Finish()
	}
	if err := rc.bindFramebufferLocked(fb); err != nil {
		return err
	}
	Logger().Debug("framebuffer rebound", "width", fb.Width(), "height", fb.Height())
	return nil
}

// Framebuffer returns the currently bound color framebuffer.
func (rc *RenderContext) Framebuffer() *Framebuffer {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.framebuffer
}

// EnableDepthBuffer allocates an R32F depth plane matching the current
// framebuffer's dimensions, cleared to the far value (1.0).
func (rc *RenderContext) EnableDepthBuffer() error {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.framebuffer == nil {
		return fmt.Errorf("%w: bind a framebuffer before enabling the depth buffer", ErrPreconditionUnmet)
	}
	rc.sched.Finish()
	w, h := rc.framebuffer.Width(), rc.framebuffer.Height()
	buf := make([]float32, w*h)
	for i := range buf {
		buf[i] = 1
	}
	rc.depthBuf = buf
	return nil
}

// DisableDepthBuffer releases the depth plane. The DepthTesting and
// DepthBufferWriting bits stay as they are; while either is enabled with
// no depth buffer, Draw returns ErrPreconditionUnmet.
func (rc *RenderContext) DisableDepthBuffer() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.sched.Finish()
	rc.depthBuf = nil
}

// Close tears down the tile worker pool. The context must not be used
// afterward.
func (rc *RenderContext) Close() error {
	rc.mu.Lock()
	sched := rc.sched
	rc.sched = nil
	rc.mu.Unlock()
	if sched != nil {
		sched.Close()
	}
	return nil
}

// Finish blocks until every tile worker has drained its queue and gone
// idle: the fence that makes parallel draws safe to observe from the
// calling goroutine.
func (rc *RenderContext) Finish() {
	rc.mu.Lock()
	sched := rc.sched
	rc.mu.Unlock()
	if sched != nil {
		sched.Finish()
	}
}

// BindVertexBuffer sets the vertex stream Draw reads from.
func (rc *RenderContext) BindVertexBuffer(verts []Vertex) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.sched.Finish()
	rc.vertexBuffer = verts
}

// BindIndexBuffer sets the index stream used when the buffer mode is
// IndexedBuffer.
func (rc *RenderContext) BindIndexBuffer(indices []int32) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.sched.Finish()
	rc.indexBuffer = indices
}

// BindTexture binds tex to unit. FrameBuffer and DepthBuffer are not valid
// units here: use BindFramebuffer and EnableDepthBuffer, which carry the
// extra tiling/depth-plane invariants those two attachments require.
func (rc *RenderContext) BindTexture(unit TextureUnit, tex *texture.Texture) error {
	if unit == FrameBuffer || unit == DepthBuffer {
		return fmt.Errorf("%w: use BindFramebuffer/EnableDepthBuffer for unit %d", ErrInvalidArgument, unit)
	}
	if unit >= textureUnitCount {
		return fmt.Errorf("%w: unknown texture unit %d", ErrInvalidArgument, unit)
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	// Finish before rebinding: a worker may still be sampling the unit's
	// previous texture for an in-flight fragment.
	rc.sched.Finish()
	rc.textures[unit] = tex
	Logger().Debug("texture unit bound", "unit", unit)
	return nil
}

// BindVertexShader installs fn as the vertex stage. A nil fn restores the
// default transform-and-project stage.
func (rc *RenderContext) BindVertexShader(fn VertexShader) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.sched.Finish()
	rc.vertexShader = fn
}

// BindFragmentShader installs fn as the fragment stage. A nil fn restores
// the default diffuse-modulate-or-passthrough stage.
func (rc *RenderContext) BindFragmentShader(fn FragmentShader) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.sched.Finish()
	rc.fragmentShader = fn
}

// Enable turns on the given option bits.
func (rc *RenderContext) Enable(flags EnableFlag) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.enabled |= flags
}

// Disable turns off the given option bits.
func (rc *RenderContext) Disable(flags EnableFlag) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.enabled &^= flags
}

// UseVertexVariant selects whether the default vertex stage populates
// Tangent/WorldTangent.
func (rc *RenderContext) UseVertexVariant(v VertexVariant) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.variant = v
}

// UseClearColor sets the color Clear(ColorAttachment) fills with.
func (rc *RenderContext) UseClearColor(c color.Color) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.clearColor = c
}

// UseTextureFilter stores a filtering mode on the context. The stored
// value does not affect sampling: the default fragment stage and Blit's
// samplers use each texture's own FilterMode.
func (rc *RenderContext) UseTextureFilter(f texture.Filter) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.filterMode = f
}

// UseTextureWrapping stores a wrap mode on the context. Like
// UseTextureFilter, the stored value does not affect sampling, which uses
// each texture's own WrapMode.
func (rc *RenderContext) UseTextureWrapping(w texture.Wrap) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.wrapMode = w
}

// UseVertexBufferMode selects ArrayBuffer or IndexedBuffer traversal.
func (rc *RenderContext) UseVertexBufferMode(m VertexBufferMode) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.bufferMode = m
}

// UseFrontfaceWinding sets which winding is considered front-facing for
// backface culling.
func (rc *RenderContext) UseFrontfaceWinding(w Winding) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.winding = w
}

// UseModelMatrix sets the model matrix.
func (rc *RenderContext) UseModelMatrix(m mathutil.Mat4) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.model = m
}

// UseViewMatrix sets the view matrix directly and recomputes its derived
// inverse (used by Blit's view-direction samplers).
func (rc *RenderContext) UseViewMatrix(m mathutil.Mat4) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.view = m
	rc.recomputeInvViewLocked()
}

// UseProjMatrix sets the projection matrix directly.
func (rc *RenderContext) UseProjMatrix(m mathutil.Mat4) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.proj = m
}

// UseCameraView builds the view matrix from eye/target/up via LookAt and
// records them for CameraState.
func (rc *RenderContext) UseCameraView(eye, target, up mathutil.Vec3) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.view = mathutil.LookAt(eye, target, up)
	rc.camera.Position, rc.camera.Target, rc.camera.Up = eye, target, up
	rc.recomputeInvViewLocked()
}

// UsePerspectiveProjection builds the projection matrix via Perspective
// and records the camera parameters for CameraState.
func (rc *RenderContext) UsePerspectiveProjection(fovY, aspect, near, far float32) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.proj = mathutil.Perspective(fovY, aspect, near, far)
	rc.camera.FOV, rc.camera.Aspect, rc.camera.ZNear, rc.camera.ZFar = fovY, aspect, near, far
	rc.camera.Orthographic = false
}

// UseOrthographicProjection builds the projection matrix via
// Orthographic.
func (rc *RenderContext) UseOrthographicProjection(left, right, bottom, top, near, far float32) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.proj = mathutil.Orthographic(left, right, bottom, top, near, far)
	rc.camera.ZNear, rc.camera.ZFar = near, far
	rc.camera.Orthographic = true
}

// UseViewport rebuilds the NDC-to-screen viewport matrix for a w x h
// target region, independent of the bound framebuffer's own dimensions
// (useful for rendering into a sub-rectangle).
func (rc *RenderContext) UseViewport(w, h int) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.viewport = mathutil.Viewport(float32(w), float32(h))
}

// CameraState returns the camera parameters that produced the current
// view/projection matrices, for introspection.
func (rc *RenderContext) CameraState() cameraState {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.camera
}

func (rc *RenderContext) recomputeInvViewLocked() {
	upper := rc.view.Upper3()
	rc.invView.Invert(&upper)
}

// Clear fills the requested attachments: ColorAttachment with the clear
// color, DepthAttachment with the far value (1.0). It writes from the
// calling goroutine and does not wait for outstanding tile work; call
// Finish first if earlier Draw or Blit work may still be running.
func (rc *RenderContext) Clear(attachments Attachment) error {
	rc.mu.Lock()
	fb := rc.framebuffer
	cc := rc.clearColor
	depth := rc.depthBuf
	rc.mu.Unlock()

	if fb == nil {
		return fmt.Errorf("%w: no framebuffer bound", ErrPreconditionUnmet)
	}
	if attachments&ColorAttachment != 0 {
		fb.Clear(cc)
	}
	if attachments&DepthAttachment != 0 {
		if depth == nil {
			return fmt.Errorf("%w: depth attachment requested but no depth buffer is bound", ErrPreconditionUnmet)
		}
		for i := range depth {
			depth[i] = 1
		}
	}
	return nil
}

// Draw assembles the bound vertex stream into primitives of the given
// mode, shades and clips them, and fans the resulting rasterization
// commands out to the tile workers whose tiles they touch. Draw itself
// does not block on completion; call Finish to wait.
func (rc *RenderContext) Draw(mode PrimitiveMode) error {
	rc.mu.Lock()
	fb := rc.framebuffer
	verts := rc.vertexBuffer
	indices := rc.indexBuffer
	bufferMode := rc.bufferMode
	model := rc.model
	view := rc.view
	proj := rc.proj
	variant := rc.variant
	vertexShader := rc.vertexShader
	enabled := rc.enabled
	winding := rc.winding
	viewport := rc.viewport
	depthBound := rc.depthBuf != nil
	workerOpt := rc.opts.workers
	parallel := rc.opts.parallelVertexStage
	rc.mu.Unlock()

	if fb == nil {
		return fmt.Errorf("%w: no framebuffer bound", ErrPreconditionUnmet)
	}
	if (enabled&(DepthTesting|DepthBufferWriting)) != 0 && !depthBound {
		return fmt.Errorf("%w: depth testing/writing enabled but no depth buffer is bound", ErrPreconditionUnmet)
	}

	n := len(verts)
	if bufferMode == IndexedBuffer {
		n = len(indices)
	}
	if n == 0 {
		return nil
	}
	vertexAt := func(i int) Vertex {
		if bufferMode == IndexedBuffer {
			return verts[indices[i]]
		}
		return verts[i]
	}

	var mvp mathutil.Mat4
	var mv mathutil.Mat4
	mv.Mul(&view, &model)
	mvp.Mul(&proj, &mv)

	upper := model.Upper3()
	var invUpper, normalMat mathutil.Mat3
	invUpper.Invert(&upper)
	normalMat.Transpose(&invUpper)

	rc.mu.Lock()
	rc.normalMatrix = normalMat
	rc.mu.Unlock()

	frags := make([]Fragment, n)
	transform := func(i int) Fragment {
		return transformVertex(vertexShader, vertexAt(i), variant, enabled, &mvp, &model, &upper, &normalMat, &viewport)
	}

	if parallel && rc.sched != nil {
		workers := rc.sched.Workers()
		nw := workerOpt
		if nw <= 0 {
			nw = cpuinfo.DefaultWorkers() - 1
		}
		if nw > len(workers)-1 {
			nw = len(workers) - 1
		}
		if nw < 0 {
			nw = 0
		}
		chunk := 0
		if nw > 0 {
			chunk = n / (nw + 1)
		}
		if chunk > 0 {
			var wg sync.WaitGroup
			wg.Add(nw)
			for s := 0; s < nw; s++ {
				start, end := s*chunk, (s+1)*chunk
				w := workers[s]
				go func() {
					defer wg.Done()
					w.Submit(tile.Command{Op: tile.OpProcessVertexSegment, Run: func() {
						for i := start; i < end; i++ {
							frags[i] = transform(i)
						}
					}})
				}()
			}
			for i := nw * chunk; i < n; i++ {
				frags[i] = transform(i)
			}
			wg.Wait()
			rc.Finish()
		} else {
			for i := 0; i < n; i++ {
				frags[i] = transform(i)
			}
		}
	} else {
		for i := 0; i < n; i++ {
			frags[i] = transform(i)
		}
	}

	assemblePrimitives(mode, n, func(idx ...int) {
		switch len(idx) {
		case 1:
			rc.dispatchPoint(frags[idx[0]])
		case 2:
			rc.dispatchLine(frags[idx[0]], frags[idx[1]])
		case 3:
			rc.dispatchTriangle(frags[idx[0]], frags[idx[1]], frags[idx[2]], enabled, winding)
		}
	})
	return nil
}

func transformVertex(shader VertexShader, v Vertex, variant VertexVariant, enabled EnableFlag, mvp, model *mathutil.Mat4, modelUpper, normalMat *mathutil.Mat3, viewport *mathutil.Mat4) Fragment {
	var shaded Vertex
	var clipPos mathutil.Vec4

	if shader != nil {
		shaded = shader(nil, &v)
		clipPos = shaded.Position
	} else {
		local := mathutil.Vec4{v.Position[0], v.Position[1], v.Position[2], 1}
		clipPos.MulM4(mvp, &local)
		shaded.Normal.MulM3(normalMat, &v.Normal)
		if variant == Default {
			shaded.Tangent.MulM3(modelUpper, &v.Tangent)
		}
		shaded.UV = v.UV
		shaded.Color = v.Color
	}

	var ndc mathutil.Vec3
	if clipPos[3] != 0 {
		ndc = mathutil.Vec3{clipPos[0] / clipPos[3], clipPos[1] / clipPos[3], clipPos[2] / clipPos[3]}
	}
	clipping := ndc[0] < -1 || ndc[0] > 1 || ndc[1] < -1 || ndc[1] > 1
	if enabled&ZClipping != 0 {
		clipping = clipping || ndc[2] < -1 || ndc[2] > 1
	}

	ndc4 := mathutil.Vec4{ndc[0], ndc[1], ndc[2], 1}
	var screen mathutil.Vec4
	screen.MulM4(viewport, &ndc4)

	var f Fragment
	f.UV = shaded.UV
	f.Color = shaded.Color
	f.WorldNormal = shaded.Normal
	if variant == Default {
		local := mathutil.Vec4{v.Position[0], v.Position[1], v.Position[2], 1}
		var world mathutil.Vec4
		world.MulM4(model, &local)
		f.WorldPos = world.XYZ()
		f.WorldTangent = shaded.Tangent
	}
	f.X = int(screen[0] + 0.5)
	f.Y = int(screen[1] + 0.5)
	f.InvZ = 1 / ndc[2]
	f.Clipping = clipping
	return f
}

func (rc *RenderContext) dispatchPoint(f Fragment) {
	if f.Clipping {
		return
	}
	for _, t := range rc.grid.TilesInRect(f.X, f.Y, 1, 1) {
		w := rc.sched.WorkerFor(t.OriginX, t.OriginY)
		ft, tt := f, t
		w.Submit(tile.Command{Op: tile.OpRasterPoint, Run: func() { rc.rasterPointInTile(ft, tt) }})
	}
}

func (rc *RenderContext) dispatchLine(a, b Fragment) {
	if a.Clipping && b.Clipping {
		return
	}
	x0, x1 := minInt(a.X, b.X), maxInt(a.X, b.X)
	y0, y1 := minInt(a.Y, b.Y), maxInt(a.Y, b.Y)
	for _, t := range rc.grid.TilesInRect(x0, y0, x1-x0+1, y1-y0+1) {
		w := rc.sched.WorkerFor(t.OriginX, t.OriginY)
		aa, bb, tt := a, b, t
		w.Submit(tile.Command{Op: tile.OpRasterLine, Run: func() { rc.rasterLineInTile(aa, bb, tt) }})
	}
}

func (rc *RenderContext) dispatchTriangle(f0, f1, f2 Fragment, enabled EnableFlag, winding Winding) {
	if f0.Clipping && f1.Clipping && f2.Clipping {
		return
	}
	if enabled&WireFrames != 0 {
		rc.dispatchLine(f0, f1)
		rc.dispatchLine(f1, f2)
		rc.dispatchLine(f2, f0)
		return
	}
	if enabled&BackfaceCulling != 0 {
		// EdgeFunction(a,b,c) is the negated signed area of a,b,c, so a
		// CCW-wound triangle (in this screen-space, y-down convention)
		// yields area < 0, not > 0.
		area := raster.EdgeFunction(float32(f0.X), float32(f0.Y), float32(f1.X), float32(f1.Y), float32(f2.X), float32(f2.Y))
		frontIsNegative := winding == CCW
		if (area < 0) != frontIsNegative {
			return
		}
	}
	x0 := minInt3(f0.X, f1.X, f2.X)
	x1 := maxInt3(f0.X, f1.X, f2.X)
	y0 := minInt3(f0.Y, f1.Y, f2.Y)
	y1 := maxInt3(f0.Y, f1.Y, f2.Y)
	for _, t := range rc.grid.TilesInRect(x0, y0, x1-x0+1, y1-y0+1) {
		w := rc.sched.WorkerFor(t.OriginX, t.OriginY)
		a, b, c, tt := f0, f1, f2, t
		w.Submit(tile.Command{Op: tile.OpRasterTriangle, Run: func() { rc.rasterTriangleInTile(a, b, c, tt) }})
	}
}

func (rc *RenderContext) rasterPointInTile(f Fragment, t *tile.Tile) {
	clip := raster.AABB{MinX: t.OriginX, MinY: t.OriginY, MaxX: t.OriginX + t.Width, MaxY: t.OriginY + t.Height}
	raster.Point(float32(f.X), float32(f.Y), 1, clip, func(x, y int) {
		frag := f
		frag.X, frag.Y = x, y
		rc.shadeFragment(frag)
	})
}

func (rc *RenderContext) rasterLineInTile(a, b Fragment, t *tile.Tile) {
	clip := raster.AABB{MinX: t.OriginX, MinY: t.OriginY, MaxX: t.OriginX + t.Width, MaxY: t.OriginY + t.Height}
	raster.Line(float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), clip, func(x, y int, param float32) {
		frag := lerpFragment(a, b, param)
		frag.X, frag.Y = x, y
		rc.shadeFragment(frag)
	})
}

func (rc *RenderContext) rasterTriangleInTile(f0, f1, f2 Fragment, t *tile.Tile) {
	clip := raster.AABB{MinX: t.OriginX, MinY: t.OriginY, MaxX: t.OriginX + t.Width, MaxY: t.OriginY + t.Height}
	raster.Triangle(
		float32(f0.X), float32(f0.Y),
		float32(f1.X), float32(f1.Y),
		float32(f2.X), float32(f2.Y),
		clip,
		func(rf raster.Fragment) {
			frag := barycentricFragment(f0, f1, f2, rf.W0, rf.W1, rf.W2)
			frag.X, frag.Y = rf.X, rf.Y
			rc.shadeFragment(frag)
		},
	)
}

// shadeFragment runs the depth test, fragment shading, optional alpha
// blend and depth write for one screen pixel. Called from a tile
// worker's goroutine; safe because the pixel it writes belongs
// exclusively to that worker's tile.
func (rc *RenderContext) shadeFragment(f Fragment) {
	w, h := rc.framebuffer.Width(), rc.framebuffer.Height()
	if f.X < 0 || f.X >= w || f.Y < 0 || f.Y >= h {
		return
	}
	depth := mathutil.Clamp(1/f.InvZ, 0, 1)

	if rc.enabled&DepthTesting != 0 {
		idx := f.Y*w + f.X
		if rc.depthBuf[idx] < depth {
			return
		}
	}

	var out color.Color
	if rc.fragmentShader != nil {
		out = rc.fragmentShader(rc, &f)
	} else if diffuse := rc.textures[Diffuse]; diffuse != nil {
		out = blend.Get(blend.Multiply)(f.Color, diffuse.Sample(f.UV[0], f.UV[1]))
	} else {
		out = f.Color
	}

	if rc.enabled&OrderDependentAlphaBlend != 0 {
		dst := rc.framebuffer.GetPixel(f.X, f.Y)
		out = blend.Get(blend.Alpha)(out, dst)
		out.A = 255
	}

	rc.framebuffer.SetPixel(f.X, f.Y, out)

	if rc.enabled&DepthBufferWriting != 0 {
		rc.depthBuf[f.Y*w+f.X] = depth
	}
}

// BlitMask selects which destination pixels a Blit may overwrite.
type BlitMask uint8

const (
	MaskEverywhere BlitMask = iota
	MaskClearColor
	MaskNonClearColor
	MaskDepthInf
	MaskDepthNonInf
)

// BlitSampler selects how a Blit computes its source color per pixel.
type BlitSampler uint8

const (
	SampleBoxCoord BlitSampler = iota
	SampleScreenCoord
	SampleViewDirRectilinear
	SampleViewDirCubemap
	SampleShader
)

// BlitInfo describes one region-write operation into the framebuffer.
type BlitInfo struct {
	X, Y, W, H int
	Src        *texture.Texture
	Blend      blend.Method
	Mask       BlitMask
	Sampler    BlitSampler
	Shader     FragmentShader
}

// Blit copies info.Src (or shader-generated fragments) into the region
// (info.X, info.Y, info.W, info.H) of the framebuffer, governed by
// info.Mask and info.Blend. Like Draw, Blit is dispatched per intersecting
// tile and does not itself block; call Finish to wait.
func (rc *RenderContext) Blit(info BlitInfo) error {
	rc.mu.Lock()
	fb := rc.framebuffer
	rc.mu.Unlock()
	if fb == nil {
		return fmt.Errorf("%w: no framebuffer bound", ErrPreconditionUnmet)
	}
	if info.W <= 0 || info.H <= 0 {
		return nil
	}
	for _, t := range rc.grid.TilesInRect(info.X, info.Y, info.W, info.H) {
		w := rc.sched.WorkerFor(t.OriginX, t.OriginY)
		tt := t
		w.Submit(tile.Command{Op: tile.OpBlit, Run: func() { rc.blitInTile(info, tt) }})
	}
	return nil
}

func (rc *RenderContext) blitInTile(info BlitInfo, t *tile.Tile) {
	x0 := maxInt(info.X, t.OriginX)
	y0 := maxInt(info.Y, t.OriginY)
	x1 := minInt(info.X+info.W, t.OriginX+t.Width)
	y1 := minInt(info.Y+info.H, t.OriginY+t.Height)
	combiner := blend.Get(info.Blend)
	fbw, fbh := rc.framebuffer.Width(), rc.framebuffer.Height()

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst := rc.framebuffer.GetPixel(x, y)
			if !rc.blitMaskPasses(info.Mask, x, y, dst, fbw) {
				continue
			}
			src := rc.sampleBlitSource(info, x, y, fbw, fbh)
			rc.framebuffer.SetPixel(x, y, combiner(src, dst))
		}
	}
}

func (rc *RenderContext) blitMaskPasses(mask BlitMask, x, y int, dst color.Color, fbw int) bool {
	switch mask {
	case MaskClearColor:
		return dst == rc.clearColor
	case MaskNonClearColor:
		return dst != rc.clearColor
	case MaskDepthInf:
		return rc.depthBuf != nil && rc.depthBuf[y*fbw+x] == 1
	case MaskDepthNonInf:
		return rc.depthBuf == nil || rc.depthBuf[y*fbw+x] != 1
	default:
		return true
	}
}

func (rc *RenderContext) sampleBlitSource(info BlitInfo, x, y, fbw, fbh int) color.Color {
	switch info.Sampler {
	case SampleScreenCoord:
		if info.Src == nil {
			return color.Transparent
		}
		return info.Src.Sample(float32(x)/float32(fbw), float32(y)/float32(fbh))
	case SampleViewDirRectilinear, SampleViewDirCubemap:
		if info.Src == nil {
			return color.Transparent
		}
		dir := rc.screenToViewDir(x, y, fbw, fbh)
		if info.Sampler == SampleViewDirCubemap {
			return info.Src.SampleCubemap(dir[0], dir[1], dir[2])
		}
		return info.Src.SampleEquirect(dir)
	case SampleShader:
		var f Fragment
		f.X, f.Y = x, y
		if info.Src != nil {
			u := float32(x-info.X) / float32(info.W)
			v := float32(y-info.Y) / float32(info.H)
			f.Color = info.Src.Sample(u, v)
		}
		if info.Shader != nil {
			return info.Shader(rc, &f)
		}
		return f.Color
	default: // SampleBoxCoord
		if info.Src == nil {
			return color.Transparent
		}
		u := float32(x-info.X) / float32(info.W)
		v := float32(y-info.Y) / float32(info.H)
		return info.Src.Sample(u, v)
	}
}

// screenToViewDir reconstructs a world-space view ray through pixel
// (x, y), using the projection matrix's vertical focal term and the
// camera aspect ratio, then rotating it into world space by the inverse
// view basis.
func (rc *RenderContext) screenToViewDir(x, y, fbw, fbh int) mathutil.Vec3 {
	ndcX := 2*(float32(x)+0.5)/float32(fbw) - 1
	ndcY := 1 - 2*(float32(y)+0.5)/float32(fbh)
	invFocalY := float32(1)
	if rc.proj[1][1] != 0 {
		invFocalY = 1 / rc.proj[1][1]
	}
	aspect := rc.camera.Aspect
	if aspect == 0 {
		aspect = float32(fbw) / float32(fbh)
	}
	dirView := mathutil.Vec3{ndcX * invFocalY * aspect, ndcY * invFocalY, -1}
	var world, n mathutil.Vec3
	world.MulM3(&rc.invView, &dirView)
	n.Norm(&world)
	return n
}

// DrawText writes text directly into the framebuffer using the built-in
// bitmap font, bypassing the tile system. It calls Finish first to
// guarantee exclusive access before writing from the calling goroutine.
func (rc *RenderContext) DrawText(x, y, scale int, c color.Color, text string) error {
	rc.Finish()
	rc.mu.Lock()
	fb := rc.framebuffer
	rc.mu.Unlock()
	if fb == nil {
		return fmt.Errorf("%w: no framebuffer bound", ErrPreconditionUnmet)
	}
	if scale <= 0 {
		scale = 1
	}

	cursorX := x
	for _, r := range text {
		g, ok := font.Lookup(r)
		if !ok {
			cursorX += (font.GlyphWidth + 1) * scale
			continue
		}
		for gy := 0; gy < font.GlyphHeight; gy++ {
			for gx := 0; gx < font.GlyphWidth; gx++ {
				if !g.Bit(gx, gy) {
					continue
				}
				for sy := 0; sy < scale; sy++ {
					for sx := 0; sx < scale; sx++ {
						fb.SetPixel(cursorX+gx*scale+sx, y+gy*scale+sy, c)
					}
				}
			}
		}
		cursorX += (font.GlyphWidth + 1) * scale
	}
	return nil
}

// DrawTextf formats according to format and args, then calls DrawText.
func (rc *RenderContext) DrawTextf(x, y, scale int, c color.Color, format string, args ...any) error {
	return rc.DrawText(x, y, scale, c, fmt.Sprintf(format, args...))
}

func barycentricFragment(f0, f1, f2 Fragment, w0, w1, w2 float32) Fragment {
	var r Fragment
	for i := 0; i < 3; i++ {
		r.WorldPos[i] = w0*f0.WorldPos[i] + w1*f1.WorldPos[i] + w2*f2.WorldPos[i]
		r.WorldNormal[i] = w0*f0.WorldNormal[i] + w1*f1.WorldNormal[i] + w2*f2.WorldNormal[i]
		r.WorldTangent[i] = w0*f0.WorldTangent[i] + w1*f1.WorldTangent[i] + w2*f2.WorldTangent[i]
	}
	for i := 0; i < 2; i++ {
		r.UV[i] = w0*f0.UV[i] + w1*f1.UV[i] + w2*f2.UV[i]
	}
	r.Color = combineColor3(f0.Color, f1.Color, f2.Color, w0, w1, w2)
	r.InvZ = w0*f0.InvZ + w1*f1.InvZ + w2*f2.InvZ
	return r
}

func combineColor3(a, b, c color.Color, wa, wb, wc float32) color.Color {
	mix := func(x, y, z uint8) uint8 {
		v := wa*float32(x) + wb*float32(y) + wc*float32(z)
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v + 0.5)
	}
	return color.RGBA(mix(a.R, b.R, c.R), mix(a.G, b.G, c.G), mix(a.B, b.B, c.B), mix(a.A, b.A, c.A))
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt3(a, b, c int) int { return minInt(a, minInt(b, c)) }
func maxInt3(a, b, c int) int { return maxInt(a, maxInt(b, c)) }

// Package rita implements a tiled, multi-threaded software rasterizer.
//
// # Overview
//
// A RenderContext owns a framebuffer, an optional depth buffer, and a pool
// of tile worker goroutines — one per tile of the framebuffer, each
// draining its own bounded command queue in FIFO order. Draw and Blit
// partition their work by the tiles it touches and submit rasterization
// commands to the owning workers; Finish blocks until every worker has
// drained its queue. Clear writes the buffers directly from the calling
// goroutine.
//
//	rc, err := rita.NewRenderContext(800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer rc.Close()
//
//	rc.UseClearColor(color.MortelBlack)
//	rc.Clear(rita.ColorAttachment)
//	rc.BindVertexBuffer(triangleVerts)
//	rc.Draw(rita.Triangles)
//	rc.Finish()
//	rc.Framebuffer().SavePNG("out.png")
//
// # Pipeline
//
// Draw runs in five stages: matrix computation, vertex
// shading (optionally parallelized across the tile worker pool via
// temporarily repurposed workers), primitive assembly, per-primitive
// wireframe/backface/clip handling, and tile-scoped rasterization +
// fragment shading. The default vertex and fragment stages implement a
// conventional model/view/projection transform and a diffuse-texture
// modulate, but both are replaceable via BindVertexShader and
// BindFragmentShader.
//
// # Concurrency
//
// Every tile has exactly one worker goroutine; commands submitted to a
// tile execute in submission order, which is what guarantees
// overlapping primitives within one tile paint in draw order despite
// running across many goroutines. There is no work-stealing: a tile
// that receives more triangles than its neighbors runs longer, by
// design, in exchange for per-tile ordering.
package rita

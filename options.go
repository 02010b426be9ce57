package rita

import "github.com/rita/rita/internal/tile"

// Option configures a RenderContext during creation.
//
// Example:
//
//	// Default tiling and worker count
//	rc, err := rita.NewRenderContext(800, 600)
//
//	// Custom tile size and a fixed worker count
//	rc, err := rita.NewRenderContext(800, 600,
//		rita.WithTileSize(128, 128),
//		rita.WithWorkers(4),
//	)
type Option func(*renderOptions)

// renderOptions holds optional configuration for RenderContext creation.
type renderOptions struct {
	tileWidth, tileHeight int
	queueCapacity         int
	workers               int
	parallelVertexStage   bool
}

// defaultOptions returns the default render options.
func defaultOptions() renderOptions {
	return renderOptions{
		tileWidth:           tile.DefaultWidth,
		tileHeight:          tile.DefaultHeight,
		queueCapacity:       64,
		workers:             0, // resolved via cpuinfo.DefaultWorkers if zero
		parallelVertexStage: true,
	}
}

// WithTileSize sets the tile dimensions used to partition the framebuffer.
// Each tile gets its own worker goroutine and command queue. Values <= 0
// fall back to the package defaults.
func WithTileSize(width, height int) Option {
	return func(o *renderOptions) {
		o.tileWidth = width
		o.tileHeight = height
	}
}

// WithQueueCapacity sets the per-tile command queue capacity. The queue
// rounds this up to the next power of two. A small capacity trades memory
// for more frequent backpressure against the submitting goroutine.
func WithQueueCapacity(capacity int) Option {
	return func(o *renderOptions) {
		o.queueCapacity = capacity
	}
}

// WithWorkers sets how many tile workers Draw's parallel vertex stage
// hands vertex segments to, capped at the tile count minus one; the calling
// goroutine processes the remaining segment itself. The grid alone
// determines the number of tiles and worker goroutines. A value <= 0
// requests the runtime-derived default (internal/cpuinfo.DefaultWorkers
// minus one).
func WithWorkers(n int) Option {
	return func(o *renderOptions) {
		o.workers = n
	}
}

// WithSerialVertexStage disables parallel vertex processing: vertices are
// transformed on the calling goroutine before primitive assembly, in
// submission order. Useful for deterministic debugging and for the
// serial-vs-parallel equivalence tests.
func WithSerialVertexStage() Option {
	return func(o *renderOptions) {
		o.parallelVertexStage = false
	}
}

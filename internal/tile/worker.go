package tile

import (
	"runtime"
	"sync"
)

// Worker drains one tile's Queue on its own goroutine, executing each
// Command's Run closure in FIFO order until it pops an OpTerminate.
type Worker struct {
	Tile  *Tile
	Queue *Queue

	done chan struct{}
}

// NewWorker creates a worker bound to t, backed by a queue of the given
// capacity (rounded up to a power of two).
func NewWorker(t *Tile, queueCapacity int) *Worker {
	return &Worker{
		Tile:  t,
		Queue: NewQueue(queueCapacity),
		done:  make(chan struct{}),
	}
}

// Start launches the worker's run loop on a new goroutine.
func (w *Worker) Start() {
	go w.run()
}

func (w *Worker) run() {
	defer close(w.done)
	for {
		cmd := w.Queue.Pop()
		if cmd.Op == OpTerminate {
			return
		}
		if cmd.Run != nil {
			cmd.Run()
		}
	}
}

// Submit enqueues cmd for this worker, blocking until queue space is free.
func (w *Worker) Submit(cmd Command) {
	w.Queue.Push(cmd)
}

// Terminate enqueues an OpTerminate command and waits for the worker's run
// loop to exit. Any commands already queued are drained first.
func (w *Worker) Terminate() {
	w.Queue.Push(Command{Op: OpTerminate})
	<-w.done
}

// Idle reports whether the worker's queue is currently empty and the
// worker is blocked waiting for its next command.
func (w *Worker) Idle() bool {
	return w.Queue.Idle()
}

// Scheduler owns one Worker per tile in a Grid and provides the
// finish/fence barrier that waits until every tile's queue is drained and
// every worker is idle.
type Scheduler struct {
	grid    *Grid
	workers []*Worker
}

// NewScheduler builds a Scheduler over grid, spawning one worker per tile
// with the given per-tile queue capacity, and starts their goroutines.
func NewScheduler(grid *Grid, queueCapacity int) *Scheduler {
	s := &Scheduler{grid: grid, workers: make([]*Worker, grid.TileCount())}
	tiles := grid.All()
	for i := range tiles {
		w := NewWorker(&tiles[i], queueCapacity)
		w.Start()
		s.workers[i] = w
	}
	return s
}

// WorkerFor returns the worker owning the tile containing canvas pixel
// (px, py), or nil if the pixel is outside the grid.
func (s *Scheduler) WorkerFor(px, py int) *Worker {
	t := s.grid.TileAtPixel(px, py)
	if t == nil {
		return nil
	}
	return s.workers[t.Y*s.grid.TilesX()+t.X]
}

// Workers returns every worker in row-major tile order.
func (s *Scheduler) Workers() []*Worker { return s.workers }

// Broadcast submits build(tile) to every worker's queue. build is called
// once per tile to produce that tile's Command.
func (s *Scheduler) Broadcast(build func(t *Tile) Command) {
	var wg sync.WaitGroup
	wg.Add(len(s.workers))
	for _, w := range s.workers {
		w := w
		go func() {
			defer wg.Done()
			w.Submit(build(w.Tile))
		}()
	}
	wg.Wait()
}

// Finish blocks until every worker's queue has drained and every worker is
// idle, implementing the pipeline's fence/barrier semantics.
func (s *Scheduler) Finish() {
	for {
		allIdle := true
		for _, w := range s.workers {
			if !w.Idle() {
				allIdle = false
				break
			}
		}
		if allIdle {
			return
		}
		runtime.Gosched()
	}
}

// Close terminates every worker, waiting for their run loops to exit.
func (s *Scheduler) Close() {
	var wg sync.WaitGroup
	wg.Add(len(s.workers))
	for _, w := range s.workers {
		w := w
		go func() {
			defer wg.Done()
			w.Terminate()
		}()
	}
	wg.Wait()
}

package tile

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerExecutesInOrder(t *testing.T) {
	tl := &Tile{Width: 64, Height: 64}
	w := NewWorker(tl, 8)
	w.Start()
	defer w.Terminate()

	var seq int32
	results := make(chan int32, 3)
	for i := int32(1); i <= 3; i++ {
		i := i
		w.Submit(Command{Run: func() {
			results <- atomic.AddInt32(&seq, 1)
			_ = i
		}})
	}
	for i := int32(1); i <= 3; i++ {
		select {
		case got := <-results:
			if got != i {
				t.Fatalf("execution order = %d, want %d", got, i)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for worker")
		}
	}
}

func TestWorkerTerminateStopsLoop(t *testing.T) {
	tl := &Tile{Width: 64, Height: 64}
	w := NewWorker(tl, 4)
	w.Start()
	w.Terminate()
	select {
	case <-w.done:
	default:
		t.Fatal("worker run loop did not exit after Terminate")
	}
}

func TestSchedulerFinishWaitsForIdle(t *testing.T) {
	g := NewGrid(512, 128, 256, 64)
	s := NewScheduler(g, 8)
	defer s.Close()

	var done int32
	s.Broadcast(func(tl *Tile) Command {
		return Command{Op: OpBlit, Run: func() {
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&done, 1)
		}}
	})
	s.Finish()

	if int(done) != g.TileCount() {
		t.Errorf("after Finish, %d/%d tiles completed", done, g.TileCount())
	}
}

func TestSchedulerWorkerFor(t *testing.T) {
	g := NewGrid(512, 128, 256, 64)
	s := NewScheduler(g, 4)
	defer s.Close()

	w := s.WorkerFor(300, 10)
	if w == nil || w.Tile.X != 1 || w.Tile.Y != 0 {
		t.Fatalf("WorkerFor(300,10) = %v, want tile (1,0)", w)
	}
	if s.WorkerFor(-1, 0) != nil {
		t.Error("WorkerFor out of bounds should be nil")
	}
}

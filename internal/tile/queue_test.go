package tile

import (
	"testing"
	"time"
)

func TestQueueCapacityRoundsToPowerOfTwo(t *testing.T) {
	q := NewQueue(5)
	if q.Cap() != 8 {
		t.Errorf("Cap() = %d, want 8", q.Cap())
	}
}

func TestQueuePushPopFIFO(t *testing.T) {
	q := NewQueue(4)
	order := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		i := i
		q.Push(Command{Run: func() { order = append(order, i) }})
	}
	for i := 0; i < 3; i++ {
		q.Pop().Run()
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d, want %d (FIFO violated)", i, v, i)
		}
	}
}

func TestQueueIdleReflectsEmptiness(t *testing.T) {
	q := NewQueue(2)
	if !q.Idle() {
		t.Error("new queue should report idle")
	}
	q.Push(Command{})
	if q.Idle() {
		t.Error("non-empty queue should not report idle")
	}
	q.Pop()
}

func TestQueueBlocksWhenFull(t *testing.T) {
	q := NewQueue(1) // capacity rounds to 1
	q.Push(Command{})

	pushed := make(chan struct{})
	go func() {
		q.Push(Command{})
		close(pushed)
	}()

	select {
	case <-pushed:
		t.Fatal("Push should have blocked on a full queue")
	case <-time.After(20 * time.Millisecond):
	}

	q.Pop()
	select {
	case <-pushed:
	case <-time.After(time.Second):
		t.Fatal("Push never unblocked after Pop freed a slot")
	}
}

func TestQueueBlocksWhenEmpty(t *testing.T) {
	q := NewQueue(2)
	popped := make(chan Command)
	go func() { popped <- q.Pop() }()

	select {
	case <-popped:
		t.Fatal("Pop should have blocked on an empty queue")
	case <-time.After(20 * time.Millisecond):
	}

	q.Push(Command{Op: OpRasterPoint})
	select {
	case cmd := <-popped:
		if cmd.Op != OpRasterPoint {
			t.Errorf("got op %v, want OpRasterPoint", cmd.Op)
		}
	case <-time.After(time.Second):
		t.Fatal("Pop never unblocked after Push")
	}
}

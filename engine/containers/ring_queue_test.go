package containers

import (
	"errors"
	"testing"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](3)
	for _, v := range []int{1, 2, 3} {
		if err := rq.Enqueue(v); err != nil {
			t.Fatalf("enqueue %d: %v", v, err)
		}
	}
	if err := rq.Enqueue(4); !errors.Is(err, ErrQueueFull) {
		t.Errorf("expected ErrQueueFull, got %v", err)
	}

	head, _ := rq.Peek()
	if head != 1 {
		t.Errorf("expected peek to return 1, got %d", head)
	}

	v, _ := rq.Dequeue()
	if v != 1 {
		t.Errorf("expected 1, got %d", v)
	}
	// Wrap around.
	if err := rq.Enqueue(4); err != nil {
		t.Fatalf("enqueue after dequeue: %v", err)
	}

	var got []int
	for !rq.IsEmpty() {
		v, _ := rq.Dequeue()
		got = append(got, v)
	}
	want := []int{2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if _, err := rq.Dequeue(); !errors.Is(err, ErrQueueEmpty) {
		t.Errorf("expected ErrQueueEmpty, got %v", err)
	}
}

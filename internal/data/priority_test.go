package data

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPriorityQueueOrder(t *testing.T) {
	q := NewPriorityQueue(4)
	q.Push("low", 10)
	q.Push("high", 900)
	q.Push("mid", 250)

	if q.Len() != 3 {
		t.Fatalf("expected 3 items got %d", q.Len())
	}

	value, priority, ok := q.Pop()
	if !ok || value != "high" || priority != 900 {
		t.Fatalf("expected (high, 900, true) got (%v, %d, %v)", value, priority, ok)
	}

	if diff := cmp.Diff([]interface{}{"mid", "low"}, q.Drain()); diff != "" {
		t.Fatalf("unexpected drain order (-want +got):\n%s", diff)
	}
}

func TestPriorityQueueTiesKeepInsertionOrder(t *testing.T) {
	q := NewPriorityQueue(0)
	for _, name := range []string{"a", "b", "c", "d"} {
		q.Push(name, 5)
	}
	q.Push("first", 6)

	expected := []interface{}{"first", "a", "b", "c", "d"}
	if diff := cmp.Diff(expected, q.Drain()); diff != "" {
		t.Fatalf("unexpected drain order (-want +got):\n%s", diff)
	}
}

func TestPriorityQueueEmpty(t *testing.T) {
	q := NewPriorityQueue(-1)

	if _, _, ok := q.Pop(); ok {
		t.Fatal("expected pop from empty queue to fail")
	}
	if got := q.Drain(); len(got) != 0 {
		t.Fatalf("expected empty drain got %v", got)
	}
}

package data

import (
	"container/heap"
)

// item describes an entry in the priority queue. The sequence number breaks ties between equal
// priorities in insertion order.
type item struct {
	value    interface{}
	priority uint32
	sequence uint64
}

// itemHeap implements heap.Interface as a max heap on priority.
type itemHeap []*item

func (h itemHeap) Len() int {
	return len(h)
}

func (h itemHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}

	return h[i].sequence < h[j].sequence
}

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *itemHeap) Push(x interface{}) {
	*h = append(*h, x.(*item))
}

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]

	return it
}

// PriorityQueue orders arbitrary values by a uint32 priority, highest first. Values pushed with
// equal priority are popped in the order they were pushed. It is not safe for concurrent use.
type PriorityQueue struct {
	items    itemHeap
	sequence uint64
}

// NewPriorityQueue creates an empty queue with room for capacity items before reallocating.
func NewPriorityQueue(capacity int) *PriorityQueue {
	if capacity < 0 {
		capacity = 0
	}

	return &PriorityQueue{items: make(itemHeap, 0, capacity)}
}

// Push inserts a value with the given priority.
func (q *PriorityQueue) Push(value interface{}, priority uint32) {
	heap.Push(&q.items, &item{
		value:    value,
		priority: priority,
		sequence: q.sequence,
	})
	q.sequence++
}

// Pop removes the highest-priority value. It returns the value, its priority, and whether the
// queue held anything.
func (q *PriorityQueue) Pop() (interface{}, uint32, bool) {
	if q.items.Len() == 0 {
		return nil, 0, false
	}

	it := heap.Pop(&q.items).(*item)
	return it.value, it.priority, true
}

// Len reports the number of queued values.
func (q *PriorityQueue) Len() int {
	return q.items.Len()
}

// Drain pops every value, highest priority first, leaving the queue empty.
func (q *PriorityQueue) Drain() []interface{} {
	values := make([]interface{}, 0, q.items.Len())
	for {
		value, _, ok := q.Pop()
		if !ok {
			return values
		}

		values = append(values, value)
	}
}

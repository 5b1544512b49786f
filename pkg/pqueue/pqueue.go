// Package pqueue provides generic min-priority queues.
package pqueue

// Queue is a min-priority queue of comparable items.
//
// Fix tells the queue that the priority of an enqueued item changed.
// Implementations without decrease-key support may ignore it.
type Queue[T comparable] interface {
	Enqueue(item T)
	Dequeue() T
	Peek() T
	Contains(item T) bool
	Fix(item T)
	Len() int
	Items() []T
}

// LessFunc reports whether a has a strictly lower priority value than b.
type LessFunc[T any] func(a, b T) bool

// Heap is an array-backed binary min-heap.
//
// Contains is a linear scan and Fix is a no-op: an item whose priority
// changes after it was enqueued keeps its heap position.
type Heap[T comparable] struct {
	data []T
	less LessFunc[T]
}

// NewHeap creates an empty heap ordered by less.
func NewHeap[T comparable](less LessFunc[T]) *Heap[T] {
	return &Heap[T]{less: less}
}

// Len returns the number of queued items.
func (h *Heap[T]) Len() int { return len(h.data) }

// Enqueue adds an item and restores heap order by sifting it up.
func (h *Heap[T]) Enqueue(item T) {
	h.data = append(h.data, item)
	child := len(h.data) - 1

	for child > 0 {
		parent := (child - 1) / 2

		// Equal priorities stay where they are
		if !h.less(h.data[child], h.data[parent]) {
			break
		}

		h.data[child], h.data[parent] = h.data[parent], h.data[child]
		child = parent
	}
}

// Dequeue removes and returns the minimum item.
// It panics if the heap is empty.
func (h *Heap[T]) Dequeue() T {
	if len(h.data) == 0 {
		panic("pqueue: Dequeue on empty heap")
	}

	last := len(h.data) - 1
	front := h.data[0]

	h.data[0] = h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	last--

	parent := 0
	for {
		child := parent*2 + 1
		if child > last {
			break
		}

		// Compare against the smaller of the two children
		if right := child + 1; right <= last && h.less(h.data[right], h.data[child]) {
			child = right
		}

		if !h.less(h.data[child], h.data[parent]) {
			break
		}

		h.data[parent], h.data[child] = h.data[child], h.data[parent]
		parent = child
	}

	return front
}

// Peek returns the minimum item without removing it.
// It panics if the heap is empty.
func (h *Heap[T]) Peek() T {
	if len(h.data) == 0 {
		panic("pqueue: Peek on empty heap")
	}
	return h.data[0]
}

// Contains reports whether item is queued.
func (h *Heap[T]) Contains(item T) bool {
	for _, v := range h.data {
		if v == item {
			return true
		}
	}
	return false
}

// Fix is a no-op; Heap has no decrease-key.
func (h *Heap[T]) Fix(item T) {}

// Items returns the backing slice in heap order. Callers must not modify it.
func (h *Heap[T]) Items() []T { return h.data }

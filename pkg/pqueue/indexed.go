package pqueue

import "container/heap"

// entries implements heap.Interface and keeps the position index in sync.
type entries[T comparable] struct {
	items []T
	index map[T]int
	less  LessFunc[T]
}

func (e *entries[T]) Len() int           { return len(e.items) }
func (e *entries[T]) Less(i, j int) bool { return e.less(e.items[i], e.items[j]) }
func (e *entries[T]) Swap(i, j int) {
	e.items[i], e.items[j] = e.items[j], e.items[i]
	e.index[e.items[i]] = i
	e.index[e.items[j]] = j
}

func (e *entries[T]) Push(x interface{}) {
	item := x.(T)
	e.index[item] = len(e.items)
	e.items = append(e.items, item)
}

func (e *entries[T]) Pop() interface{} {
	old := e.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	delete(e.index, item)
	e.items = old[0 : n-1]
	return item
}

// Indexed is a min-heap that tracks the position of every item, giving
// O(1) Contains and a working Fix (decrease-key). Items must be unique.
type Indexed[T comparable] struct {
	e entries[T]
}

// NewIndexed creates an empty indexed heap ordered by less.
func NewIndexed[T comparable](less LessFunc[T]) *Indexed[T] {
	return &Indexed[T]{e: entries[T]{index: make(map[T]int), less: less}}
}

// Len returns the number of queued items.
func (q *Indexed[T]) Len() int { return q.e.Len() }

// Enqueue adds an item. Enqueueing an item that is already queued
// repositions it instead of adding a duplicate.
func (q *Indexed[T]) Enqueue(item T) {
	if i, ok := q.e.index[item]; ok {
		heap.Fix(&q.e, i)
		return
	}
	heap.Push(&q.e, item)
}

// Dequeue removes and returns the minimum item.
// It panics if the queue is empty.
func (q *Indexed[T]) Dequeue() T {
	if q.e.Len() == 0 {
		panic("pqueue: Dequeue on empty indexed heap")
	}
	return heap.Pop(&q.e).(T)
}

// Peek returns the minimum item without removing it.
// It panics if the queue is empty.
func (q *Indexed[T]) Peek() T {
	if q.e.Len() == 0 {
		panic("pqueue: Peek on empty indexed heap")
	}
	return q.e.items[0]
}

// Contains reports whether item is queued.
func (q *Indexed[T]) Contains(item T) bool {
	_, ok := q.e.index[item]
	return ok
}

// Fix restores heap order after the priority of item changed.
// Unknown items are ignored.
func (q *Indexed[T]) Fix(item T) {
	if i, ok := q.e.index[item]; ok {
		heap.Fix(&q.e, i)
	}
}

// Items returns the backing slice in heap order. Callers must not modify it.
func (q *Indexed[T]) Items() []T { return q.e.items }

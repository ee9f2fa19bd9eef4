package utils

import (
	"iter"

	"github.com/oomph-ac/lockdown/oerror"
)

// CircularQueue is a fixed capacity ring buffer. Appending to a full queue drops the oldest item.
type CircularQueue[T any] struct {
	items []T
	head  int
	size  int
}

// NewCircularQueue creates a queue holding at most capacity items.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Append adds an item, overwriting the oldest one if the queue is full. It returns an error if the
// queue has zero capacity.
func (q *CircularQueue[T]) Append(item T) error {
	if len(q.items) == 0 {
		return oerror.New("circularQueue: append on zero-capacity queue")
	}
	tail := (q.head + q.size) % len(q.items)
	q.items[tail] = item
	if q.size == len(q.items) {
		q.head = (q.head + 1) % len(q.items)
	} else {
		q.size++
	}
	return nil
}

// Get returns the item at logical position index, where 0 is the oldest item.
func (q *CircularQueue[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= q.size {
		return zero, oerror.New("circularQueue: index %d out of range [0, %d)", index, q.size)
	}
	return q.items[(q.head+index)%len(q.items)], nil
}

// Iter iterates the items from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range q.size {
			if !yield(q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Slice returns a copy of the items from oldest to newest.
func (q *CircularQueue[T]) Slice() []T {
	out := make([]T, 0, q.size)
	for item := range q.Iter() {
		out = append(out, item)
	}
	return out
}

// Len returns the amount of items in the queue.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Cap returns the maximum amount of items the queue can hold.
func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}

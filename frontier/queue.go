package frontier

// compactThreshold is the dead-prefix length past which Queue reclaims space.
const compactThreshold = 64

// Queue is a first-in-first-out Frontier backed by a slice with a moving head.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends item to the tail.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes the head item.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// reclaim the dead prefix once it dominates the backing array
	if q.head >= compactThreshold && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, true
}

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.head == len(q.items) }

// Len returns the number of items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Items returns the items head to tail.
func (q *Queue[T]) Items() []T {
	out := make([]T, q.Len())
	copy(out, q.items[q.head:])

	return out
}

// Package frontier provides the two orderings an uninformed search needs
// for its discovered-but-unexpanded set: a last-in-first-out Stack and a
// first-in-first-out Queue, both behind the Frontier interface.
package frontier

// Frontier is an ordered container of items awaiting expansion.
type Frontier[T any] interface {
	// Push adds item.
	Push(item T)
	// Pop removes and returns the next item by the container's order.
	// ok is false when the frontier is empty.
	Pop() (item T, ok bool)
	// Empty reports whether no items remain.
	Empty() bool
	// Len returns the number of items held.
	Len() int
	// Items returns a copy of the held items in insertion order.
	Items() []T
}

// Kind selects a Frontier ordering.
type Kind int

const (
	// LIFO pops the most recently pushed item.
	LIFO Kind = iota
	// FIFO pops the least recently pushed item.
	FIFO
)

// New returns an empty Frontier of the given kind.
// Unknown kinds yield nil.
func New[T any](k Kind) Frontier[T] {
	switch k {
	case LIFO:
		return NewStack[T]()
	case FIFO:
		return NewQueue[T]()
	default:
		return nil
	}
}

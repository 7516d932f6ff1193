package Stacks

import "iter"

// NotFound is returned by Search when the element isn't on the stack.
const NotFound = -1

type Stack[T any] interface {
	// Push item on top. Absent items(nil pointers, nil interfaces, etc.) are rejected with *InvalidArgumentError.
	Push(item T) error
	// Pop the top item. Returns *EmptyStackError when there's nothing to pop.
	Pop() (T, error)
	// Peek at the top item without removing it. Same failure mode as Pop.
	Peek() (T, error)
	Empty() bool
	Size() uint
	Clear()
	// Search returns the 1-based distance from the top to the first item equal to item, or NotFound.
	Search(item T) (int, error)
	// Iterator returns a closure walking a snapshot of the stack from top to bottom.
	// Later pushes and pops don't affect it.
	Iterator() func() (T, bool)
	All() iter.Seq[T]
}

type EmptyStackError struct {
	Op string
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot " + e.Op + "."
}

type InvalidArgumentError struct {
	Op string
}

func (e *InvalidArgumentError) Error() string {
	return "Stack doesn't accept absent elements: cannot " + e.Op + "."
}

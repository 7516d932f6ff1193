package Stacks

import (
	"iter"

	"github.com/g-m-twostay/go-bst/internal"
)

type node[T any] struct {
	v  T
	nx *node[T]
}

// LinkedStack is a singly linked LIFO. Nodes are never modified after they are pushed, so any
// reference to a node is an immutable view of the stack below it; iterators rely on this.
// The zero value is an empty stack.
type LinkedStack[T comparable] struct {
	top *node[T]
	sz  uint
}

func NewLinkedStack[T comparable]() *LinkedStack[T] {
	return new(LinkedStack[T])
}

// Push [Stack.Push]
// Time: O(1)
func (s *LinkedStack[T]) Push(item T) error {
	if internal.IsAbsent(item) {
		return &InvalidArgumentError{"Push"}
	}
	s.top = &node[T]{item, s.top}
	s.sz++
	return nil
}

// Pop [Stack.Pop]
// Time: O(1)
func (s *LinkedStack[T]) Pop() (T, error) {
	if s.top == nil {
		return *new(T), &EmptyStackError{"Pop"}
	}
	t := s.top
	s.top = t.nx
	s.sz--
	return t.v, nil
}

// Peek [Stack.Peek]
func (s *LinkedStack[T]) Peek() (T, error) {
	if s.top == nil {
		return *new(T), &EmptyStackError{"Peek"}
	}
	return s.top.v, nil
}

func (s *LinkedStack[T]) Empty() bool {
	return s.sz == 0
}

func (s *LinkedStack[T]) Size() uint {
	return s.sz
}

func (s *LinkedStack[T]) Clear() {
	s.top, s.sz = nil, 0
}

// Search [Stack.Search]
// Time: O(n)
func (s *LinkedStack[T]) Search(item T) (int, error) {
	if internal.IsAbsent(item) {
		return NotFound, &InvalidArgumentError{"Search"}
	}
	i := 1
	for cur := s.top; cur != nil; cur = cur.nx {
		if cur.v == item {
			return i, nil
		}
		i++
	}
	return NotFound, nil
}

// Iterator [Stack.Iterator]
func (s *LinkedStack[T]) Iterator() func() (T, bool) {
	cur := s.top
	return func() (r T, has bool) {
		if cur == nil {
			return
		}
		r, has = cur.v, true
		cur = cur.nx
		return
	}
}

// All is the range-over-func form of Iterator. The snapshot is taken when All is called.
func (s *LinkedStack[T]) All() iter.Seq[T] {
	top := s.top
	return func(yield func(T) bool) {
		for cur := top; cur != nil; cur = cur.nx {
			if !yield(cur.v) {
				return
			}
		}
	}
}

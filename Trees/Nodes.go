package Trees

import (
	"github.com/g-m-twostay/go-bst/Queues"
	"github.com/g-m-twostay/go-bst/Stacks"
)

// Node of a BSTree. The tree owns the shape of its nodes; callers only read them through
// the accessors. A nil *Node stands for an absent child or a failed lookup.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

func (n *Node[T]) Element() T {
	return n.v
}

func (n *Node[T]) Left() *Node[T] {
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	return n.r
}

func (n *Node[T]) HasLeft() bool {
	return n.l != nil
}

func (n *Node[T]) HasRight() bool {
	return n.r != nil
}

func (n *Node[T]) IsLeaf() bool {
	return n.l == nil && n.r == nil
}

// Size is the number of nodes in the subtree rooting at n. Recursive.
// Time: O(n); Space: O(D)
func (n *Node[T]) Size() uint {
	s := uint(1)
	if n.l != nil {
		s += n.l.Size()
	}
	if n.r != nil {
		s += n.r.Size()
	}
	return s
}

// Height of the subtree rooting at n. A leaf has height 0, and an absent child counts as 0, so a
// node with a single child is exactly one higher than that child. Recursive.
// Time: O(n); Space: O(D)
func (n *Node[T]) Height() uint {
	if n.IsLeaf() {
		return 0
	}
	var lh, rh uint
	if n.l != nil {
		lh = n.l.Height()
	}
	if n.r != nil {
		rh = n.r.Height()
	}
	return 1 + max(lh, rh)
}

// SizeIter is Size using an explicit stack instead of recursion. Use it on trees that may be very skewed.
// Time: O(n); Space: O(D)
func (n *Node[T]) SizeIter() uint {
	st := Stacks.NewLinkedStack[*Node[T]]()
	st.Push(n)
	var s uint
	for !st.Empty() {
		cur, _ := st.Pop()
		s++
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
	return s
}

// HeightIter is Height computed level by level with a queue instead of recursion.
// Time: O(n); Space: O(w) where w is the widest level.
func (n *Node[T]) HeightIter() uint {
	q := Queues.NewArrayQueue[*Node[T]](0)
	q.Push(n)
	var h uint
	for {
		for k := q.Size(); k > 0; k-- {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
		if q.Empty() {
			return h
		}
		h++
	}
}

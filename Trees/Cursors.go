package Trees

import (
	"github.com/g-m-twostay/go-bst/Queues"
	"github.com/g-m-twostay/go-bst/Stacks"
)

// Cursor is a lazy, single pass walk over a tree. HasNext can't turn true after it first became
// false, and Next then returns *ExhaustedError.
type Cursor[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// pushLeft pushes n and all of its left descendants, so the leftmost one ends up on top.
func pushLeft[T any](st *Stacks.LinkedStack[*Node[T]], n *Node[T]) {
	for ; n != nil; n = n.l {
		st.Push(n)
	}
}

type inOrder[T any] struct {
	st Stacks.LinkedStack[*Node[T]]
}

// InOrder [Tree.InOrder]. Elements come out in ascending order.
// Time: Next is amortized O(1). Space: O(D)
func (u *BSTree[T]) InOrder() Cursor[T] {
	c := new(inOrder[T])
	pushLeft(&c.st, u.root)
	return c
}

func (c *inOrder[T]) HasNext() bool {
	return !c.st.Empty()
}

func (c *inOrder[T]) Next() (T, error) {
	cur, err := c.st.Pop()
	if err != nil {
		return *new(T), &ExhaustedError{OrderIn}
	}
	pushLeft(&c.st, cur.r)
	return cur.v, nil
}

type preOrder[T any] struct {
	st Stacks.LinkedStack[*Node[T]]
}

// PreOrder [Tree.PreOrder]. A node comes before its left subtree, which comes before its right subtree.
// Time: Next is O(1). Space: O(D)
func (u *BSTree[T]) PreOrder() Cursor[T] {
	c := new(preOrder[T])
	if u.root != nil {
		c.st.Push(u.root)
	}
	return c
}

func (c *preOrder[T]) HasNext() bool {
	return !c.st.Empty()
}

func (c *preOrder[T]) Next() (T, error) {
	cur, err := c.st.Pop()
	if err != nil {
		return *new(T), &ExhaustedError{OrderPre}
	}
	// right first so that left is popped first.
	if cur.r != nil {
		c.st.Push(cur.r)
	}
	if cur.l != nil {
		c.st.Push(cur.l)
	}
	return cur.v, nil
}

type postOrder[T any] struct {
	st   Stacks.LinkedStack[*Node[T]]
	last *Node[T] // the node emitted last; when it's the right child of the top, the top is due.
}

// PostOrder [Tree.PostOrder]. A node comes after both of its subtrees.
// Time: Next is amortized O(1). Space: O(D)
func (u *BSTree[T]) PostOrder() Cursor[T] {
	c := new(postOrder[T])
	pushLeft(&c.st, u.root)
	return c
}

func (c *postOrder[T]) HasNext() bool {
	return !c.st.Empty()
}

func (c *postOrder[T]) Next() (T, error) {
	for {
		cur, err := c.st.Peek()
		if err != nil {
			return *new(T), &ExhaustedError{OrderPost}
		}
		if cur.r == nil || cur.r == c.last {
			c.st.Pop()
			c.last = cur
			return cur.v, nil
		}
		pushLeft(&c.st, cur.r)
	}
}

type levelOrder[T any] struct {
	q *Queues.ArrayQueue[*Node[T]]
}

// LevelOrder [Tree.LevelOrder]. Nodes come out level by level from the root, left to right.
// Time: Next is O(1) amortized. Space: O(w) where w is the widest level.
func (u *BSTree[T]) LevelOrder() Cursor[T] {
	c := &levelOrder[T]{Queues.NewArrayQueue[*Node[T]](0)}
	if u.root != nil {
		c.q.Push(u.root)
	}
	return c
}

func (c *levelOrder[T]) HasNext() bool {
	return !c.q.Empty()
}

func (c *levelOrder[T]) Next() (T, error) {
	cur, err := c.q.Pop()
	if err != nil {
		return *new(T), &ExhaustedError{OrderLevel}
	}
	if cur.l != nil {
		c.q.Push(cur.l)
	}
	if cur.r != nil {
		c.q.Push(cur.r)
	}
	return cur.v, nil
}

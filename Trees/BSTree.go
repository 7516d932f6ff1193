package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-bst/internal"
	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree with no repeated values. Its height depends only on
// the order of insertions, so inserting sorted values degrades it to a list of depth Size(); the
// recursive methods then recurse that deep.
// Elements are compared as whole values by a three-way comparison: cmp(a, b) is negative when
// a < b, zero when they are equal and positive when a > b.
// BSTree isn't safe for concurrent mutation, and shouldn't be created directly using struct literal.
type BSTree[T any] struct {
	root *Node[T]
	sz   uint
	cmp  func(T, T) int
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// New returns an empty BSTree ordered by the < operator of T.
func New[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{cmp: compareOrdered[T]}
}

// NewFunc returns an empty BSTree ordered by compare, which must be a strict total order over
// the elements that will be added.
func NewFunc[T any](compare func(a, b T) int) *BSTree[T] {
	return &BSTree[T]{cmp: compare}
}

// From builds a BSTree by adding vs in order. Repeated values after the first are dropped.
// Time: O(n*D)
func From[T constraints.Ordered](vs ...T) *BSTree[T] {
	u := New[T]()
	for _, v := range vs {
		u.insert(&u.root, v)
	}
	return u
}

func (u *BSTree[T]) Size() uint {
	return u.sz
}

func (u *BSTree[T]) Empty() bool {
	return u.sz == 0
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() uint {
	if u.root == nil {
		return 0
	}
	return u.root.Height()
}

// Clear drops all the nodes. Nodes previously handed out stay readable.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// search the subtree rooting at cur recursively.
func (u *BSTree[T]) search(cur *Node[T], v T) *Node[T] {
	if cur == nil {
		return nil
	}
	if c := u.cmp(v, cur.v); c == 0 {
		return cur
	} else if c < 0 {
		return u.search(cur.l, v)
	} else {
		return u.search(cur.r, v)
	}
}

// Search [Tree.Search]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Search(v T) (*Node[T], error) {
	if internal.IsAbsent(v) {
		return nil, &InvalidArgumentError{"Search"}
	}
	return u.search(u.root, v), nil
}

// Contains [Tree.Contains]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Contains(v T) (bool, error) {
	if internal.IsAbsent(v) {
		return false, &InvalidArgumentError{"Contains"}
	}
	return u.search(u.root, v) != nil, nil
}

// insert the value v to the subtree rooting at *curPtr recursively. curPtr is the link that holds
// the subtree, so an empty slot can be filled in place. Returns false if v is already there.
func (u *BSTree[T]) insert(curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &Node[T]{v: v}
		u.sz++
		return true
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.insert(&cur.l, v)
	} else if c > 0 {
		return u.insert(&cur.r, v)
	}
	return false
}

// Add [Tree.Add]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *BSTree[T]) Add(v T) (bool, error) {
	if internal.IsAbsent(v) {
		return false, &InvalidArgumentError{"Add"}
	}
	return u.insert(&u.root, v), nil
}

// RemoveMin [Tree.RemoveMin]
// The smallest node never has a left child; its right subtree takes its place. The returned
// node is detached: both of its links are nil.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) RemoveMin() *Node[T] {
	if u.root == nil {
		return nil
	}
	curPtr := &u.root
	for (*curPtr).l != nil {
		curPtr = &(*curPtr).l
	}
	cur := *curPtr
	*curPtr, cur.r = cur.r, nil
	u.sz--
	return cur
}

// RemoveMax [Tree.RemoveMax]
// Symmetric to RemoveMin.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) RemoveMax() *Node[T] {
	if u.root == nil {
		return nil
	}
	curPtr := &u.root
	for (*curPtr).r != nil {
		curPtr = &(*curPtr).r
	}
	cur := *curPtr
	*curPtr, cur.l = cur.l, nil
	u.sz--
	return cur
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Corrupt [Tree.Corrupt]
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	var (
		prev  T
		count uint
	)
	for c := u.InOrder(); c.HasNext(); count++ {
		v, _ := c.Next()
		if count > 0 && u.cmp(prev, v) >= 0 {
			return true
		}
		prev = v
	}
	return count != u.sz || (u.root == nil) != (u.sz == 0)
}

// Cursor returns a new cursor walking the tree in order o.
func (u *BSTree[T]) Cursor(o Order) Cursor[T] {
	switch o {
	case OrderPre:
		return u.PreOrder()
	case OrderPost:
		return u.PostOrder()
	case OrderLevel:
		return u.LevelOrder()
	default:
		return u.InOrder()
	}
}

// Seq returns a sequence over the tree in order o. Unlike a Cursor, the sequence can be ranged over
// repeatedly; every range starts a new cursor from the current root.
func (u *BSTree[T]) Seq(o Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := u.Cursor(o); c.HasNext(); {
			v, _ := c.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// Values collects the elements of the tree in order o.
func (u *BSTree[T]) Values(o Order) []T {
	vs := make([]T, 0, u.sz)
	for v := range u.Seq(o) {
		vs = append(vs, v)
	}
	return vs
}

package Trees

import (
	"fmt"
	"strings"
)

// Tree represents a binary search tree with no repeated values and no balancing.
// Receivers that return a bool as a second value use it to tell whether the first value is defined,
// e.g. calling Minimum on an empty tree returns (x T, false), and x should not be used.
// Lookups that return a *Node use nil for "not found". Errors are only returned for misuse, such as
// passing an absent element.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T any] interface {
	//Add v to the Tree. Returns true if v was inserted, false if an equal element is already present.
	Add(v T) (bool, error)
	//Search for the node holding v. Returns nil if there is none.
	Search(v T) (*Node[T], error)
	//Contains v.
	Contains(v T) (bool, error)
	//RemoveMin detaches and returns the node holding the smallest element, nil if the tree is empty.
	RemoveMin() *Node[T]
	//RemoveMax detaches and returns the node holding the greatest element, nil if the tree is empty.
	RemoveMax() *Node[T]
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() uint
	//Height of the tree, 0 if it's empty.
	Height() uint
	Empty() bool
	Clear()
	//Root node, nil if the tree is empty. The node must not be modified.
	Root() *Node[T]
	//InOrder, PreOrder, PostOrder and LevelOrder return cursors over the tree as it is when they are
	//called. The tree must not be modified while a cursor is in use: the cursor won't panic, but the
	//elements it yields are undefined. Any number of cursors can walk the same tree independently.
	InOrder() Cursor[T]
	PreOrder() Cursor[T]
	PostOrder() Cursor[T]
	LevelOrder() Cursor[T]
	//Corrupt returns whether the ordering or the element count of the tree is broken.
	Corrupt() bool
}

// Order of a traversal.
type Order uint8

const (
	OrderIn Order = iota
	OrderPre
	OrderPost
	OrderLevel
)

var orderNames = [...]string{"inorder", "preorder", "postorder", "levelorder"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", o)
}

// ParseOrder is the inverse of Order.String. It ignores case and accepts the short names "in", "pre", "post" and "level".
func ParseOrder(s string) (Order, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range orderNames {
		if s == n || s+"order" == n {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("unknown traversal order %q", s)
}

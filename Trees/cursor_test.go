package Trees

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/google/go-cmp/cmp"
)

func drain[T any](t *testing.T, c Cursor[T]) []T {
	t.Helper()
	var r []T
	for c.HasNext() {
		v, err := c.Next()
		if err != nil {
			t.Fatalf("Next failed while HasNext was true: %v", err)
		}
		r = append(r, v)
	}
	return r
}

func TestCursor_Scenario(t *testing.T) {
	tree := scenario()
	cases := []struct {
		o    Order
		want []int
	}{
		{OrderIn, []int{20, 30, 40, 50, 60, 70, 80}},
		{OrderPre, []int{50, 30, 20, 40, 70, 60, 80}},
		{OrderPost, []int{20, 40, 30, 60, 80, 70, 50}},
		{OrderLevel, []int{50, 30, 70, 20, 40, 60, 80}},
	}
	for _, c := range cases {
		t.Run(c.o.String(), func(t *testing.T) {
			if diff := cmp.Diff(c.want, drain(t, tree.Cursor(c.o))); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", c.o, diff)
			}
			if diff := cmp.Diff(c.want, tree.Values(c.o)); diff != "" {
				t.Errorf("%s Values mismatch (-want +got):\n%s", c.o, diff)
			}
		})
	}
}

// TestCursor_Shapes walks degenerate trees where postorder has to tell a finished right subtree
// from one that hasn't been entered yet.
func TestCursor_Shapes(t *testing.T) {
	cases := []struct {
		vs             []int
		pre, post, lvl []int
	}{
		{[]int{1, 2, 3, 4}, []int{1, 2, 3, 4}, []int{4, 3, 2, 1}, []int{1, 2, 3, 4}},
		{[]int{4, 3, 2, 1}, []int{4, 3, 2, 1}, []int{1, 2, 3, 4}, []int{4, 3, 2, 1}},
		{[]int{1, 4, 2, 3}, []int{1, 4, 2, 3}, []int{3, 2, 4, 1}, []int{1, 4, 2, 3}},
		{[]int{4, 1, 3, 2}, []int{4, 1, 3, 2}, []int{2, 3, 1, 4}, []int{4, 1, 3, 2}},
		{[]int{5, 2, 8, 1, 3, 9, 4}, []int{5, 2, 1, 3, 4, 8, 9}, []int{1, 4, 3, 2, 9, 8, 5}, []int{5, 2, 8, 1, 3, 9, 4}},
	}
	for _, c := range cases {
		tree := From(c.vs...)
		if diff := cmp.Diff(c.pre, drain(t, tree.PreOrder())); diff != "" {
			t.Errorf("preorder of %v mismatch (-want +got):\n%s", c.vs, diff)
		}
		if diff := cmp.Diff(c.post, drain(t, tree.PostOrder())); diff != "" {
			t.Errorf("postorder of %v mismatch (-want +got):\n%s", c.vs, diff)
		}
		if diff := cmp.Diff(c.lvl, drain(t, tree.LevelOrder())); diff != "" {
			t.Errorf("levelorder of %v mismatch (-want +got):\n%s", c.vs, diff)
		}
	}
}

func TestCursor_Empty(t *testing.T) {
	tree := New[int]()
	for o := OrderIn; o <= OrderLevel; o++ {
		c := tree.Cursor(o)
		if c.HasNext() {
			t.Errorf("%s cursor of an empty tree has next", o)
		}
		var ee *ExhaustedError
		if _, err := c.Next(); !errors.As(err, &ee) || ee.Order != o {
			t.Errorf("%s Next on an empty tree returned %v", o, err)
		}
	}
}

func TestCursor_Exhausted(t *testing.T) {
	tree := scenario()
	for o := OrderIn; o <= OrderLevel; o++ {
		c := tree.Cursor(o)
		if n := len(drain(t, c)); n != 7 {
			t.Errorf("%s yielded %d elements, want 7", o, n)
		}
		for range 3 {
			if c.HasNext() {
				t.Errorf("%s cursor has next after being drained", o)
			}
			var ee *ExhaustedError
			if _, err := c.Next(); !errors.As(err, &ee) {
				t.Errorf("%s Next past the end returned %v", o, err)
			}
		}
	}
}

// TestCursor_Interleaved advances several cursors over the same tree in turns.
func TestCursor_Interleaved(t *testing.T) {
	tree := New[int]()
	for range 2000 {
		tree.Add(rg.Intn(tAddValRange))
	}
	var cs []Cursor[int]
	var got [][]int
	for o := OrderIn; o <= OrderLevel; o++ {
		cs = append(cs, tree.Cursor(o), tree.Cursor(o))
		got = append(got, nil, nil)
	}
	for more := true; more; {
		more = false
		for i, c := range cs {
			for range rg.Intn(4) {
				if c.HasNext() {
					v, _ := c.Next()
					got[i] = append(got[i], v)
				}
			}
			more = more || c.HasNext()
		}
	}
	for i := range cs {
		o := Order(i / 2)
		if diff := cmp.Diff(tree.Values(o), got[i]); diff != "" {
			t.Errorf("cursor %d (%s) mismatch (-want +got):\n%s", i, o, diff)
		}
	}
}

// TestCursor_Goroutines drives cursors over one tree from many goroutines at once. The tree
// isn't modified, so every cursor must see the whole tree.
func TestCursor_Goroutines(t *testing.T) {
	const workers = 16
	tree := New[int]()
	for range 5000 {
		tree.Add(rg.Intn(tAddValRange))
	}
	results := haxmap.New[int, []int]()
	seen := hashmap.New[int, *atomic.Uint32]()
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var r []int
			for c := tree.Cursor(Order(w % 4)); c.HasNext(); {
				v, _ := c.Next()
				r = append(r, v)
				cnt, _ := seen.GetOrInsert(v, new(atomic.Uint32))
				cnt.Add(1)
			}
			results.Set(w, r)
		}(w)
	}
	wg.Wait()
	if int(results.Len()) != workers {
		t.Fatalf("%d workers reported, want %d", results.Len(), workers)
	}
	for w := range workers {
		r, _ := results.Get(w)
		if diff := cmp.Diff(tree.Values(Order(w%4)), r); diff != "" {
			t.Errorf("worker %d mismatch (-want +got):\n%s", w, diff)
		}
	}
	if seen.Len() != int(tree.Size()) {
		t.Errorf("%d distinct elements seen, want %d", seen.Len(), tree.Size())
	}
	for v := range tree.Seq(OrderIn) {
		if cnt, ok := seen.Get(v); !ok {
			t.Errorf("element %d never seen", v)
		} else if cnt.Load() != workers {
			t.Errorf("element %d seen %d times, want %d", v, cnt.Load(), workers)
		}
	}
}

// TestSeq_Restart ranges over the same sequence twice, and breaks out early once.
func TestSeq_Restart(t *testing.T) {
	tree := scenario()
	seq := tree.Seq(OrderPost)
	var first, second []int
	for v := range seq {
		first = append(first, v)
	}
	for v := range seq {
		if v == 30 {
			break
		}
		second = append(second, v)
	}
	if diff := cmp.Diff([]int{20, 40, 30, 60, 80, 70, 50}, first); diff != "" {
		t.Errorf("first range mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{20, 40}, second); diff != "" {
		t.Errorf("second range mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOrder(t *testing.T) {
	for o := OrderIn; o <= OrderLevel; o++ {
		if p, err := ParseOrder(o.String()); err != nil || p != o {
			t.Errorf("ParseOrder(%q) is %v, %v", o.String(), p, err)
		}
	}
	for s, want := range map[string]Order{"IN": OrderIn, " pre": OrderPre, "Post": OrderPost, "level": OrderLevel} {
		if p, err := ParseOrder(s); err != nil || p != want {
			t.Errorf("ParseOrder(%q) is %v, %v, want %v", s, p, err, want)
		}
	}
	if _, err := ParseOrder("sideways"); err == nil {
		t.Error("ParseOrder accepted an unknown order")
	}
	if s := Order(9).String(); s != "Order(9)" {
		t.Errorf("unknown order prints as %q", s)
	}
}

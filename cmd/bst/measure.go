package main

import (
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// skewWarn is the size above which a sorted insertion order makes the tree noticeably slow.
const skewWarn = 1 << 14

func newMeasureCmd(cfg *config, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "measure",
		Short: "Time Add, Contains and RemoveMin against other containers",
		Args:  cobra.NoArgs,
		RunE: run("measure", func(cmd *cobra.Command) error {
			vs := cfg.input()
			if cfg.shape != shapeRandom && len(cfg.keys) == 0 && cfg.n > skewWarn {
				log.WithField("n", cfg.n).Warn("sorted keys make the tree a list; BSTree operations are linear")
			}
			probes := rand.New(rand.NewSource(cfg.seed + 1)).Perm(len(vs) << 1)
			rs, err := measure(vs, probes)
			if err != nil {
				return err
			}
			for _, r := range rs {
				log.WithFields(logrus.Fields{"impl": r.impl, "op": r.op, "elapsed": r.elapsed}).Debug("measured")
			}
			return report(cmd.OutOrStdout(), rs)
		}),
	}
}

type result struct {
	impl, op string
	elapsed  time.Duration
	count    int
}

// subject is a container under measurement. removeMin is nil for containers without order.
type subject struct {
	name      string
	add       func(int)
	has       func(int) bool
	size      func() int
	removeMin func() (int, bool)
}

func subjects() []subject {
	bst := Trees.New[int]()
	gb := btree.NewOrderedG[int](32)
	lr := llrb.New()
	ts := treeset.NewWithIntComparator()
	cm := hashmap.New[int, struct{}]()
	hm := haxmap.New[int, struct{}]()
	return []subject{
		{
			name: "BSTree",
			add:  func(v int) { bst.Add(v) },
			has:  func(v int) bool { ok, _ := bst.Contains(v); return ok },
			size: func() int { return int(bst.Size()) },
			removeMin: func() (int, bool) {
				if n := bst.RemoveMin(); n != nil {
					return n.Element(), true
				}
				return 0, false
			},
		},
		{
			name:      "google/btree",
			add:       func(v int) { gb.ReplaceOrInsert(v) },
			has:       gb.Has,
			size:      gb.Len,
			removeMin: gb.DeleteMin,
		},
		{
			name: "GoLLRB",
			add:  func(v int) { lr.ReplaceOrInsert(llrb.Int(v)) },
			has:  func(v int) bool { return lr.Has(llrb.Int(v)) },
			size: lr.Len,
			removeMin: func() (int, bool) {
				if i := lr.DeleteMin(); i != nil {
					return int(i.(llrb.Int)), true
				}
				return 0, false
			},
		},
		{
			name: "gods/treeset",
			add:  func(v int) { ts.Add(v) },
			has:  func(v int) bool { return ts.Contains(v) },
			size: ts.Size,
			removeMin: func() (int, bool) {
				it := ts.Iterator()
				if !it.First() {
					return 0, false
				}
				v := it.Value().(int)
				ts.Remove(v)
				return v, true
			},
		},
		{
			name: "cornelk/hashmap",
			add:  func(v int) { cm.Set(v, struct{}{}) },
			has:  func(v int) bool { _, ok := cm.Get(v); return ok },
			size: cm.Len,
		},
		{
			name: "haxmap",
			add:  func(v int) { hm.Set(v, struct{}{}) },
			has:  func(v int) bool { _, ok := hm.Get(v); return ok },
			size: func() int { return int(hm.Len()) },
		},
	}
}

func timed(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// measure inserts vs into every subject, looks up probes and then drains the ordered ones from
// the minimum. The subjects must agree on every answer, otherwise measure fails.
func measure(vs, probes []int) ([]result, error) {
	var rs []result
	var hits, drained []int
	for _, s := range subjects() {
		rs = append(rs, result{s.name, "add", timed(func() {
			for _, v := range vs {
				s.add(v)
			}
		}), len(vs)})
		hit := 0
		rs = append(rs, result{s.name, "contains", timed(func() {
			for _, p := range probes {
				if s.has(p) {
					hit++
				}
			}
		}), len(probes)})
		hits = append(hits, hit)
		if s.removeMin == nil {
			continue
		}
		n, prev, sorted := 0, 0, true
		d := timed(func() {
			for v, ok := s.removeMin(); ok; v, ok = s.removeMin() {
				sorted = sorted && (n == 0 || prev < v)
				prev = v
				n++
			}
		})
		rs = append(rs, result{s.name, "removeMin", d, n})
		if !sorted || s.size() != 0 {
			return nil, errors.Errorf("%s: removeMin didn't drain in ascending order", s.name)
		}
		drained = append(drained, n)
	}
	for i := 1; i < len(hits); i++ {
		if hits[i] != hits[0] {
			return nil, errors.Errorf("containers disagree on lookups: %v", hits)
		}
	}
	for i := 1; i < len(drained); i++ {
		if drained[i] != drained[0] {
			return nil, errors.Errorf("containers disagree on size: %v", drained)
		}
	}
	return rs, nil
}

func report(w io.Writer, rs []result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "IMPL\tOP\tN\tELAPSED\tPER OP")
	for _, r := range rs {
		per := time.Duration(0)
		if r.count > 0 {
			per = r.elapsed / time.Duration(r.count)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%v\t%v\n", r.impl, r.op, r.count, r.elapsed, per)
	}
	return tw.Flush()
}

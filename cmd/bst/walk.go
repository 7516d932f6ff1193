package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newWalkCmd(cfg *config, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "walk",
		Short: "Print a traversal of the tree built from the keys",
		Args:  cobra.NoArgs,
		RunE: run("walk", func(cmd *cobra.Command) error {
			o, _ := Trees.ParseOrder(cfg.order)
			return walk(cmd.OutOrStdout(), build(cfg.input(), log), o)
		}),
	}
}

// build adds vs to a new tree in order.
func build(vs []int, log logrus.FieldLogger) *Trees.BSTree[int] {
	tree := Trees.New[int]()
	dups := 0
	for _, v := range vs {
		if ok, _ := tree.Add(v); !ok {
			dups++
		}
	}
	var height uint
	if root := tree.Root(); root != nil {
		height = root.HeightIter()
	}
	log.WithFields(logrus.Fields{"size": tree.Size(), "height": height, "duplicates": dups}).Info("tree built")
	return tree
}

// walk writes the elements of tree in order o on one line, separated by spaces.
func walk(w io.Writer, tree *Trees.BSTree[int], o Trees.Order) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for c := tree.Cursor(o); c.HasNext(); {
		v, err := c.Next()
		if err != nil {
			return err
		}
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		if c.HasNext() {
			buf = append(buf, ' ')
		}
		if _, err = bw.Write(buf); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

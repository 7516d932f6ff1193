package main

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	shapeRandom     = "random"
	shapeAscending  = "ascending"
	shapeDescending = "descending"
)

// config is filled from the command line flags.
type config struct {
	keys     []int
	n        int
	seed     int64
	shape    string
	order    string
	logLevel string
}

func defaultConfig() config {
	return config{n: 1000, seed: 1, shape: shapeRandom, order: Trees.OrderIn.String(), logLevel: logrus.InfoLevel.String()}
}

func (c *config) validate() error {
	if len(c.keys) == 0 && c.n < 0 {
		return errors.Errorf("-n must not be negative, got %d", c.n)
	}
	switch strings.ToLower(c.shape) {
	case shapeRandom, shapeAscending, shapeDescending:
	default:
		return errors.Errorf("unknown shape %q, want one of %s, %s, %s", c.shape, shapeRandom, shapeAscending, shapeDescending)
	}
	if _, err := Trees.ParseOrder(c.order); err != nil {
		return errors.Wrap(err, "invalid --order")
	}
	if _, err := logrus.ParseLevel(c.logLevel); err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	return nil
}

// input returns the keys to insert, in insertion order. Explicit keys win over generated ones.
func (c *config) input() []int {
	if len(c.keys) > 0 {
		return slices.Clone(c.keys)
	}
	var vs []int
	switch strings.ToLower(c.shape) {
	case shapeAscending, shapeDescending:
		vs = make([]int, c.n)
		for i := range vs {
			vs[i] = i
		}
		if strings.EqualFold(c.shape, shapeDescending) {
			slices.Reverse(vs)
		}
	default:
		vs = rand.New(rand.NewSource(c.seed)).Perm(c.n)
	}
	return vs
}

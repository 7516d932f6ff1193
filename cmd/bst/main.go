// Command bst builds binary search trees from the command line, prints their traversals and
// times them against other ordered and hashed containers.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("bst failed")
		os.Exit(1)
	}
}

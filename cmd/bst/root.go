package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	log := logrus.New()
	cmd := &cobra.Command{
		Use:           "bst",
		Short:         "Build unbalanced binary search trees and walk or measure them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			lvl, _ := logrus.ParseLevel(cfg.logLevel)
			log.SetLevel(lvl)
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			return nil
		},
	}
	fs := cmd.PersistentFlags()
	fs.IntSliceVar(&cfg.keys, "keys", nil, "comma separated keys to insert, in order; overrides -n and --shape")
	fs.IntVarP(&cfg.n, "n", "n", cfg.n, "number of generated keys")
	fs.Int64Var(&cfg.seed, "seed", cfg.seed, "seed for random keys")
	fs.StringVar(&cfg.shape, "shape", cfg.shape, "insertion order of generated keys: random, ascending or descending")
	fs.StringVar(&cfg.order, "order", cfg.order, "traversal order: inorder, preorder, postorder or levelorder")
	fs.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "log level")

	cmd.AddCommand(newWalkCmd(&cfg, log), newMeasureCmd(&cfg, log))
	return cmd
}

// run adapts f to cobra's RunE and prefixes its error with the command name.
func run(name string, f func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return errors.Wrap(f(cmd), name)
	}
}

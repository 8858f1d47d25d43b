// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=…".
var version = "dev"

// enumerateFlags override the config file.
type enumerateFlags struct {
	config    string
	structure string
	direction string
	engine    string
	limit     int
	verbose   bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rolefix",
		Short:         "Enumerate the stable role structures of a network",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEnumerateCmd(), newVersionCmd())

	return root
}

func newEnumerateCmd() *cobra.Command {
	var f enumerateFlags
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Print every fixed point of the role operator, one per line",
		Long: `Reads a network and search settings from a YAML file and prints every
relation, partition or ranking fixed by the regular role operator
(restriction) or the successor closure (extension).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(f.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("structure") {
				cfg.Structure = f.structure
			}
			if cmd.Flags().Changed("direction") {
				cfg.Direction = f.direction
			}
			if cmd.Flags().Changed("engine") {
				cfg.Engine = f.engine
			}
			if cmd.Flags().Changed("limit") {
				cfg.Limit = f.limit
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			if f.verbose {
				enableTracing()
			}
			net, err := cfg.network()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "actors: %s\n", legend(net))

			n, err := run(cmd.Context(), cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d %s structure(s)\n", n, cfg.Structure)

			return nil
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "rolefix.yaml", "YAML file with the network and settings")
	cmd.Flags().StringVar(&f.structure, "structure", "", "relation, equivalence or ranking")
	cmd.Flags().StringVar(&f.direction, "direction", "", "restriction or extension")
	cmd.Flags().StringVar(&f.engine, "engine", "", "covers or projections")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "stop after this many structures (0 = all)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "trace the search")

	return cmd
}

// enableTracing routes all tracers to a Go logger on stderr at debug level.
func enableTracing() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.LevelDebug)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "rolefix %s\n", version)
}

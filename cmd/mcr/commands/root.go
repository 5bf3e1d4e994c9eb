// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cycleratio/internal/config"
)

// rootOptions carries the persistent flags and the loaded configuration.
type rootOptions struct {
	cfgFile    string
	outputJSON bool
	verbose    bool

	cfg config.Config
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "mcr",
		Short: "Minimum cycle ratio solver",
		Long: `mcr - find the cycle minimising Σcost/Σtime in a directed graph.

The graph is generated from the configuration (ring, path, complete or
random digraph with drawn attributes plus per-edge overrides). Edges
without a cost or time attribute read the configured defaults.

Examples:
  # Ring of 5 with default attributes
  mcr solve --kind cycle --n 5

  # Random digraph, bisection oracle, JSON for piping
  mcr solve --kind random --n 12 --p 0.3 --seed 7 --oracle bisection --json

  # Everything from a file, metrics exported for node_exporter
  mcr --config mcr.yaml solve --metrics-file /var/lib/node_exporter/mcr.prom
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "YAML config file (defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVar(&opts.outputJSON, "json", false, "output as JSON (default YAML)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every oracle probe")

	rootCmd.AddCommand(newSolveCmd(opts))
	rootCmd.AddCommand(newOraclesCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

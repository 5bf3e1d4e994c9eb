// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cycleratio/mcr"
)

// version is stamped at build time with -ldflags "-X ...commands.version=v1.2.3".
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mcr version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "mcr %s\n", version)
			return err
		},
	}
}

func newOraclesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "oracles",
		Short: "List the available negative-cycle oracles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return outputResult(cmd.OutOrStdout(), map[string]any{
				"default": mcr.OracleMaxParametric,
				"oracles": mcr.OracleNames(),
			}, "", opts.outputJSON)
		},
	}
}

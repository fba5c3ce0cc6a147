// Package cli implements the elasticctl command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the elasticctl root command with its subcommands
// attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "elasticctl",
		Short: "Quote elastic AMM swaps and liquidity operations offline",
		Long:  "elasticctl computes swap, add-liquidity, and remove-liquidity quotes\n" +
			"directly from pkg/elasticmath against reserve figures you supply,\n" +
			"without connecting to a node.",
	}

	root.AddCommand(newSwapCommand())
	root.AddCommand(newAddLiquidityCommand())
	root.AddCommand(newRemoveLiquidityCommand())

	return root
}

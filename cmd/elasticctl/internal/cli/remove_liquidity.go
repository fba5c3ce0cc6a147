package cli

import (
	"github.com/spf13/cobra"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/elasticmath"
	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

func newRemoveLiquidityCommand() *cobra.Command {
	var (
		lpQty          string
		lpSupply       string
		externalBase   string
		externalQuote  string
		slippagePercent string
	)

	cmd := &cobra.Command{
		Use:   "remove-liquidity",
		Short: "Quote the minimum reserves released by redeeming LP tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			lpQtyD, err := fpm.ParseDecimal(lpQty)
			if err != nil {
				return err
			}
			lpSupplyD, err := fpm.ParseDecimal(lpSupply)
			if err != nil {
				return err
			}
			externalBaseD, err := fpm.ParseDecimal(externalBase)
			if err != nil {
				return err
			}
			externalQuoteD, err := fpm.ParseDecimal(externalQuote)
			if err != nil {
				return err
			}
			slippageD, err := optionalDecimal(slippagePercent)
			if err != nil {
				return err
			}

			baseMin, quoteMin, err := elasticmath.CalculateRemoveLiquidityQuantities(
				lpQtyD, lpSupplyD, externalBaseD, externalQuoteD, slippageD,
			)
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]string{
				"base_qty_min":  baseMin.String(),
				"quote_qty_min": quoteMin.String(),
			})
		},
	}

	cmd.Flags().StringVar(&lpQty, "lp-qty", "", "LP token amount to redeem (required)")
	cmd.Flags().StringVar(&lpSupply, "lp-supply", "", "current LP token total supply (required)")
	cmd.Flags().StringVar(&externalBase, "external-base", "", "real (external) base token balance of the exchange (required)")
	cmd.Flags().StringVar(&externalQuote, "external-quote", "", "real (external) quote token balance of the exchange (required)")
	cmd.Flags().StringVar(&slippagePercent, "slippage-percent", "0", "slippage tolerance applied as a floor, in percent")
	_ = cmd.MarkFlagRequired("lp-qty")
	_ = cmd.MarkFlagRequired("lp-supply")
	_ = cmd.MarkFlagRequired("external-base")
	_ = cmd.MarkFlagRequired("external-quote")

	return cmd
}

package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/elasticmath"
	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

func newAddLiquidityCommand() *cobra.Command {
	var (
		baseDesired, baseMin     string
		quoteDesired, quoteMin   string
		externalBase, externalQuote string
		lpSupply                 string
		internalBase, internalQuote string
		kLast                    string
	)

	cmd := &cobra.Command{
		Use:   "add-liquidity",
		Short: "Quote the pair and LP token amounts for an add-liquidity call",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAll(map[string]*string{
				"base-desired":   &baseDesired,
				"quote-desired":  &quoteDesired,
				"external-base":  &externalBase,
				"external-quote": &externalQuote,
				"lp-supply":      &lpSupply,
				"internal-base":  &internalBase,
				"internal-quote": &internalQuote,
			})
			if err != nil {
				return err
			}

			baseMinD, err := optionalDecimal(baseMin)
			if err != nil {
				return err
			}
			quoteMinD, err := optionalDecimal(quoteMin)
			if err != nil {
				return err
			}
			kLastD, err := optionalDecimal(kLast)
			if err != nil {
				return err
			}

			internal := elasticmath.InternalBalances{
				BaseTokenReserveQty:  values["internal-base"],
				QuoteTokenReserveQty: values["internal-quote"],
				KLast:                kLastD,
			}

			result, _, err := elasticmath.AddLiquidity(
				values["base-desired"], baseMinD,
				values["quote-desired"], quoteMinD,
				values["external-base"], values["external-quote"],
				values["lp-supply"], internal,
			)
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]string{
				"base_qty":                result.BaseTokenQty.String(),
				"quote_qty":               result.QuoteTokenQty.String(),
				"liquidity_token_qty":     result.LiquidityTokenQty.String(),
				"liquidity_token_fee_qty": result.LiquidityTokenFeeQty.String(),
			})
		},
	}

	cmd.Flags().StringVar(&baseDesired, "base-desired", "", "desired base token contribution (required)")
	cmd.Flags().StringVar(&baseMin, "base-min", "0", "minimum acceptable base token contribution")
	cmd.Flags().StringVar(&quoteDesired, "quote-desired", "", "desired quote token contribution (required)")
	cmd.Flags().StringVar(&quoteMin, "quote-min", "0", "minimum acceptable quote token contribution")
	cmd.Flags().StringVar(&externalBase, "external-base", "", "real (external) base token balance of the exchange (required)")
	cmd.Flags().StringVar(&externalQuote, "external-quote", "", "real (external) quote token balance of the exchange (required)")
	cmd.Flags().StringVar(&lpSupply, "lp-supply", "0", "current LP token total supply (0 for the first liquidity addition)")
	cmd.Flags().StringVar(&internalBase, "internal-base", "0", "internal (virtual) base reserve")
	cmd.Flags().StringVar(&internalQuote, "internal-quote", "0", "internal (virtual) quote reserve")
	cmd.Flags().StringVar(&kLast, "k-last", "0", "reserve product at the last DAO fee checkpoint")
	_ = cmd.MarkFlagRequired("base-desired")
	_ = cmd.MarkFlagRequired("quote-desired")
	_ = cmd.MarkFlagRequired("external-base")
	_ = cmd.MarkFlagRequired("external-quote")

	return cmd
}

func parseAll(fields map[string]*string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(fields))
	for name, raw := range fields {
		d, err := fpm.ParseDecimal(*raw)
		if err != nil {
			return nil, err
		}
		out[name] = d
	}
	return out, nil
}

func optionalDecimal(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return fpm.ParseDecimal(raw)
}

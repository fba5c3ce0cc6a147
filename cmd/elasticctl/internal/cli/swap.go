package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/elasticmath"
	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

func newSwapCommand() *cobra.Command {
	var (
		inQty      string
		inReserve  string
		outReserve string
		feeBP      uint16
	)

	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Quote the output amount for a constant-product swap",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := fpm.ParseDecimal(inQty)
			if err != nil {
				return err
			}
			reserveIn, err := fpm.ParseDecimal(inReserve)
			if err != nil {
				return err
			}
			reserveOut, err := fpm.ParseDecimal(outReserve)
			if err != nil {
				return err
			}

			bp := fpm.BasisPoints(feeBP)
			if err := bp.Validate(); err != nil {
				return err
			}

			out, err := elasticmath.QtyOutAfterFees(in, reserveIn, reserveOut, bp)
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]string{"out_qty": out.String()})
		},
	}

	cmd.Flags().StringVar(&inQty, "in-qty", "", "amount of the input token (required)")
	cmd.Flags().StringVar(&inReserve, "in-reserve", "", "input token reserve (required)")
	cmd.Flags().StringVar(&outReserve, "out-reserve", "", "output token reserve (required)")
	cmd.Flags().Uint16Var(&feeBP, "fee-bp", 30, "swap fee in basis points")
	_ = cmd.MarkFlagRequired("in-qty")
	_ = cmd.MarkFlagRequired("in-reserve")
	_ = cmd.MarkFlagRequired("out-reserve")

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

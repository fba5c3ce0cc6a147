package elasticmath

import (
	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// CalculateRemoveLiquidityQuantities computes the caller's pro-rata share
// of reserves for redeeming liquidityTokenQty LP tokens, reduced by a
// slippage floor. The results are minimums the caller supplies to the
// on-chain redeem transaction, not exact amounts — the actual on-chain
// state may have moved between this preview and the transaction landing.
//
//	ratio         = lpToRedeem / lpSupply
//	slipMultiplier = 1 - slippagePercent/100
//	baseReceived  = externalBase  * ratio * slipMultiplier
//	quoteReceived = externalQuote * ratio * slipMultiplier
func CalculateRemoveLiquidityQuantities(
	liquidityTokenQty, totalSupplyOfLiquidityTokens decimal.Decimal,
	externalBaseTokenQty, externalQuoteTokenQty decimal.Decimal,
	slippagePercent decimal.Decimal,
) (baseTokenQtyMin, quoteTokenQtyMin decimal.Decimal, err error) {
	if err := fpm.RequireNonNegative(liquidityTokenQty, "liquidityTokenQty"); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if liquidityTokenQty.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, fpm.New(fpm.KindInsufficientQty, "liquidity token quantity must be positive")
	}
	if err := fpm.RequireReserve(totalSupplyOfLiquidityTokens); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if err := fpm.RequireNonNegative(externalBaseTokenQty, "externalBaseTokenQty"); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if err := fpm.RequireNonNegative(externalQuoteTokenQty, "externalQuoteTokenQty"); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	ratio := liquidityTokenQty.Div(totalSupplyOfLiquidityTokens)
	slipMultiplier := decimal.NewFromInt(1).Sub(slippagePercent.Div(decimal.NewFromInt(100)))

	base := fpm.Round(externalBaseTokenQty.Mul(ratio).Mul(slipMultiplier), fpm.QuantityDecimalPlaces, fpm.RoundDown)
	quote := fpm.Round(externalQuoteTokenQty.Mul(ratio).Mul(slipMultiplier), fpm.QuantityDecimalPlaces, fpm.RoundDown)
	return base, quote, nil
}

package elasticmath

import (
	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// CalculateQuoteTokenQty returns the quote-token amount that preserves the
// internal base/quote ratio for a given base-token amount.
//
// NOTE: the guard below is `&&`, not `||`, preserved verbatim from the
// on-chain contract this mirrors. The likely intent is
// "baseTokenQty <= 0 || quoteTokenQtyMin < 0", but this module reproduces
// the source's behavior rather than "fixing" it; see DESIGN.md.
func CalculateQuoteTokenQty(baseTokenQty, quoteTokenQtyMin, baseTokenReserveQty, quoteTokenReserveQty decimal.Decimal) (decimal.Decimal, error) {
	if baseTokenQty.LessThanOrEqual(decimal.Zero) && quoteTokenQtyMin.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fpm.New(fpm.KindInsufficientTokenQty, "base token quantity and quote minimum are both non-positive")
	}
	if err := fpm.RequireReserve(baseTokenReserveQty); err != nil {
		return decimal.Zero, err
	}
	if err := fpm.RequireReserve(quoteTokenReserveQty); err != nil {
		return decimal.Zero, err
	}

	requiredQuote := baseTokenQty.Mul(quoteTokenReserveQty).Div(baseTokenReserveQty)
	return fpm.Round(requiredQuote, fpm.QuantityDecimalPlaces, fpm.RoundDown), nil
}

// CalculateBaseTokenQty returns the base-token amount that preserves the
// internal base/quote ratio for a given quote-token amount. Symmetric to
// CalculateQuoteTokenQty.
func CalculateBaseTokenQty(quoteTokenQty, baseTokenQtyMin, baseTokenReserveQty, quoteTokenReserveQty decimal.Decimal) (decimal.Decimal, error) {
	if quoteTokenQty.LessThanOrEqual(decimal.Zero) && baseTokenQtyMin.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fpm.New(fpm.KindInsufficientTokenQty, "quote token quantity and base minimum are both non-positive")
	}
	if err := fpm.RequireReserve(baseTokenReserveQty); err != nil {
		return decimal.Zero, err
	}
	if err := fpm.RequireReserve(quoteTokenReserveQty); err != nil {
		return decimal.Zero, err
	}

	requiredBase := quoteTokenQty.Mul(baseTokenReserveQty).Div(quoteTokenReserveQty)
	return fpm.Round(requiredBase, fpm.QuantityDecimalPlaces, fpm.RoundDown), nil
}

// calculateRequiredPair picks the (base, quote) pair that preserves the
// internal ratio for a double-asset add: it first tries to use all of
// baseTokenQtyDesired and compute the matching required quote; if that
// would exceed the caller's desired quote, it instead uses all of
// quoteTokenQtyDesired and computes the matching required base.
func calculateRequiredPair(
	baseTokenQtyDesired, baseTokenQtyMin, quoteTokenQtyDesired, quoteTokenQtyMin decimal.Decimal,
	internal InternalBalances,
) (base, quote decimal.Decimal, err error) {
	requiredQuote, err := CalculateQuoteTokenQty(baseTokenQtyDesired, quoteTokenQtyMin, internal.BaseTokenReserveQty, internal.QuoteTokenReserveQty)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	if requiredQuote.LessThanOrEqual(quoteTokenQtyDesired) {
		if requiredQuote.LessThan(quoteTokenQtyMin) {
			return decimal.Zero, decimal.Zero, fpm.New(fpm.KindInsufficientQuoteQty, "required quote amount below declared minimum")
		}
		return baseTokenQtyDesired, requiredQuote, nil
	}

	requiredBase, err := CalculateBaseTokenQty(quoteTokenQtyDesired, baseTokenQtyMin, internal.BaseTokenReserveQty, internal.QuoteTokenReserveQty)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if requiredBase.LessThan(baseTokenQtyMin) {
		return decimal.Zero, decimal.Zero, fpm.New(fpm.KindInsufficientBaseQty, "required base amount below declared minimum")
	}
	return requiredBase, quoteTokenQtyDesired, nil
}

// CalculateLiquidityTokenQtyForDoubleAssetEntry computes the base/quote
// pair and LP tokens issued for a ratio-preserving double-asset add against
// an already-initialized pool (totalSupplyOfLiquidityTokens > 0).
//
//	deltaLP = quoteContributed * lpSupply / externalQuote   (round down, 18dp)
func CalculateLiquidityTokenQtyForDoubleAssetEntry(
	baseTokenQtyDesired, baseTokenQtyMin, quoteTokenQtyDesired, quoteTokenQtyMin decimal.Decimal,
	totalSupplyOfLiquidityTokens decimal.Decimal,
	internal InternalBalances,
	externalQuoteTokenQty decimal.Decimal,
) (PairEntryResult, error) {
	if err := fpm.RequireReserve(externalQuoteTokenQty); err != nil {
		return PairEntryResult{}, err
	}

	base, quote, err := calculateRequiredPair(baseTokenQtyDesired, baseTokenQtyMin, quoteTokenQtyDesired, quoteTokenQtyMin, internal)
	if err != nil {
		return PairEntryResult{}, err
	}

	liquidity := fpm.Round(quote.Mul(totalSupplyOfLiquidityTokens).Div(externalQuoteTokenQty), fpm.QuantityDecimalPlaces, fpm.RoundDown)

	return PairEntryResult{
		BaseTokenQty:      fpm.Round(base, fpm.QuantityDecimalPlaces, fpm.RoundDown),
		QuoteTokenQty:     fpm.Round(quote, fpm.QuantityDecimalPlaces, fpm.RoundDown),
		LiquidityTokenQty: liquidity,
	}, nil
}

// CalculateLiquidityTokenQtyForFirstEntry handles the very first liquidity
// addition to an empty pool (totalSupplyOfLiquidityTokens == 0): both
// reserves are taken as-is and LP issued is the geometric mean of the two
// contributions, sqrt(base * quote).
func CalculateLiquidityTokenQtyForFirstEntry(baseTokenQtyDesired, quoteTokenQtyDesired decimal.Decimal) (PairEntryResult, error) {
	if baseTokenQtyDesired.LessThanOrEqual(decimal.Zero) {
		return PairEntryResult{}, fpm.New(fpm.KindInsufficientBaseQtyDesired, "base token quantity desired must be positive for the first liquidity addition")
	}
	if quoteTokenQtyDesired.LessThanOrEqual(decimal.Zero) {
		return PairEntryResult{}, fpm.New(fpm.KindInsufficientQuoteQtyDesired, "quote token quantity desired must be positive for the first liquidity addition")
	}

	liquidity, err := fpm.Sqrt(baseTokenQtyDesired.Mul(quoteTokenQtyDesired))
	if err != nil {
		return PairEntryResult{}, err
	}

	return PairEntryResult{
		BaseTokenQty:      fpm.Round(baseTokenQtyDesired, fpm.QuantityDecimalPlaces, fpm.RoundDown),
		QuoteTokenQty:     fpm.Round(quoteTokenQtyDesired, fpm.QuantityDecimalPlaces, fpm.RoundDown),
		LiquidityTokenQty: fpm.Round(liquidity, 0, fpm.RoundDown),
	}, nil
}

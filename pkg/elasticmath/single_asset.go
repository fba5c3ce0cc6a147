package elasticmath

import (
	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// calculateLiquidityTokenQtyForSingleAssetEntry is the gamma formula: the
// fractional LP credit owed to a supplier who closes part of the decay gap
// by themselves, rather than contributing a matched pair.
//
//	gamma = (deltaA / internalA / 2) * (deltaBChange / bDecay)
//	deltaLP = lpSupply * gamma / (1 - gamma)        (round down, 0dp)
//
// The /2 reflects that a single-asset contribution is only half of what a
// paired contribution would be; the supplier is credited half-weight LP
// per unit of decay they close.
func calculateLiquidityTokenQtyForSingleAssetEntry(
	deltaA, internalA, deltaBChange, bDecay decimal.Decimal,
	totalSupplyOfLiquidityTokens decimal.Decimal,
) (decimal.Decimal, error) {
	if err := fpm.RequireReserve(internalA); err != nil {
		return decimal.Zero, err
	}
	if err := fpm.RequireReserve(bDecay); err != nil {
		return decimal.Zero, err
	}

	two := decimal.NewFromInt(2)
	gamma := deltaA.Div(internalA).Div(two).Mul(deltaBChange.Div(bDecay))

	one := decimal.NewFromInt(1)
	denominator := one.Sub(gamma)
	if denominator.IsZero() {
		return decimal.Zero, fpm.New(fpm.KindInsufficientLiquidity, "gamma resolves to 100% of the pool")
	}

	liquidity := totalSupplyOfLiquidityTokens.Mul(gamma).Div(denominator)
	return fpm.Round(liquidity, 0, fpm.RoundDown), nil
}

// CalculateAddBaseTokenLiquidityQuantities resolves quote-decay (the
// external base balance sits below the internal/virtual one, i.e. a
// rebase-down) by accepting a base-token deposit that closes some or all
// of the gap, minting LP via the gamma formula.
//
// It returns the updated internal balances with the deposited base and its
// matching quote-side change folded in, so a caller composing this with a
// subsequent pair-entry (see AddLiquidity) sees the post-decay state.
func CalculateAddBaseTokenLiquidityQuantities(
	baseTokenQtyDesired, baseTokenQtyMin decimal.Decimal,
	externalBaseTokenQty decimal.Decimal,
	totalSupplyOfLiquidityTokens decimal.Decimal,
	internal InternalBalances,
) (SingleEntryResult, InternalBalances, error) {
	if err := fpm.RequireNonNegative(baseTokenQtyDesired, "baseTokenQtyDesired"); err != nil {
		return SingleEntryResult{}, internal, err
	}
	if err := fpm.RequireReserve(internal.BaseTokenReserveQty); err != nil {
		return SingleEntryResult{}, internal, err
	}
	if err := fpm.RequireReserve(internal.QuoteTokenReserveQty); err != nil {
		return SingleEntryResult{}, internal, err
	}

	maxBase := internal.BaseTokenReserveQty.Sub(externalBaseTokenQty)
	if baseTokenQtyMin.GreaterThanOrEqual(maxBase) {
		return SingleEntryResult{}, internal, fpm.New(fpm.KindInsufficientDecay, "requested minimum exceeds addressable base decay")
	}

	base := baseTokenQtyDesired
	if base.GreaterThan(maxBase) {
		base = maxBase
	}

	internalRatio := internal.QuoteTokenReserveQty.Div(internal.BaseTokenReserveQty)
	quoteDecayChange := base.Mul(internalRatio)
	if quoteDecayChange.LessThanOrEqual(decimal.Zero) {
		return SingleEntryResult{}, internal, fpm.New(fpm.KindInsufficientChangeInDecay, "base deposit yields no quote-side change")
	}

	quoteDecay := maxBase.Mul(internalRatio)
	if quoteDecay.LessThanOrEqual(decimal.Zero) {
		return SingleEntryResult{}, internal, fpm.New(fpm.KindNoQuoteDecay, "no quote decay present to resolve")
	}

	liquidity, err := calculateLiquidityTokenQtyForSingleAssetEntry(base, internal.BaseTokenReserveQty, quoteDecayChange, quoteDecay, totalSupplyOfLiquidityTokens)
	if err != nil {
		return SingleEntryResult{}, internal, err
	}

	updated := internal
	updated.BaseTokenReserveQty = internal.BaseTokenReserveQty.Add(base)
	updated.QuoteTokenReserveQty = internal.QuoteTokenReserveQty.Add(quoteDecayChange)

	return SingleEntryResult{
		SingleTokenQty:    fpm.Round(base, fpm.QuantityDecimalPlaces, fpm.RoundDown),
		LiquidityTokenQty: liquidity,
	}, updated, nil
}

// CalculateAddQuoteTokenLiquidityQuantities resolves base-decay (the
// external base balance sits above the internal/virtual one, i.e. a
// rebase-up) by accepting a quote-token deposit that closes some or all of
// the gap, minting LP via the gamma formula. Symmetric to
// CalculateAddBaseTokenLiquidityQuantities with base and quote swapped.
func CalculateAddQuoteTokenLiquidityQuantities(
	quoteTokenQtyDesired, quoteTokenQtyMin decimal.Decimal,
	externalBaseTokenQty decimal.Decimal,
	totalSupplyOfLiquidityTokens decimal.Decimal,
	internal InternalBalances,
) (SingleEntryResult, InternalBalances, error) {
	if err := fpm.RequireNonNegative(quoteTokenQtyDesired, "quoteTokenQtyDesired"); err != nil {
		return SingleEntryResult{}, internal, err
	}
	if err := fpm.RequireReserve(internal.BaseTokenReserveQty); err != nil {
		return SingleEntryResult{}, internal, err
	}
	if err := fpm.RequireReserve(internal.QuoteTokenReserveQty); err != nil {
		return SingleEntryResult{}, internal, err
	}

	baseDecay := externalBaseTokenQty.Sub(internal.BaseTokenReserveQty)
	omega := internal.BaseTokenReserveQty.Div(internal.QuoteTokenReserveQty)
	if omega.IsZero() {
		return SingleEntryResult{}, internal, fpm.New(fpm.KindInsufficientLiquidity, "zero pricing ratio")
	}
	maxQuote := baseDecay.Div(omega)

	if quoteTokenQtyMin.GreaterThanOrEqual(maxQuote) {
		return SingleEntryResult{}, internal, fpm.New(fpm.KindInsufficientDecay, "requested minimum exceeds addressable quote decay")
	}

	quote := quoteTokenQtyDesired
	if quote.GreaterThan(maxQuote) {
		quote = maxQuote
	}

	baseDecayChange := quote.Mul(omega)
	if baseDecayChange.LessThanOrEqual(decimal.Zero) {
		return SingleEntryResult{}, internal, fpm.New(fpm.KindInsufficientChangeInDecay, "quote deposit yields no base-side change")
	}

	if baseDecay.LessThanOrEqual(decimal.Zero) {
		return SingleEntryResult{}, internal, fpm.New(fpm.KindNoQuoteDecay, "no base decay present to resolve")
	}

	liquidity, err := calculateLiquidityTokenQtyForSingleAssetEntry(quote, internal.QuoteTokenReserveQty, baseDecayChange, baseDecay, totalSupplyOfLiquidityTokens)
	if err != nil {
		return SingleEntryResult{}, internal, err
	}

	updated := internal
	updated.BaseTokenReserveQty = internal.BaseTokenReserveQty.Add(baseDecayChange)
	updated.QuoteTokenReserveQty = internal.QuoteTokenReserveQty.Add(quote)

	return SingleEntryResult{
		SingleTokenQty:    fpm.Round(quote, fpm.QuantityDecimalPlaces, fpm.RoundDown),
		LiquidityTokenQty: liquidity,
	}, updated, nil
}

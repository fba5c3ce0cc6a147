package elasticmath

import (
	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// CalculateLiquidityTokenFeeQty computes the LP tokens minted to the DAO on
// growth-in-k since the last fee checkpoint.
//
//	rootK     = sqrt(internalBase * internalQuote)
//	rootKLast = sqrt(kLast)
//	fee       = lpSupply * (rootK - rootKLast) / (rootK*5 + rootKLast)   if rootK > rootKLast
//	          = 0                                                         otherwise
//
// When kLast is zero (no fee checkpoint yet) no fee is minted and the
// result is zero.
//
// The *5 constant is preserved exactly as documented in the contract this
// mirrors — it differs from Uniswap V2's rootK + rootKLast (the "DAO gets
// 1/6 of the 30bp fee" formula); see DESIGN.md for why this module does not
// "fix" it to the V2 form.
func CalculateLiquidityTokenFeeQty(totalSupplyOfLiquidityTokens decimal.Decimal, internal InternalBalances) (decimal.Decimal, error) {
	if internal.KLast.IsZero() {
		return decimal.Zero, nil
	}

	rootK, err := fpm.Sqrt(internal.BaseTokenReserveQty.Mul(internal.QuoteTokenReserveQty))
	if err != nil {
		return decimal.Zero, err
	}
	rootKLast, err := fpm.Sqrt(internal.KLast)
	if err != nil {
		return decimal.Zero, err
	}

	if !rootK.GreaterThan(rootKLast) {
		return decimal.Zero, nil
	}

	numerator := totalSupplyOfLiquidityTokens.Mul(rootK.Sub(rootKLast))
	denominator := rootK.Mul(decimal.NewFromInt(5)).Add(rootKLast)
	if denominator.IsZero() {
		return decimal.Zero, nil
	}

	return fpm.Round(numerator.Div(denominator), 0, fpm.RoundDown), nil
}

// AddLiquidity is the add-liquidity orchestrator: it ties decay resolution
// to pair entry. Despite reading like mutual recursion between a
// base-decay and a quote-decay handler, it is acyclic — at most one decay
// branch executes, followed by at most one pair-entry — and is implemented
// here as a single linear procedure with two named branches, per the
// source's actual control flow.
//
// States:
//  1. totalSupplyOfLiquidityTokens == 0: delegate to the first-ever-
//     liquidity branch.
//  2. Otherwise: mint the DAO's growth-in-k fee into the supply used for
//     all downstream math, then:
//     - if decay is not sufficient, delegate to a plain double-asset add;
//     - if external base exceeds internal base (base-decay), resolve it
//       by adding quote tokens, then (if desire remains) add the residual
//       pair against the post-decay internal balances;
//     - otherwise (quote-decay), resolve it by adding base tokens, then
//       the residual pair symmetrically.
//     Finally, the accumulated contribution is checked against the
//     caller's declared minimums.
func AddLiquidity(
	baseTokenQtyDesired, baseTokenQtyMin decimal.Decimal,
	quoteTokenQtyDesired, quoteTokenQtyMin decimal.Decimal,
	externalBaseTokenQty, externalQuoteTokenQty decimal.Decimal,
	totalSupplyOfLiquidityTokens decimal.Decimal,
	internal InternalBalances,
) (PairEntryResult, InternalBalances, error) {
	if err := fpm.RequireNonNegative(baseTokenQtyDesired, "baseTokenQtyDesired"); err != nil {
		return PairEntryResult{}, internal, err
	}
	if err := fpm.RequireNonNegative(quoteTokenQtyDesired, "quoteTokenQtyDesired"); err != nil {
		return PairEntryResult{}, internal, err
	}

	if totalSupplyOfLiquidityTokens.IsZero() {
		result, err := CalculateLiquidityTokenQtyForFirstEntry(baseTokenQtyDesired, quoteTokenQtyDesired)
		if err != nil {
			return PairEntryResult{}, internal, err
		}
		updated := InternalBalances{
			BaseTokenReserveQty:  result.BaseTokenQty,
			QuoteTokenReserveQty: result.QuoteTokenQty,
			KLast:                result.BaseTokenQty.Mul(result.QuoteTokenQty),
		}
		return result, updated, nil
	}

	liquidityTokenFeeQty, err := CalculateLiquidityTokenFeeQty(totalSupplyOfLiquidityTokens, internal)
	if err != nil {
		return PairEntryResult{}, internal, err
	}
	lpSupply := totalSupplyOfLiquidityTokens.Add(liquidityTokenFeeQty)

	sufficientDecay, err := IsSufficientDecayPresent(externalBaseTokenQty, internal)
	if err != nil {
		return PairEntryResult{}, internal, err
	}

	var (
		accumulated = PairEntryResult{LiquidityTokenFeeQty: liquidityTokenFeeQty}
		postDecay   = internal
	)

	if sufficientDecay {
		switch classifyDecay(externalBaseTokenQty, internal) {
		case decayBase:
			single, updated, err := CalculateAddQuoteTokenLiquidityQuantities(quoteTokenQtyDesired, decimal.Zero, externalBaseTokenQty, lpSupply, internal)
			if err != nil {
				return PairEntryResult{}, internal, err
			}
			postDecay = updated
			accumulated = accumulated.add(PairEntryResult{
				QuoteTokenQty:     single.SingleTokenQty,
				LiquidityTokenQty: single.LiquidityTokenQty,
			})
		case decayQuote:
			single, updated, err := CalculateAddBaseTokenLiquidityQuantities(baseTokenQtyDesired, decimal.Zero, externalBaseTokenQty, lpSupply, internal)
			if err != nil {
				return PairEntryResult{}, internal, err
			}
			postDecay = updated
			accumulated = accumulated.add(PairEntryResult{
				BaseTokenQty:      single.SingleTokenQty,
				LiquidityTokenQty: single.LiquidityTokenQty,
			})
		}
	}

	residualBase := baseTokenQtyDesired.Sub(accumulated.BaseTokenQty)
	residualQuote := quoteTokenQtyDesired.Sub(accumulated.QuoteTokenQty)
	desireRemains := accumulated.QuoteTokenQty.LessThan(quoteTokenQtyDesired) && accumulated.BaseTokenQty.LessThan(baseTokenQtyDesired)

	if !sufficientDecay || desireRemains {
		pairBaseDesired, pairQuoteDesired := baseTokenQtyDesired, quoteTokenQtyDesired
		if sufficientDecay {
			pairBaseDesired, pairQuoteDesired = residualBase, residualQuote
		}
		pair, err := CalculateLiquidityTokenQtyForDoubleAssetEntry(pairBaseDesired, decimal.Zero, pairQuoteDesired, decimal.Zero, lpSupply, postDecay, externalQuoteTokenQty)
		if err != nil {
			return PairEntryResult{}, internal, err
		}
		accumulated = accumulated.add(pair)
		postDecay.BaseTokenReserveQty = postDecay.BaseTokenReserveQty.Add(pair.BaseTokenQty)
		postDecay.QuoteTokenReserveQty = postDecay.QuoteTokenReserveQty.Add(pair.QuoteTokenQty)
	}

	if accumulated.BaseTokenQty.LessThan(baseTokenQtyMin) {
		return PairEntryResult{}, internal, fpm.New(fpm.KindInsufficientBaseQty, "accumulated base contribution below declared minimum")
	}
	if accumulated.QuoteTokenQty.LessThan(quoteTokenQtyMin) {
		return PairEntryResult{}, internal, fpm.New(fpm.KindInsufficientQuoteQty, "accumulated quote contribution below declared minimum")
	}

	postDecay.KLast = postDecay.BaseTokenReserveQty.Mul(postDecay.QuoteTokenReserveQty)
	return accumulated, postDecay, nil
}

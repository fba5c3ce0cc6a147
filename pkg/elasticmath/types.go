// Package elasticmath is the pure, deterministic pricing and liquidity-
// issuance core of an elastic-rebase automated market maker. It mirrors the
// on-chain exchange contract's x*y=k curve, its decay-resolution protocol
// for rebasing base tokens, and its LP issuance/redemption math.
//
// Every function here is pure: inputs are passed by value, outputs are
// returned by value, and nothing is mutated outside the return. There is no
// I/O, no logging, and no shared state — callers read reserves from chain
// themselves (see internal/onchain) and pass the resulting primitives in.
package elasticmath

import "github.com/shopspring/decimal"

// InternalBalances is the exchange's virtual reserve book: the (base, quote)
// pair that defines the pricing curve, plus the product observed at the
// last DAO-fee checkpoint. It diverges from the token contract's real
// balances after a rebase on the elastic base token.
type InternalBalances struct {
	BaseTokenReserveQty  decimal.Decimal
	QuoteTokenReserveQty decimal.Decimal
	KLast                decimal.Decimal
}

// PairEntryResult is the outcome of a double-asset (or decay + pair-residual)
// liquidity addition.
type PairEntryResult struct {
	BaseTokenQty         decimal.Decimal
	QuoteTokenQty        decimal.Decimal
	LiquidityTokenQty    decimal.Decimal
	LiquidityTokenFeeQty decimal.Decimal
}

// SingleEntryResult is the outcome of a single-asset decay-resolving
// liquidity addition.
type SingleEntryResult struct {
	SingleTokenQty    decimal.Decimal
	LiquidityTokenQty decimal.Decimal
}

// add sums two PairEntryResults field-wise; used by the add-liquidity
// orchestrator to accumulate a decay leg and a pair-residual leg.
func (r PairEntryResult) add(o PairEntryResult) PairEntryResult {
	return PairEntryResult{
		BaseTokenQty:         r.BaseTokenQty.Add(o.BaseTokenQty),
		QuoteTokenQty:        r.QuoteTokenQty.Add(o.QuoteTokenQty),
		LiquidityTokenQty:    r.LiquidityTokenQty.Add(o.LiquidityTokenQty),
		LiquidityTokenFeeQty: r.LiquidityTokenFeeQty.Add(o.LiquidityTokenFeeQty),
	}
}

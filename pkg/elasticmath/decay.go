package elasticmath

import (
	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// IsSufficientDecayPresent classifies the relationship between the real
// (external) base token balance and the virtual (internal) one: decay is
// the divergence a rebase on the elastic base token leaves behind. It
// returns true iff the absolute base divergence, re-expressed in
// quote-token units at the internal price ratio, strictly exceeds one
// unit:
//
//	|externalBase - internalBase| / (internalBase / internalQuote) > 1
//
// The comparison is strict: exactly-at-threshold divergence (== 1) is not
// sufficient decay, and below it the caller should proceed as a plain
// double-asset add (pkg CalculateLiquidityTokenQtyForDoubleAssetEntry)
// rather than resolving decay first.
func IsSufficientDecayPresent(externalBaseTokenQty decimal.Decimal, internal InternalBalances) (bool, error) {
	if err := fpm.RequireNonNegative(externalBaseTokenQty, "externalBaseTokenQty"); err != nil {
		return false, err
	}
	if err := fpm.RequireReserve(internal.BaseTokenReserveQty); err != nil {
		return false, err
	}
	if err := fpm.RequireReserve(internal.QuoteTokenReserveQty); err != nil {
		return false, err
	}

	omega := internal.BaseTokenReserveQty.Div(internal.QuoteTokenReserveQty)
	if omega.IsZero() {
		return false, fpm.New(fpm.KindInsufficientLiquidity, "zero pricing ratio")
	}

	divergence := externalBaseTokenQty.Sub(internal.BaseTokenReserveQty).Abs()
	return divergence.Div(omega).GreaterThan(decimal.NewFromInt(1)), nil
}

// decayDirection classifies which side needs a single-asset top-up.
type decayDirection int

const (
	decayNone decayDirection = iota
	// decayBase: external base exceeds internal base (rebase-up);
	// resolved by adding quote tokens.
	decayBase
	// decayQuote: external base is below internal base (rebase-down);
	// resolved by adding base tokens.
	decayQuote
)

func classifyDecay(externalBaseTokenQty decimal.Decimal, internal InternalBalances) decayDirection {
	switch {
	case externalBaseTokenQty.GreaterThan(internal.BaseTokenReserveQty):
		return decayBase
	case externalBaseTokenQty.LessThan(internal.BaseTokenReserveQty):
		return decayQuote
	default:
		return decayNone
	}
}

package elasticmath

import (
	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// CalculateFees returns the fee charged against swapAmount at feeBasisPoints.
// fee = swapAmount * feeBasisPoints / 10000. The parameter order is fixed
// here as (feeBasisPoints, swapAmount) and every call site in this module
// uses that order; the source this library mirrors calls it both ways at
// different sites, which is harmless because multiplication commutes, but
// this module does not reproduce that inconsistency.
func CalculateFees(feeBasisPoints fpm.BasisPoints, swapAmount decimal.Decimal) (decimal.Decimal, error) {
	if err := feeBasisPoints.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := fpm.RequireNonNegative(swapAmount, "swapAmount"); err != nil {
		return decimal.Zero, err
	}
	fee := swapAmount.Mul(feeBasisPoints.Decimal()).Div(decimal.NewFromInt(fpm.BasisPointsDenominator))
	return fpm.Round(fee, fpm.QuantityDecimalPlaces, fpm.RoundDown), nil
}

// QtyOutAfterFees implements the constant-product rule x*y=k with an
// input-side fee, generalizing the teacher's pkg/uniswapv2.GetAmountOut
// (math/big.Int wei arithmetic) to fpm.Decimal with an explicit
// basis-point fee and the rounding steps spec'd for this contract:
//
//	diffBP       = 10000 - feeBP
//	inQtyLessFee = inQty * diffBP                (round down, 18dp)
//	numerator    = inQtyLessFee * outReserve      (round down, 18dp)
//	denominator  = inReserve * 10000 + inQtyLessFee
//	result       = numerator / denominator        (round down, 0dp)
//
// The final truncation to 0dp matches on-chain integer wei; ties never
// occur because truncation, not rounding, is applied.
func QtyOutAfterFees(inQty, inReserve, outReserve decimal.Decimal, feeBasisPoints fpm.BasisPoints) (decimal.Decimal, error) {
	if err := feeBasisPoints.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := fpm.RequireNonNegative(inQty, "inQty"); err != nil {
		return decimal.Zero, err
	}
	if err := fpm.RequireReserve(inReserve); err != nil {
		return decimal.Zero, err
	}
	if err := fpm.RequireReserve(outReserve); err != nil {
		return decimal.Zero, err
	}

	diffBP := decimal.NewFromInt(fpm.BasisPointsDenominator).Sub(feeBasisPoints.Decimal())
	inQtyLessFee := fpm.Round(inQty.Mul(diffBP), fpm.QuantityDecimalPlaces, fpm.RoundDown)
	numerator := fpm.Round(inQtyLessFee.Mul(outReserve), fpm.QuantityDecimalPlaces, fpm.RoundDown)
	denominator := inReserve.Mul(decimal.NewFromInt(fpm.BasisPointsDenominator)).Add(inQtyLessFee)
	if denominator.IsZero() {
		return decimal.Zero, fpm.New(fpm.KindInsufficientLiquidity, "zero denominator computing output amount")
	}

	result := numerator.Div(denominator)
	return fpm.Round(result, 0, fpm.RoundDown), nil
}

// CalculateBaseTokenQtyFromQuoteTokenQty computes the base-token output for
// a quote-token-in swap. When the external base reserve has shrunk below
// the internal (virtual) base reserve — a rebase-down, i.e. quote decay —
// the curve used for pricing is rescaled by the internal base/quote ratio
// so the swap is priced against the *currently real* base supply rather
// than the stale virtual one; otherwise the swap is priced directly
// against the internal balances.
func CalculateBaseTokenQtyFromQuoteTokenQty(
	quoteTokenQty decimal.Decimal,
	externalBaseTokenQty decimal.Decimal,
	internal InternalBalances,
	feeBasisPoints fpm.BasisPoints,
) (decimal.Decimal, error) {
	if err := fpm.RequireReserve(internal.QuoteTokenReserveQty); err != nil {
		return decimal.Zero, err
	}

	if externalBaseTokenQty.LessThan(internal.BaseTokenReserveQty) {
		omega := internal.BaseTokenReserveQty.Div(internal.QuoteTokenReserveQty)
		if omega.IsZero() {
			return decimal.Zero, fpm.New(fpm.KindInsufficientLiquidity, "zero pricing ratio")
		}
		impliedQuote := externalBaseTokenQty.Div(omega)
		return QtyOutAfterFees(quoteTokenQty, impliedQuote, externalBaseTokenQty, feeBasisPoints)
	}

	return QtyOutAfterFees(quoteTokenQty, internal.QuoteTokenReserveQty, internal.BaseTokenReserveQty, feeBasisPoints)
}

// CalculateInputAmountFromOutputAmount inverts QtyOutAfterFees: given a
// desired output quantity and a slippage tolerance, it solves for the
// required input quantity.
//
//	numerator        = outQty * inReserve * 10000
//	slipTerm         = outReserve * (slippagePercent / 100)
//	denomReserveTerm = outQty + slipTerm - outReserve
//	denominator      = denomReserveTerm * (10000 - feeBP)
//	inQty            = |numerator / denominator|
//
// denomReserveTerm is commonly negative (when outQty < outReserve, the
// typical case), so the result is taken as an absolute value.
func CalculateInputAmountFromOutputAmount(
	outQty, outReserve, inReserve decimal.Decimal,
	slippagePercent decimal.Decimal,
	feeBasisPoints fpm.BasisPoints,
) (decimal.Decimal, error) {
	if err := feeBasisPoints.Validate(); err != nil {
		return decimal.Zero, err
	}
	if outQty.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fpm.New(fpm.KindInsufficientTokenQty, "output amount must be positive")
	}
	if err := fpm.RequireReserve(outReserve); err != nil {
		return decimal.Zero, err
	}
	if err := fpm.RequireReserve(inReserve); err != nil {
		return decimal.Zero, err
	}

	numerator := outQty.Mul(inReserve).Mul(decimal.NewFromInt(fpm.BasisPointsDenominator))
	slipTerm := outReserve.Mul(slippagePercent).Div(decimal.NewFromInt(100))
	denomReserveTerm := outQty.Add(slipTerm).Sub(outReserve)
	diffBP := decimal.NewFromInt(fpm.BasisPointsDenominator).Sub(feeBasisPoints.Decimal())
	denominator := denomReserveTerm.Mul(diffBP)
	if denominator.IsZero() {
		return decimal.Zero, fpm.New(fpm.KindInsufficientLiquidity, "zero denominator inverting output amount")
	}

	inQty := numerator.Div(denominator).Abs()
	return fpm.Round(inQty, fpm.QuantityDecimalPlaces, fpm.RoundDown), nil
}

// CalculateExchangeRate returns inReserve/outReserve, unrounded.
func CalculateExchangeRate(inReserve, outReserve decimal.Decimal) (decimal.Decimal, error) {
	if err := fpm.RequireReserve(inReserve); err != nil {
		return decimal.Zero, err
	}
	if err := fpm.RequireReserve(outReserve); err != nil {
		return decimal.Zero, err
	}
	return inReserve.Div(outReserve), nil
}

// CalculateOutputAmountLessFees computes the constant-product output for
// inQty and then reduces it by the caller's declared slippage tolerance,
// returning the minimum amount the caller is willing to accept. At
// slippagePercent == 0 this is exactly QtyOutAfterFees's result, which is
// what makes the round-trip identity with
// CalculateInputAmountFromOutputAmount hold.
func CalculateOutputAmountLessFees(
	inQty, inReserve, outReserve decimal.Decimal,
	slippagePercent decimal.Decimal,
	feeBasisPoints fpm.BasisPoints,
) (decimal.Decimal, error) {
	out, err := QtyOutAfterFees(inQty, inReserve, outReserve, feeBasisPoints)
	if err != nil {
		return decimal.Zero, err
	}
	multiplier := decimal.NewFromInt(100).Sub(slippagePercent).Div(decimal.NewFromInt(100))
	return fpm.Round(out.Mul(multiplier), 0, fpm.RoundDown), nil
}

// CalculatePriceImpact expresses how far a trade's effective rate diverges
// from the pool's current marginal rate, as a percentage.
//
//	initialOut      = inQty / initialRate
//	outLessFeesSlip = CalculateOutputAmountLessFees(inQty, ..., slippagePercent, feeBP)
//	impact          = 100 - (outLessFeesSlip / initialOut * 100)
func CalculatePriceImpact(
	inQty, inReserve, outReserve decimal.Decimal,
	slippagePercent decimal.Decimal,
	feeBasisPoints fpm.BasisPoints,
) (decimal.Decimal, error) {
	initialRate, err := CalculateExchangeRate(inReserve, outReserve)
	if err != nil {
		return decimal.Zero, err
	}
	if initialRate.IsZero() {
		return decimal.Zero, fpm.New(fpm.KindInsufficientLiquidity, "zero initial exchange rate")
	}
	initialOut := inQty.Div(initialRate)

	outLessFeesSlip, err := CalculateOutputAmountLessFees(inQty, inReserve, outReserve, slippagePercent, feeBasisPoints)
	if err != nil {
		return decimal.Zero, err
	}
	if initialOut.IsZero() {
		return decimal.Zero, fpm.New(fpm.KindInsufficientQty, "zero initial output amount")
	}

	impact := decimal.NewFromInt(100).Sub(outLessFeesSlip.Div(initialOut).Mul(decimal.NewFromInt(100)))
	return impact, nil
}

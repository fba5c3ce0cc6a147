// Package fpm implements the fixed-precision decimal arithmetic the rest of
// this module builds on: a thin layer over github.com/shopspring/decimal
// that adds the rounding-mode and validation contracts the on-chain contract
// this library mirrors relies on for bit-accurate quoting.
package fpm

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// QuantityDecimalPlaces is the fixed decimal-places bound token quantities
// round to. It matches the 18-decimal-wei scale of the on-chain contract.
const QuantityDecimalPlaces int32 = 18

// BasisPointsDenominator is the denominator basis points are expressed over;
// 10000 basis points represents 100%.
const BasisPointsDenominator = 10000

func init() {
	// The on-chain values this library mirrors are 256-bit integers, which
	// need up to 78 significant decimal digits; pad well past that so
	// intermediate ratio/rate math never loses precision before the final
	// rounding step.
	decimal.DivisionPrecision = 90
}

// WAD is 10^18, the scale factor of on-chain fixed-point arithmetic.
var WAD = decimal.New(1, 18)

// RoundingMode selects how Round truncates or rounds a Decimal to N places.
type RoundingMode int

const (
	// RoundDown truncates toward zero. This is the default for quantities,
	// matching on-chain integer truncation.
	RoundDown RoundingMode = iota
	// RoundUp rounds away from zero when the truncated remainder is non-zero.
	RoundUp
	// RoundHalfEven rounds half-way values to the nearest even digit
	// ("banker's rounding").
	RoundHalfEven
)

// BasisPoints is an integer in [0, BasisPointsDenominator]. 10000
// represents 100%. Used for fees and for slippage-percent conversion.
type BasisPoints uint16

// Validate reports a *Error if bp is out of [0, 10000].
func (bp BasisPoints) Validate() error {
	if bp > BasisPointsDenominator {
		return New(KindNegativeInput, "basis points out of range [0, 10000]")
	}
	return nil
}

// Decimal returns bp as a decimal.Decimal, e.g. BasisPoints(30).Decimal() == 30.
func (bp BasisPoints) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(bp))
}

// Round rounds d to places decimal places using the given mode. Every
// quantity-producing function in this module calls Round(d, 18, RoundDown)
// (or 0, RoundDown for values that represent integer on-chain wei) as its
// final step.
func Round(d decimal.Decimal, places int32, mode RoundingMode) decimal.Decimal {
	switch mode {
	case RoundUp:
		truncated := d.Truncate(places)
		if truncated.Equal(d) {
			return truncated
		}
		unit := decimal.New(1, -places)
		if d.IsNegative() {
			return truncated.Sub(unit)
		}
		return truncated.Add(unit)
	case RoundHalfEven:
		return d.RoundBank(places)
	case RoundDown:
		fallthrough
	default:
		return d.Truncate(places)
	}
}

// RequireReserve returns KindInsufficientLiquidity when reserve is zero
// (the division-by-zero case that represents an empty pool), and
// KindNegativeInput when it is negative. Callers performing a division
// where the divisor is a reserve quantity must check this first so the
// caller-visible error distinguishes an empty-pool condition from a
// generic arithmetic failure.
func RequireReserve(reserve decimal.Decimal) error {
	if reserve.IsNegative() {
		return New(KindNegativeInput, "reserve quantity is negative")
	}
	if reserve.IsZero() {
		return New(KindInsufficientLiquidity, "reserve quantity is zero")
	}
	return nil
}

// RequireNonNegative returns KindNegativeInput if qty is negative.
func RequireNonNegative(qty decimal.Decimal, field string) error {
	if qty.IsNegative() {
		return New(KindNegativeInput, field+" must not be negative")
	}
	return nil
}

// ParseDecimal parses s as a Decimal, returning KindNaN when s does not
// parse as a finite number.
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, New(KindNaN, "could not parse \""+s+"\" as a number")
	}
	return d, nil
}

// sqrtEpsilon bounds the Newton-Raphson iteration below; once two
// successive guesses differ by less than this, the result is accepted.
var sqrtEpsilon = decimal.New(1, -50)

// Sqrt computes the non-negative square root of d to fpm's configured
// precision using the Babylonian (Newton-Raphson) method — the same
// doubling-division iteration Uniswap's Math.sol uses for its integer
// sqrt, generalized here from uint64 to an arbitrary-precision Decimal.
// The iteration count is capped, so latency stays bounded regardless of
// input magnitude per this module's concurrency model.
func Sqrt(d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNegative() {
		return decimal.Zero, New(KindNegativeInput, "square root of a negative number")
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}

	guess := d
	one := decimal.NewFromInt(1)
	if guess.LessThan(one) {
		guess = one
	}
	two := decimal.NewFromInt(2)

	const maxIterations = 100
	for i := 0; i < maxIterations; i++ {
		next := guess.Add(d.Div(guess)).Div(two)
		diff := next.Sub(guess).Abs()
		guess = next
		if diff.LessThan(sqrtEpsilon) {
			break
		}
	}
	return guess, nil
}

// SqrtInt is an exact integer square root (floor), used where the source
// operates on raw on-chain integers rather than scaled decimals, mirroring
// Uniswap's Math.sol sqrt(uint256) via math/big's integer sqrt.
func SqrtInt(i *big.Int) *big.Int {
	return new(big.Int).Sqrt(i)
}

package elasticmath

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

func TestCalculateLiquidityTokenFeeQty_ZeroKLastIsZeroFee(t *testing.T) {
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(10000),
		QuoteTokenReserveQty: decimal.NewFromInt(50000),
		KLast:                decimal.Zero,
	}
	fee, err := CalculateLiquidityTokenFeeQty(decimal.NewFromInt(1_000_000), internal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fee.IsZero() {
		t.Fatalf("expected zero fee when kLast is zero, got %s", fee)
	}
}

func TestCalculateLiquidityTokenFeeQty_GrowthInKMintsFee(t *testing.T) {
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(11000),
		QuoteTokenReserveQty: decimal.NewFromInt(55000),
		KLast:                decimal.NewFromInt(10000 * 50000),
	}
	fee, err := CalculateLiquidityTokenFeeQty(decimal.NewFromInt(1_000_000), internal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fee.LessThanOrEqual(decimal.Zero) {
		t.Fatalf("expected positive DAO fee on k growth, got %s", fee)
	}

	rootK, _ := fpm.Sqrt(internal.BaseTokenReserveQty.Mul(internal.QuoteTokenReserveQty))
	rootKLast, _ := fpm.Sqrt(internal.KLast)
	wantDenom := rootK.Mul(decimal.NewFromInt(5)).Add(rootKLast)
	wantNumer := decimal.NewFromInt(1_000_000).Mul(rootK.Sub(rootKLast))
	want := fpm.Round(wantNumer.Div(wantDenom), 0, fpm.RoundDown)
	if !fee.Equal(want) {
		t.Fatalf("fee = %s, want %s (rootK*5+rootKLast denominator)", fee, want)
	}
}

func TestCalculateLiquidityTokenFeeQty_NoGrowthIsZeroFee(t *testing.T) {
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(10000),
		QuoteTokenReserveQty: decimal.NewFromInt(50000),
		KLast:                decimal.NewFromInt(10000 * 50000),
	}
	fee, err := CalculateLiquidityTokenFeeQty(decimal.NewFromInt(1_000_000), internal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fee.IsZero() {
		t.Fatalf("expected zero fee when rootK has not grown, got %s", fee)
	}
}

func TestAddLiquidity_FirstEntry(t *testing.T) {
	result, updated, err := AddLiquidity(
		decimal.NewFromInt(10000), decimal.Zero,
		decimal.NewFromInt(40000), decimal.Zero,
		decimal.Zero, decimal.Zero,
		decimal.Zero,
		InternalBalances{},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.LiquidityTokenQty.Equal(decimal.NewFromInt(20000)) {
		t.Fatalf("expected 20000 LP on first entry, got %s", result.LiquidityTokenQty)
	}
	if !updated.KLast.Equal(decimal.NewFromInt(10000).Mul(decimal.NewFromInt(40000))) {
		t.Fatalf("expected kLast = base*quote after first entry, got %s", updated.KLast)
	}
}

func TestAddLiquidity_NoDecayPlainPair(t *testing.T) {
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(10000),
		QuoteTokenReserveQty: decimal.NewFromInt(50000),
		KLast:                decimal.NewFromInt(10000 * 50000),
	}
	result, updated, err := AddLiquidity(
		decimal.NewFromInt(1000), decimal.Zero,
		decimal.NewFromInt(5000), decimal.Zero,
		decimal.NewFromInt(10000), decimal.NewFromInt(50000),
		decimal.NewFromInt(1_000_000),
		internal,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.LiquidityTokenQty.LessThanOrEqual(decimal.Zero) {
		t.Fatalf("expected positive LP issuance, got %s", result.LiquidityTokenQty)
	}
	if !updated.BaseTokenReserveQty.Equal(decimal.NewFromInt(11000)) {
		t.Fatalf("expected base reserve to grow by contribution, got %s", updated.BaseTokenReserveQty)
	}
	if !updated.QuoteTokenReserveQty.Equal(decimal.NewFromInt(55000)) {
		t.Fatalf("expected quote reserve to grow by contribution, got %s", updated.QuoteTokenReserveQty)
	}
}

func TestAddLiquidity_BelowDeclaredMinimumFails(t *testing.T) {
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(10000),
		QuoteTokenReserveQty: decimal.NewFromInt(50000),
		KLast:                decimal.NewFromInt(10000 * 50000),
	}
	_, _, err := AddLiquidity(
		decimal.NewFromInt(1000), decimal.NewFromInt(1_000_000),
		decimal.NewFromInt(5000), decimal.Zero,
		decimal.NewFromInt(10000), decimal.NewFromInt(50000),
		decimal.NewFromInt(1_000_000),
		internal,
	)
	if !fpm.Is(err, fpm.KindInsufficientBaseQty) {
		t.Fatalf("expected INSUFFICIENT_BASE_QTY, got %v", err)
	}
}

func TestAddLiquidity_BaseDecayResolvedThenResidualPair(t *testing.T) {
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(10000),
		QuoteTokenReserveQty: decimal.NewFromInt(50000),
		KLast:                decimal.NewFromInt(10000 * 50000),
	}
	externalBase := decimal.NewFromInt(10500) // base-decay

	result, updated, err := AddLiquidity(
		decimal.NewFromInt(1000), decimal.Zero,
		decimal.NewFromInt(10000), decimal.Zero,
		externalBase, decimal.NewFromInt(50000),
		decimal.NewFromInt(1_000_000),
		internal,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.LiquidityTokenQty.LessThanOrEqual(decimal.Zero) {
		t.Fatalf("expected positive total LP issuance across decay+pair legs, got %s", result.LiquidityTokenQty)
	}
	if updated.BaseTokenReserveQty.LessThanOrEqual(internal.BaseTokenReserveQty) {
		t.Fatalf("expected base reserve to grow, got %s", updated.BaseTokenReserveQty)
	}
	if updated.QuoteTokenReserveQty.LessThanOrEqual(internal.QuoteTokenReserveQty) {
		t.Fatalf("expected quote reserve to grow, got %s", updated.QuoteTokenReserveQty)
	}
}

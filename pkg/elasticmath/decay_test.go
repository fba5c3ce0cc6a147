package elasticmath

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

func TestIsSufficientDecayPresent_NoDecay(t *testing.T) {
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(10000),
		QuoteTokenReserveQty: decimal.NewFromInt(50000),
	}
	present, err := IsSufficientDecayPresent(decimal.NewFromInt(10000), internal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if present {
		t.Fatalf("expected no decay when external == internal base")
	}
}

func TestIsSufficientDecayPresent_ExactlyAtThresholdIsNotSufficient(t *testing.T) {
	// omega = base/quote = 10000/50000 = 0.2, so 1 unit of quote-equivalent
	// divergence corresponds to exactly 0.2 units of base divergence.
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(10000),
		QuoteTokenReserveQty: decimal.NewFromInt(50000),
	}
	omega := internal.BaseTokenReserveQty.Div(internal.QuoteTokenReserveQty)
	externalBase := internal.BaseTokenReserveQty.Add(omega)

	present, err := IsSufficientDecayPresent(externalBase, internal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if present {
		t.Fatalf("divergence exactly at threshold must not count as sufficient decay")
	}
}

func TestIsSufficientDecayPresent_AboveThreshold(t *testing.T) {
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(10000),
		QuoteTokenReserveQty: decimal.NewFromInt(50000),
	}
	present, err := IsSufficientDecayPresent(decimal.NewFromInt(10500), internal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !present {
		t.Fatalf("expected sufficient decay for a 500-unit base rebase against a 0.2 price ratio")
	}
}

func TestIsSufficientDecayPresent_Idempotent(t *testing.T) {
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(10000),
		QuoteTokenReserveQty: decimal.NewFromInt(50000),
	}
	first, err := IsSufficientDecayPresent(decimal.NewFromInt(10500), internal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := IsSufficientDecayPresent(decimal.NewFromInt(10500), internal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("decay detector must be idempotent for identical inputs")
	}
}

func TestIsSufficientDecayPresent_ZeroQuoteReserve(t *testing.T) {
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(10000),
		QuoteTokenReserveQty: decimal.Zero,
	}
	_, err := IsSufficientDecayPresent(decimal.NewFromInt(10000), internal)
	if !fpm.Is(err, fpm.KindInsufficientLiquidity) {
		t.Fatalf("expected INSUFFICIENT_LIQUIDITY, got %v", err)
	}
}

func TestClassifyDecay(t *testing.T) {
	internal := InternalBalances{
		BaseTokenReserveQty:  decimal.NewFromInt(10000),
		QuoteTokenReserveQty: decimal.NewFromInt(50000),
	}

	if got := classifyDecay(decimal.NewFromInt(10500), internal); got != decayBase {
		t.Fatalf("classifyDecay(external>internal) = %v, want decayBase", got)
	}
	if got := classifyDecay(decimal.NewFromInt(9500), internal); got != decayQuote {
		t.Fatalf("classifyDecay(external<internal) = %v, want decayQuote", got)
	}
	if got := classifyDecay(decimal.NewFromInt(10000), internal); got != decayNone {
		t.Fatalf("classifyDecay(external==internal) = %v, want decayNone", got)
	}
}

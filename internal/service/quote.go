package service

import (
	"context"
	"math/big"
	"time"

	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/internal/metrics"
	"github.com/ElasticSwap/elasticswap-sdk/internal/onchain"
	"github.com/ElasticSwap/elasticswap-sdk/pkg/elasticmath"
	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// QuoteService reads the live state of an exchange contract and returns a
// pkg/elasticmath quote against it. It holds no pricing logic of its own —
// every calculation delegates to pkg/elasticmath, which stays pure and
// does no I/O of its own.
type QuoteService struct {
	BaseService
	ethereumClient *ethclient.Client
	metrics        *metrics.QuoteMetrics
}

// NewQuoteService constructs a QuoteService. metrics may be nil, in which
// case calls are not instrumented.
func NewQuoteService(logger *slog.Logger, ec *ethclient.Client, m *metrics.QuoteMetrics) *QuoteService {
	return &QuoteService{
		BaseService:    BaseService{logger: logger},
		ethereumClient: ec,
		metrics:        m,
	}
}

func (s *QuoteService) observe(operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.Requests.WithLabelValues(operation).Inc()
	s.metrics.Latency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		kind := "UNKNOWN"
		if e, ok := asKindedError(err); ok {
			kind = string(e.Kind)
		}
		s.metrics.Errors.WithLabelValues(operation, kind).Inc()
	}
}

// exchangeState is the bundle of on-chain reads every quote operation needs.
type exchangeState struct {
	internal      elasticmath.InternalBalances
	lpSupply      decimal.Decimal
	feeBP         fpm.BasisPoints
	externalBase  decimal.Decimal
	externalQuote decimal.Decimal
}

func (s *QuoteService) readState(ctx context.Context, exchange common.Address) (exchangeState, error) {
	ex := onchain.NewExchange(s.ethereumClient, exchange)

	bn, err := s.ethereumClient.BlockNumber(ctx)
	if err != nil {
		return exchangeState{}, err
	}
	blockNum := new(big.Int).SetUint64(bn)

	internal, err := ex.InternalBalances(ctx, blockNum)
	if err != nil {
		return exchangeState{}, err
	}
	lpSupply, err := ex.TotalSupplyOfLiquidityTokens(ctx, blockNum)
	if err != nil {
		return exchangeState{}, err
	}
	feeBP, err := ex.FeeBasisPoints(ctx, blockNum)
	if err != nil {
		return exchangeState{}, err
	}

	baseToken, quoteToken, err := ex.Tokens(ctx, blockNum)
	if err != nil {
		return exchangeState{}, err
	}
	externalBase, err := onchain.ExternalBalance(ctx, s.ethereumClient, baseToken, exchange, blockNum)
	if err != nil {
		return exchangeState{}, err
	}
	externalQuote, err := onchain.ExternalBalance(ctx, s.ethereumClient, quoteToken, exchange, blockNum)
	if err != nil {
		return exchangeState{}, err
	}

	return exchangeState{
		internal:      internal,
		lpSupply:      lpSupply,
		feeBP:         feeBP,
		externalBase:  externalBase,
		externalQuote: externalQuote,
	}, nil
}

// Swap quotes a base-to-quote (or quote-to-base, via baseToQuote) swap
// against the exchange's current internal reserves.
func (s *QuoteService) Swap(ctx context.Context, exchange common.Address, inQty decimal.Decimal, baseToQuote bool) (decimal.Decimal, error) {
	start := time.Now()
	var err error
	defer func() { s.observe("swap", start, err) }()

	var state exchangeState
	state, err = s.readState(ctx, exchange)
	if err != nil {
		return decimal.Zero, err
	}

	inReserve, outReserve := state.internal.BaseTokenReserveQty, state.internal.QuoteTokenReserveQty
	if !baseToQuote {
		inReserve, outReserve = outReserve, inReserve
	}

	var out decimal.Decimal
	out, err = elasticmath.QtyOutAfterFees(inQty, inReserve, outReserve, state.feeBP)
	if err != nil {
		return decimal.Zero, err
	}

	s.logger.Debug("swap quoted", "exchange", exchange.Hex(), "in", inQty.String(), "out", out.String(), "baseToQuote", baseToQuote)
	return out, nil
}

// AddLiquidityQuote quotes a double-asset (and, if decay is present,
// decay-resolving) liquidity addition.
func (s *QuoteService) AddLiquidityQuote(
	ctx context.Context, exchange common.Address,
	baseTokenQtyDesired, baseTokenQtyMin, quoteTokenQtyDesired, quoteTokenQtyMin decimal.Decimal,
) (elasticmath.PairEntryResult, error) {
	start := time.Now()
	var err error
	defer func() { s.observe("add_liquidity", start, err) }()

	var state exchangeState
	state, err = s.readState(ctx, exchange)
	if err != nil {
		return elasticmath.PairEntryResult{}, err
	}

	var result elasticmath.PairEntryResult
	result, _, err = elasticmath.AddLiquidity(
		baseTokenQtyDesired, baseTokenQtyMin,
		quoteTokenQtyDesired, quoteTokenQtyMin,
		state.externalBase, state.externalQuote,
		state.lpSupply, state.internal,
	)
	if err != nil {
		return elasticmath.PairEntryResult{}, err
	}

	s.logger.Debug("add-liquidity quoted", "exchange", exchange.Hex(), "lpOut", result.LiquidityTokenQty.String())
	return result, nil
}

// RemoveLiquidityQuote quotes the reserves released by redeeming
// liquidityTokenQty LP tokens, with slippagePercent applied as a floor.
func (s *QuoteService) RemoveLiquidityQuote(
	ctx context.Context, exchange common.Address,
	liquidityTokenQty, slippagePercent decimal.Decimal,
) (baseTokenQtyMin, quoteTokenQtyMin decimal.Decimal, err error) {
	start := time.Now()
	defer func() { s.observe("remove_liquidity", start, err) }()

	var state exchangeState
	state, err = s.readState(ctx, exchange)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	baseTokenQtyMin, quoteTokenQtyMin, err = elasticmath.CalculateRemoveLiquidityQuantities(
		liquidityTokenQty, state.lpSupply, state.externalBase, state.externalQuote, slippagePercent,
	)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	s.logger.Debug("remove-liquidity quoted", "exchange", exchange.Hex(), "baseMin", baseTokenQtyMin.String(), "quoteMin", quoteTokenQtyMin.String())
	return baseTokenQtyMin, quoteTokenQtyMin, nil
}

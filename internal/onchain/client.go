// Package onchain is the thin collaborator that reads the state
// pkg/elasticmath needs from a live exchange contract: the virtual reserve
// book, the DAO fee checkpoint, the LP supply, the fee rate, and the real
// (possibly rebased) external balance of the base token. It does no math of
// its own — every value it returns is handed to pkg/elasticmath unmodified.
package onchain

import (
	"context"
	"fmt"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/elasticmath"
	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// Exchange reads the state of a single base/quote exchange pair contract.
//
// Storage layout assumed (standard Solidity slot packing, no ABI round-trip
// needed for these reads):
//
//	slot 0: baseToken address
//	slot 1: quoteToken address
//	slot 2: internalBalances.baseTokenReserveQty  (uint256, 18dp)
//	slot 3: internalBalances.quoteTokenReserveQty (uint256, 18dp)
//	slot 4: kLast                                 (uint256)
//	slot 5: totalSupply of the LP token (the exchange is itself an ERC20)
//	slot 6: totalLiquidityFeeInBasisPoints (uint256, low 16 bits significant)
type Exchange struct {
	client  *ethclient.Client
	address common.Address
}

const (
	slotBaseToken  = 0
	slotQuoteToken = 1
	slotBaseQty    = 2
	slotQuoteQty   = 3
	slotKLast      = 4
	slotLPSupply   = 5
	slotFeeBP      = 6
)

// NewExchange binds an Exchange reader to the given contract address.
func NewExchange(client *ethclient.Client, address common.Address) *Exchange {
	return &Exchange{client: client, address: address}
}

func (e *Exchange) readSlot(ctx context.Context, slot uint64, blockNum *big.Int) ([]byte, error) {
	key := common.BigToHash(new(big.Int).SetUint64(slot))
	b, err := e.client.StorageAt(ctx, e.address, key, blockNum)
	if err != nil {
		return nil, fmt.Errorf("storageAt slot %d (exchange %s, block %s): %w", slot, e.address.Hex(), blockNum.String(), err)
	}
	return b, nil
}

func weiToQty(b []byte) decimal.Decimal {
	v := new(big.Int).SetBytes(b)
	return decimal.NewFromBigInt(v, -int32(fpm.QuantityDecimalPlaces))
}

// Tokens returns the base and quote token contract addresses.
func (e *Exchange) Tokens(ctx context.Context, blockNum *big.Int) (base, quote common.Address, err error) {
	b0, err := e.readSlot(ctx, slotBaseToken, blockNum)
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	b1, err := e.readSlot(ctx, slotQuoteToken, blockNum)
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	return common.BytesToAddress(b0), common.BytesToAddress(b1), nil
}

// InternalBalances reads the virtual reserve book at blockNum.
func (e *Exchange) InternalBalances(ctx context.Context, blockNum *big.Int) (elasticmath.InternalBalances, error) {
	baseB, err := e.readSlot(ctx, slotBaseQty, blockNum)
	if err != nil {
		return elasticmath.InternalBalances{}, err
	}
	quoteB, err := e.readSlot(ctx, slotQuoteQty, blockNum)
	if err != nil {
		return elasticmath.InternalBalances{}, err
	}
	kLastB, err := e.readSlot(ctx, slotKLast, blockNum)
	if err != nil {
		return elasticmath.InternalBalances{}, err
	}

	// kLast is the product of two 18dp quantities, so it carries 36
	// decimal places of implied scale.
	kLast := decimal.NewFromBigInt(new(big.Int).SetBytes(kLastB), -2*int32(fpm.QuantityDecimalPlaces))

	return elasticmath.InternalBalances{
		BaseTokenReserveQty:  weiToQty(baseB),
		QuoteTokenReserveQty: weiToQty(quoteB),
		KLast:                kLast,
	}, nil
}

// TotalSupplyOfLiquidityTokens reads the LP token's total supply.
func (e *Exchange) TotalSupplyOfLiquidityTokens(ctx context.Context, blockNum *big.Int) (decimal.Decimal, error) {
	b, err := e.readSlot(ctx, slotLPSupply, blockNum)
	if err != nil {
		return decimal.Zero, err
	}
	return weiToQty(b), nil
}

// FeeBasisPoints reads the configured total liquidity fee rate.
func (e *Exchange) FeeBasisPoints(ctx context.Context, blockNum *big.Int) (fpm.BasisPoints, error) {
	b, err := e.readSlot(ctx, slotFeeBP, blockNum)
	if err != nil {
		return 0, err
	}
	v := new(big.Int).SetBytes(b).Uint64()
	bp := fpm.BasisPoints(v)
	if err := bp.Validate(); err != nil {
		return 0, err
	}
	return bp, nil
}

// balanceOfSelector is the first four bytes of keccak256("balanceOf(address)"),
// used to read an ERC20 balance without a generated ABI binding.
var balanceOfSelector = crypto.Keccak256([]byte("balanceOf(address)"))[:4]

// ExternalBalance calls token.balanceOf(holder) directly, bypassing any
// generated contract binding. This is the one read in this package that
// cannot be a raw storage read: the base token may be an elastic/rebasing
// ERC20 whose balance mapping slot is implementation-defined, so the ABI
// call is the only portable way to observe its current real balance.
func ExternalBalance(ctx context.Context, client *ethclient.Client, token, holder common.Address, blockNum *big.Int) (decimal.Decimal, error) {
	data := make([]byte, 0, 36)
	data = append(data, balanceOfSelector...)
	data = append(data, common.LeftPadBytes(holder.Bytes(), 32)...)

	result, err := client.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, blockNum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balanceOf(%s) on token %s: %w", holder.Hex(), token.Hex(), err)
	}
	return weiToQty(result), nil
}

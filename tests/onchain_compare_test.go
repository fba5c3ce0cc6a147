package tests

import (
	"bytes"
	"context"
	"math/big"
	"os"
	"testing"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/elasticmath"
	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// mathLibABI is the minimal ABI fragment for MathLib's
// calculateQtyToReturnAfterFees view function, the on-chain counterpart of
// elasticmath.QtyOutAfterFees.
const mathLibABI = `[{
	"name": "calculateQtyToReturnAfterFees",
	"type": "function",
	"stateMutability": "view",
	"inputs": [
		{"name": "tokenSwapQty", "type": "uint256"},
		{"name": "tokenAReserveQty", "type": "uint256"},
		{"name": "tokenBReserveQty", "type": "uint256"},
		{"name": "feeInBasisPoints", "type": "uint256"}
	],
	"outputs": [{"name": "", "type": "uint256"}]
}]`

// TestQtyOutAfterFees_Onchain compares elasticmath.QtyOutAfterFees against a
// live MathLib contract's calculateQtyToReturnAfterFees via eth_call. Skips
// unless both RPC_ENDPOINT and MATH_LIB_ADDRESS are set, since this test
// needs a real deployed contract to compare against.
func TestQtyOutAfterFees_Onchain(t *testing.T) {
	rpcURL := os.Getenv("RPC_ENDPOINT")
	mathLibAddr := os.Getenv("MATH_LIB_ADDRESS")
	if rpcURL == "" || mathLibAddr == "" {
		t.Skip("RPC_ENDPOINT and MATH_LIB_ADDRESS not both set; skipping on-chain comparison test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		t.Fatalf("dial eth rpc: %v", err)
	}

	contractABI, err := gethabi.JSON(bytes.NewReader([]byte(mathLibABI)))
	if err != nil {
		t.Fatalf("parse abi: %v", err)
	}

	mathLib := common.HexToAddress(mathLibAddr)

	cases := []struct {
		name       string
		amountIn   *big.Int
		reserveIn  *big.Int
		reserveOut *big.Int
		feeBP      *big.Int
	}{
		{"small_balanced", big.NewInt(1_000), big.NewInt(1_000_000), big.NewInt(1_000_000), big.NewInt(30)},
		{"skewed_reserves", big.NewInt(50_000_000_000_000), new(big.Int).SetUint64(5_000_000_000_000_000), new(big.Int).SetUint64(100_000_000_000_000_000), big.NewInt(30)},
		{"large_values", new(big.Int).SetUint64(1_000_000_000_000_000), new(big.Int).SetUint64(50_000_000_000_000_000), new(big.Int).SetUint64(75_000_000_000_000_000), big.NewInt(30)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			local, err := elasticmath.QtyOutAfterFees(
				decimal.NewFromBigInt(tc.amountIn, 0),
				decimal.NewFromBigInt(tc.reserveIn, 0),
				decimal.NewFromBigInt(tc.reserveOut, 0),
				fpm.BasisPoints(tc.feeBP.Uint64()),
			)
			if err != nil {
				t.Fatalf("local QtyOutAfterFees: %v", err)
			}

			input, err := contractABI.Pack("calculateQtyToReturnAfterFees", tc.amountIn, tc.reserveIn, tc.reserveOut, tc.feeBP)
			if err != nil {
				t.Fatalf("abi pack: %v", err)
			}

			call := ethereum.CallMsg{To: &mathLib, Data: input}
			out, err := client.CallContract(ctx, call, nil)
			if err != nil {
				t.Fatalf("eth_call calculateQtyToReturnAfterFees: %v", err)
			}

			values, err := contractABI.Unpack("calculateQtyToReturnAfterFees", out)
			if err != nil {
				t.Fatalf("abi unpack: %v", err)
			}
			if len(values) != 1 {
				t.Fatalf("unexpected outputs: %d", len(values))
			}
			onchain, ok := values[0].(*big.Int)
			if !ok {
				t.Fatalf("unexpected output type: %T", values[0])
			}

			if local.BigInt().Cmp(onchain) != 0 {
				t.Fatalf("mismatch: local=%s onchain=%s (in=%s rIn=%s rOut=%s)", local, onchain, tc.amountIn, tc.reserveIn, tc.reserveOut)
			}
		})
	}
}

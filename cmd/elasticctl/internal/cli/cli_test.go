package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) map[string]string {
	t.Helper()

	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs(args)

	require.NoError(t, root.Execute())

	var result map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	return result
}

func TestSwapCommand(t *testing.T) {
	result := runCommand(t, "swap",
		"--in-qty", "100",
		"--in-reserve", "1000000",
		"--out-reserve", "1000000",
		"--fee-bp", "30",
	)
	assert.Contains(t, result, "out_qty")
	assert.NotEqual(t, "0", result["out_qty"])
}

func TestSwapCommand_RequiresFlags(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"swap"})
	err := root.Execute()
	assert.Error(t, err)
}

func TestAddLiquidityCommand_FirstEntry(t *testing.T) {
	result := runCommand(t, "add-liquidity",
		"--base-desired", "10000",
		"--quote-desired", "40000",
		"--external-base", "0",
		"--external-quote", "0",
		"--lp-supply", "0",
	)
	assert.Equal(t, "20000", result["liquidity_token_qty"])
}

func TestRemoveLiquidityCommand(t *testing.T) {
	result := runCommand(t, "remove-liquidity",
		"--lp-qty", "100000",
		"--lp-supply", "1000000",
		"--external-base", "10000",
		"--external-quote", "50000",
	)
	assert.Equal(t, "1000", result["base_qty_min"])
	assert.Equal(t, "5000", result["quote_qty_min"])
}

package config

import (
	"os"
	"strconv"
)

// Config holds the environment-derived settings cmd/api needs to start.
type Config struct {
	Addr        string
	RPCEndpoint string
	LogLevel    string
	// TotalLiquidityFeeBP is the fee rate from TOTAL_LIQUIDITY_FEE_BP
	// (default 30). Nothing in cmd/api reads it: live quotes use the fee
	// rate read from the exchange contract itself.
	TotalLiquidityFeeBP uint16
}

// FromEnv builds a Config from ADDR, RPC_ENDPOINT, LOG_LEVEL, and
// TOTAL_LIQUIDITY_FEE_BP, defaulting everything but RPC_ENDPOINT.
func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	rpcURL := os.Getenv("RPC_ENDPOINT")
	if rpcURL == "" {
		return nil, ErrMissingRPCEndpoint
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	feeBP := uint16(30)
	if raw := os.Getenv("TOTAL_LIQUIDITY_FEE_BP"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return nil, ErrInvalidFeeBasisPoints
		}
		feeBP = uint16(v)
	}

	cfg := &Config{
		Addr:                addr,
		RPCEndpoint:         rpcURL,
		LogLevel:            logLevel,
		TotalLiquidityFeeBP: feeBP,
	}

	return cfg, nil
}

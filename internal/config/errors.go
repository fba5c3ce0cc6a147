package config

import "errors"

// ErrMissingRPCEndpoint indicates that the required RPC_ENDPOINT variable is
// not set in the environment.
var ErrMissingRPCEndpoint = errors.New("missing RPC_ENDPOINT environment variable")

// ErrInvalidFeeBasisPoints indicates TOTAL_LIQUIDITY_FEE_BP could not be
// parsed as an unsigned integer.
var ErrInvalidFeeBasisPoints = errors.New("invalid TOTAL_LIQUIDITY_FEE_BP environment variable")

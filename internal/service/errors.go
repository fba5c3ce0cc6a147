package service

import (
	"errors"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// ErrExchangeAddressRequired is returned when a request omits the exchange
// contract address to read state from.
var ErrExchangeAddressRequired = errors.New("exchange address is required")

// asKindedError reports whether err carries a stable fpm.Kind, for metrics
// labeling.
func asKindedError(err error) (*fpm.Error, bool) {
	e, ok := err.(*fpm.Error)
	return e, ok
}

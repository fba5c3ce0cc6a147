package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrExchangeAddressRequired is returned when the exchange query parameter
// is missing.
var ErrExchangeAddressRequired = fiber.NewError(fiber.StatusBadRequest, "exchange address is required")

// ErrInvalidExchangeAddress is returned when the exchange query parameter is
// not a valid hex address.
var ErrInvalidExchangeAddress = fiber.NewError(fiber.StatusBadRequest, "invalid exchange address")

// NewInvalidDecimal wraps a decimal parsing error into a 400 Bad Request with
// a descriptive message naming the offending field.
func NewInvalidDecimal(field string, err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+": "+err.Error())
}

// kindToStatus maps a stable fpm.Kind to an HTTP status. Caller-input
// problems (non-negative violations, declared minimums not met, decay
// preconditions) map to 400; anything else is a 500.
func kindToStatus(kind fpm.Kind) int {
	switch kind {
	case fpm.KindNaN, fpm.KindNegativeInput, fpm.KindInsufficientQty,
		fpm.KindInsufficientLiquidity, fpm.KindInsufficientBaseTokenQty,
		fpm.KindInsufficientQuoteTokenQty, fpm.KindInsufficientBaseQty,
		fpm.KindInsufficientQuoteQty, fpm.KindInsufficientBaseQtyDesired,
		fpm.KindInsufficientQuoteQtyDesired, fpm.KindInsufficientDecay,
		fpm.KindInsufficientChangeInDecay, fpm.KindNoQuoteDecay,
		fpm.KindInsufficientTokenQty:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// mapServiceError converts a quote-service error into a fiber error, using
// the stable fpm.Kind when present to pick a status code and to surface the
// kind string to API clients for programmatic handling.
func mapServiceError(err error) error {
	if fe, ok := err.(*fpm.Error); ok {
		return fiber.NewError(kindToStatus(fe.Kind), fe.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "quote computation failed")
}

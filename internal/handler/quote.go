package handler

import (
	"context"

	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"

	"github.com/ElasticSwap/elasticswap-sdk/internal/service"
	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
)

// QuoteHandler exposes pkg/elasticmath's quoting operations over HTTP,
// reading live reserves through the bound QuoteService.
type QuoteHandler struct {
	BaseHandler
	service *service.QuoteService
}

// NewQuoteHandler constructs a QuoteHandler.
func NewQuoteHandler(logger *slog.Logger, svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

func parseExchangeAddress(c fiber.Ctx) (common.Address, error) {
	addr := c.Query("exchange")
	if addr == "" {
		return common.Address{}, ErrExchangeAddressRequired
	}
	if !common.IsHexAddress(addr) {
		return common.Address{}, ErrInvalidExchangeAddress
	}
	return common.HexToAddress(addr), nil
}

func parseDecimalQuery(c fiber.Ctx, field string, required bool) (decimal.Decimal, error) {
	raw := c.Query(field)
	if raw == "" {
		if required {
			return decimal.Zero, fiber.NewError(fiber.StatusBadRequest, field+" is required")
		}
		return decimal.Zero, nil
	}
	d, err := fpm.ParseDecimal(raw)
	if err != nil {
		return decimal.Zero, NewInvalidDecimal(field, err)
	}
	return d, nil
}

// SwapRequest binds the query parameters for a swap quote.
type SwapRequest struct {
	Exchange    string `query:"exchange"`
	InQty       string `query:"in_qty"`
	BaseToQuote bool   `query:"base_to_quote"`
}

// Swap handles GET /quote/swap?exchange=0x..&in_qty=..&base_to_quote=true.
func (h *QuoteHandler) Swap() fiber.Handler {
	return func(c fiber.Ctx) error {
		exchange, err := parseExchangeAddress(c)
		if err != nil {
			return err
		}
		inQty, err := parseDecimalQuery(c, "in_qty", true)
		if err != nil {
			return err
		}
		baseToQuote := c.Query("base_to_quote", "true") != "false"

		out, err := h.service.Swap(context.Background(), exchange, inQty, baseToQuote)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(fiber.Map{"out_qty": out.String()})
	}
}

// AddLiquidity handles GET /quote/add-liquidity with base_desired,
// base_min, quote_desired, quote_min query parameters.
func (h *QuoteHandler) AddLiquidity() fiber.Handler {
	return func(c fiber.Ctx) error {
		exchange, err := parseExchangeAddress(c)
		if err != nil {
			return err
		}
		baseDesired, err := parseDecimalQuery(c, "base_desired", true)
		if err != nil {
			return err
		}
		baseMin, err := parseDecimalQuery(c, "base_min", false)
		if err != nil {
			return err
		}
		quoteDesired, err := parseDecimalQuery(c, "quote_desired", true)
		if err != nil {
			return err
		}
		quoteMin, err := parseDecimalQuery(c, "quote_min", false)
		if err != nil {
			return err
		}

		result, err := h.service.AddLiquidityQuote(context.Background(), exchange, baseDesired, baseMin, quoteDesired, quoteMin)
		if err != nil {
			return mapServiceError(err)
		}

		return c.JSON(fiber.Map{
			"base_qty":               result.BaseTokenQty.String(),
			"quote_qty":              result.QuoteTokenQty.String(),
			"liquidity_token_qty":    result.LiquidityTokenQty.String(),
			"liquidity_token_fee_qty": result.LiquidityTokenFeeQty.String(),
		})
	}
}

// RemoveLiquidity handles GET /quote/remove-liquidity with lp_qty and
// slippage_percent query parameters.
func (h *QuoteHandler) RemoveLiquidity() fiber.Handler {
	return func(c fiber.Ctx) error {
		exchange, err := parseExchangeAddress(c)
		if err != nil {
			return err
		}
		lpQty, err := parseDecimalQuery(c, "lp_qty", true)
		if err != nil {
			return err
		}
		slippage, err := parseDecimalQuery(c, "slippage_percent", false)
		if err != nil {
			return err
		}

		baseMin, quoteMin, err := h.service.RemoveLiquidityQuote(context.Background(), exchange, lpQty, slippage)
		if err != nil {
			return mapServiceError(err)
		}

		return c.JSON(fiber.Map{
			"base_qty_min":  baseMin.String(),
			"quote_qty_min": quoteMin.String(),
		})
	}
}

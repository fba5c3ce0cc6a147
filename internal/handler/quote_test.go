package handler

import (
	"testing"

	"github.com/ElasticSwap/elasticswap-sdk/pkg/fpm"
	"github.com/gofiber/fiber/v3"
)

func TestKindToStatus(t *testing.T) {
	cases := []struct {
		kind fpm.Kind
		want int
	}{
		{fpm.KindNegativeInput, fiber.StatusBadRequest},
		{fpm.KindInsufficientLiquidity, fiber.StatusBadRequest},
		{fpm.KindInsufficientDecay, fiber.StatusBadRequest},
		{fpm.Kind("SOMETHING_UNMAPPED"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := kindToStatus(tc.kind); got != tc.want {
			t.Errorf("kindToStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestMapServiceError_KindedError(t *testing.T) {
	err := mapServiceError(fpm.New(fpm.KindInsufficientLiquidity, "empty pool"))
	fe, ok := err.(*fiber.Error)
	if !ok {
		t.Fatalf("expected *fiber.Error, got %T", err)
	}
	if fe.Code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", fe.Code)
	}
}

func TestMapServiceError_PlainError(t *testing.T) {
	err := mapServiceError(errPlain("boom"))
	fe, ok := err.(*fiber.Error)
	if !ok {
		t.Fatalf("expected *fiber.Error, got %T", err)
	}
	if fe.Code != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", fe.Code)
	}
}

type errPlain string

func (e errPlain) Error() string { return string(e) }

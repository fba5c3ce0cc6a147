package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ElasticSwap/elasticswap-sdk/internal/config"
	"github.com/ElasticSwap/elasticswap-sdk/internal/eth"
	"github.com/ElasticSwap/elasticswap-sdk/internal/handler"
	"github.com/ElasticSwap/elasticswap-sdk/internal/logging"
	"github.com/ElasticSwap/elasticswap-sdk/internal/metrics"
	"github.com/ElasticSwap/elasticswap-sdk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	app := fiber.New()
	logger := logging.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ethereumClient, err := eth.Dial(ctx, cfg.RPCEndpoint)
	if err != nil {
		return fmt.Errorf("failed to connect to Ethereum node: %w", err)
	}

	quoteMetrics := metrics.NewQuoteMetrics(prometheus.DefaultRegisterer)
	quoteService := service.NewQuoteService(logger, ethereumClient, quoteMetrics)
	quoteHandler := handler.NewQuoteHandler(logger, quoteService)

	app.Get("/quote/swap", quoteHandler.Swap())
	app.Get("/quote/add-liquidity", quoteHandler.AddLiquidity())
	app.Get("/quote/remove-liquidity", quoteHandler.RemoveLiquidity())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			ethereumClient.Close()
			return fmt.Errorf("server error: %w", err)
		}
		ethereumClient.Close()
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_ = app.Shutdown()

	ethereumClient.Close()

	<-shutdownCtx.Done()
	return nil
}

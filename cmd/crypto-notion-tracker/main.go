package main

import (
	"context"

	"github.com/kevinosminski/crypto-notion-tracker/internal/config"
	"github.com/kevinosminski/crypto-notion-tracker/internal/handlers/cli"
	"github.com/kevinosminski/crypto-notion-tracker/internal/infra/explorer/etherscan"
	"github.com/kevinosminski/crypto-notion-tracker/internal/infra/price/coingecko"
	"github.com/kevinosminski/crypto-notion-tracker/internal/infra/sink/notion"
	redisstorage "github.com/kevinosminski/crypto-notion-tracker/internal/infra/storage/redis"
	"github.com/kevinosminski/crypto-notion-tracker/internal/pkg/logger"
	"github.com/kevinosminski/crypto-notion-tracker/internal/pkg/telemetry"
	transporthttp "github.com/kevinosminski/crypto-notion-tracker/internal/pkg/transport/http"
	"github.com/kevinosminski/crypto-notion-tracker/internal/txsync"

	"github.com/joho/godotenv"
)

const serviceName = "crypto-notion-tracker"

func main() {
	ctx := context.Background()

	// Local development convenience; in scheduled runs the environment is
	// injected directly and no .env file exists.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		_ = logger.Init()
		logger.Fatal(ctx, "invalid configuration", "error", err)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		_ = logger.Init()
		logger.Fatal(ctx, "invalid log level", "log.level", cfg.LogLevel, "error", err)
	}
	defer logger.Sync()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			logger.Fatal(ctx, "error initializing telemetry", "error", err)
		}
		defer shutdown(ctx)
	}

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.HTTPTimeout),
		transporthttp.WithRetryMax(cfg.HTTPRetryMax),
	)

	networks := []txsync.NetworkSource{
		{Network: txsync.Ethereum, Source: etherscan.NewClient(httpClient, etherscan.EthereumBaseURL, cfg.EtherscanAPIKey)},
		{Network: txsync.Polygon, Source: etherscan.NewClient(httpClient, etherscan.PolygonBaseURL, cfg.PolygonscanAPIKey)},
	}

	tokenIDs := make([]string, len(networks))
	for i, ns := range networks {
		tokenIDs[i] = ns.Network.PriceID
	}

	priceSource := coingecko.NewClient(httpClient, coingecko.DefaultBaseURL, tokenIDs)
	sink := notion.NewClient(httpClient, notion.DefaultBaseURL, cfg.NotionToken, cfg.NotionDatabaseID)

	var opts []txsync.Option
	if cfg.RedisAddr != "" {
		guard, err := redisstorage.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal(ctx, "error connecting to redis", "error", err)
		}
		defer guard.Close()

		opts = append(opts, txsync.WithIdempotencyGuard(guard))
	}

	svc := txsync.New(cfg.WalletAddress, networks, priceSource, sink, opts...)

	if err := cli.Run(ctx, svc); err != nil {
		logger.Fatal(ctx, "sync run failed", "error", err)
	}
}

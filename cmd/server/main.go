package main

import (
	"context"
	"log"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"dexgateway/internal/chain"
	"dexgateway/internal/config"
	"dexgateway/internal/infra/dex"
	"dexgateway/internal/infra/executor"
	"dexgateway/internal/service"
	transport "dexgateway/internal/transport/http"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg := config.Load(path)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap.NewProduction: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	chainClient, err := chain.NewClient(context.Background(), cfg.RPCURL)
	if err != nil {
		logger.Fatal("chain.NewClient", zap.Error(err))
	}
	defer chainClient.Close()

	dexClient, err := dex.NewClient(chainClient,
		common.HexToAddress(cfg.Chain.FactoryAddress),
		common.HexToAddress(cfg.Chain.QuoterAddress))
	if err != nil {
		logger.Fatal("dex.NewClient", zap.Error(err))
	}

	exec, err := executor.New(chainClient)
	if err != nil {
		logger.Fatal("executor.New", zap.Error(err))
	}

	svc := service.NewGateway(dexClient, exec, cfg.Chain, logger)

	srv, err := transport.NewServer(svc, &cfg, logger)
	if err != nil {
		logger.Fatal("transport.NewServer", zap.Error(err))
	}

	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Fatal("srv.ListenAndServe", zap.Error(err))
	}
}

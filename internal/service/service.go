package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"dexgateway/internal/config"
	"dexgateway/internal/infra/dex"
	"dexgateway/internal/infra/executor"
	"dexgateway/internal/service/dto"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock

// Service represents interface for business logic.
type Service interface {
	// TokenInfo returns a fresh metadata snapshot of the configured token.
	TokenInfo(ctx context.Context) (dto.TokenInfo, error)
	// Pools returns the pools of the configured pair across all fee
	// tiers. An empty slice means no pools exist.
	Pools(ctx context.Context) ([]dto.Pool, error)
	// Quote returns the best expected output across the fee tiers.
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResult, error)
	// Approve submits an approval for the router and returns the tx hash.
	Approve(ctx context.Context, req dto.ApproveRequest) (dto.ApproveResult, error)
	// Swap submits a swap and returns the tx hash.
	Swap(ctx context.Context, req dto.SwapRequest) (dto.SwapResult, error)
}

// Gateway implements Service for a single configured token pair.
type Gateway struct {
	dex  dex.Client
	exec executor.Executor
	log  *zap.Logger

	token      common.Address
	quoteToken common.Address
	router     common.Address
	feeTiers   []uint32
	defaultFee uint32
}

// NewGateway creates a Gateway bound to the configured pair and venue.
func NewGateway(dexClient dex.Client, exec executor.Executor, cfg config.ChainConfig, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}

	return &Gateway{
		dex:        dexClient,
		exec:       exec,
		log:        log,
		token:      common.HexToAddress(cfg.TokenAddress),
		quoteToken: common.HexToAddress(cfg.QuoteTokenAddress),
		router:     common.HexToAddress(cfg.RouterAddress),
		feeTiers:   cfg.FeeTiers,
		defaultFee: cfg.DefaultFeeTier,
	}
}

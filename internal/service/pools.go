package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dexgateway/internal/apperrors"
	"dexgateway/internal/service/dto"
)

// Pools scans the factory for pools of the configured pair at every
// fee tier. Tiers without a pool are skipped; an empty result is not
// an error.
func (g *Gateway) Pools(ctx context.Context) ([]dto.Pool, error) {
	pools := make([]dto.Pool, 0, len(g.feeTiers))

	for _, fee := range g.feeTiers {
		addr, err := g.dex.FindPool(ctx, g.token, g.quoteToken, fee)
		if err != nil {
			return nil, errors.Wrapf(apperrors.ErrChainRead, "find pool fee=%d: %v", fee, err)
		}
		if addr == (common.Address{}) {
			continue
		}

		pool := dto.Pool{Address: addr, Fee: fee}

		// State is best-effort: a pool whose state cannot be read is
		// still reported, just without liquidity and price.
		state, err := g.dex.PoolState(ctx, addr)
		if err != nil {
			g.log.Warn("pool state read failed",
				zap.String("pool", addr.Hex()),
				zap.Uint32("fee", fee),
				zap.Error(err))
		} else {
			pool.Liquidity = state.Liquidity
			pool.SqrtPriceX96 = state.SqrtPriceX96
		}

		pools = append(pools, pool)
	}

	return pools, nil
}

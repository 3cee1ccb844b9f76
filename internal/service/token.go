package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dexgateway/internal/apperrors"
	"dexgateway/internal/service/dto"
)

// TokenInfo returns a fresh metadata snapshot of the configured token.
func (g *Gateway) TokenInfo(ctx context.Context) (dto.TokenInfo, error) {
	meta, err := g.dex.TokenMetadata(ctx, g.token)
	if err != nil {
		g.log.Warn("token metadata read failed", zap.Error(err))
		return dto.TokenInfo{}, errors.Wrapf(apperrors.ErrChainRead, "token metadata: %v", err)
	}

	return dto.TokenInfo{
		Address:     meta.Address,
		Name:        meta.Name,
		Symbol:      meta.Symbol,
		Decimals:    meta.Decimals,
		TotalSupply: meta.TotalSupply,
	}, nil
}

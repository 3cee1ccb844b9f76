package service

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dexgateway/internal/apperrors"
	"dexgateway/internal/infra/dex"
	"dexgateway/internal/service/dto"
	"dexgateway/internal/service/validate"
)

// Quote returns the best expected output across the configured fee
// tiers, trying the requested tier first.
func (g *Gateway) Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResult, error) {
	if err := validate.QuoteRequest(req); err != nil {
		return dto.QuoteResult{}, err
	}

	return g.bestQuote(ctx, req.AmountIn, req.Fee)
}

// bestQuote probes the fee tiers and keeps the highest output. A tier
// whose quoter call reverts (no pool, no liquidity) is skipped.
func (g *Gateway) bestQuote(ctx context.Context, amountIn *big.Int, preferredFee uint32) (dto.QuoteResult, error) {
	var (
		best    dex.QuoteResult
		bestFee uint32
		found   bool
	)

	for _, fee := range g.tierOrder(preferredFee) {
		res, err := g.dex.QuoteExactInputSingle(ctx, dex.QuoteParams{
			TokenIn:  g.token,
			TokenOut: g.quoteToken,
			AmountIn: amountIn,
			Fee:      fee,
		})
		if err != nil {
			g.log.Debug("fee tier quote failed", zap.Uint32("fee", fee), zap.Error(err))
			continue
		}
		// A zero output is never reported as a quote.
		if res.AmountOut == nil || res.AmountOut.Sign() <= 0 {
			continue
		}

		if !found || res.AmountOut.Cmp(best.AmountOut) > 0 {
			best = res
			bestFee = fee
			found = true
		}
	}

	if !found {
		return dto.QuoteResult{}, errors.Wrap(apperrors.ErrInsufficientLiquidity, "no fee tier produced a quote")
	}

	return dto.QuoteResult{
		AmountIn:    amountIn,
		AmountOut:   best.AmountOut,
		Fee:         bestFee,
		GasEstimate: best.GasEstimate,
	}, nil
}

// tierOrder returns the fee tiers with the preferred tier first.
func (g *Gateway) tierOrder(preferred uint32) []uint32 {
	if preferred == 0 {
		preferred = g.defaultFee
	}

	order := make([]uint32, 0, len(g.feeTiers)+1)
	order = append(order, preferred)
	for _, fee := range g.feeTiers {
		if fee != preferred {
			order = append(order, fee)
		}
	}
	return order
}

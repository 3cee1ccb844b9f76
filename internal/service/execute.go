package service

import (
	"context"
	"math/big"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dexgateway/internal/apperrors"
	"dexgateway/internal/infra/executor"
	"dexgateway/internal/service/dto"
	"dexgateway/internal/service/validate"
)

// swapDeadline bounds how long a submitted swap stays executable.
const swapDeadline = 5 * time.Minute

// Approve submits an approval for the router to spend the configured
// token on behalf of the caller.
func (g *Gateway) Approve(ctx context.Context, req dto.ApproveRequest) (dto.ApproveResult, error) {
	if err := validate.ApproveRequest(req); err != nil {
		return dto.ApproveResult{}, err
	}

	hash, err := g.exec.Approve(ctx, executor.ApproveParams{
		Token:   g.token,
		Spender: g.router,
		Amount:  req.Amount,
		Key:     req.Key,
	})
	if err != nil {
		return dto.ApproveResult{}, err
	}

	g.log.Info("approval submitted",
		zap.String("tx", hash.Hex()),
		zap.String("account", req.Account.Hex()),
		zap.String("amount", req.Amount.String()))

	return dto.ApproveResult{
		Hash:    hash,
		Amount:  req.Amount,
		Spender: g.router,
	}, nil
}

// Swap quotes the pair, enforces balance and slippage limits, then
// submits an exactInputSingle swap. Nothing is submitted when the
// fresh quote already violates the caller's minimum.
func (g *Gateway) Swap(ctx context.Context, req dto.SwapRequest) (dto.SwapResult, error) {
	if err := validate.SwapRequest(req); err != nil {
		return dto.SwapResult{}, err
	}

	balance, err := g.dex.BalanceOf(ctx, g.token, req.Account)
	if err != nil {
		return dto.SwapResult{}, errors.Wrapf(apperrors.ErrChainRead, "balance of %s: %v", req.Account.Hex(), err)
	}
	if balance.Cmp(req.AmountIn) < 0 {
		return dto.SwapResult{}, errors.Wrapf(apperrors.ErrInsufficientBalance,
			"balance %s is below amount_in %s", balance.String(), req.AmountIn.String())
	}

	quote, err := g.bestQuote(ctx, req.AmountIn, req.Fee)
	if err != nil {
		return dto.SwapResult{}, err
	}

	if req.AmountOutMinimum != nil && quote.AmountOut.Cmp(req.AmountOutMinimum) < 0 {
		return dto.SwapResult{}, errors.Wrapf(apperrors.ErrSlippageExceeded,
			"quoted %s is below minimum %s", quote.AmountOut.String(), req.AmountOutMinimum.String())
	}
	minOut := minOutFor(quote.AmountOut, req)

	deadline := big.NewInt(time.Now().Add(swapDeadline).Unix())

	hash, err := g.exec.Swap(ctx, executor.SwapParams{
		Router:           g.router,
		TokenIn:          g.token,
		TokenOut:         g.quoteToken,
		Fee:              quote.Fee,
		Recipient:        req.Account,
		Deadline:         deadline,
		AmountIn:         req.AmountIn,
		AmountOutMinimum: minOut,
		Key:              req.Key,
	})
	if err != nil {
		return dto.SwapResult{}, err
	}

	g.log.Info("swap submitted",
		zap.String("tx", hash.Hex()),
		zap.String("account", req.Account.Hex()),
		zap.String("amount_in", req.AmountIn.String()),
		zap.String("amount_out_minimum", minOut.String()),
		zap.Uint32("fee", quote.Fee))

	return dto.SwapResult{
		Hash:             hash,
		AmountIn:         req.AmountIn,
		AmountOutMinimum: minOut,
		Fee:              quote.Fee,
	}, nil
}

// minOutFor derives the output floor: an explicit minimum wins,
// otherwise slippage bps are taken off the fresh quote.
func minOutFor(quoted *big.Int, req dto.SwapRequest) *big.Int {
	if req.AmountOutMinimum != nil {
		return req.AmountOutMinimum
	}

	keep := big.NewInt(int64(10_000 - req.SlippageBps))
	minOut := new(big.Int).Mul(quoted, keep)
	return minOut.Quo(minOut, big.NewInt(10_000))
}

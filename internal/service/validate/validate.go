// Package validate checks business layer requests before any chain
// interaction happens.
package validate

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"dexgateway/internal/apperrors"
	"dexgateway/internal/service/dto"
)

// maxSlippageBps caps the slippage tolerance at 100%.
const maxSlippageBps = 10_000

// QuoteRequest validates a quote request.
func QuoteRequest(req dto.QuoteRequest) error {
	if req.AmountIn == nil || req.AmountIn.Sign() <= 0 {
		return errors.Wrap(apperrors.ErrInvalidArgument, "amount_in must be positive")
	}
	return nil
}

// ApproveRequest validates an approval request.
func ApproveRequest(req dto.ApproveRequest) error {
	if req.Account == (common.Address{}) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "account address cannot be empty")
	}
	if req.Amount == nil || req.Amount.Sign() <= 0 {
		return errors.Wrap(apperrors.ErrInvalidArgument, "amount must be positive")
	}
	if err := signerMatches(req.Key, req.Account); err != nil {
		return err
	}
	return nil
}

// SwapRequest validates a swap request.
func SwapRequest(req dto.SwapRequest) error {
	if req.Account == (common.Address{}) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "account address cannot be empty")
	}
	if req.AmountIn == nil || req.AmountIn.Sign() <= 0 {
		return errors.Wrap(apperrors.ErrInvalidArgument, "amount_in must be positive")
	}
	if req.AmountOutMinimum != nil && req.AmountOutMinimum.Sign() < 0 {
		return errors.Wrap(apperrors.ErrInvalidArgument, "amount_out_minimum cannot be negative")
	}
	if req.SlippageBps > maxSlippageBps {
		return errors.Wrap(apperrors.ErrInvalidArgument, "slippage_bps cannot exceed 10000")
	}
	if err := signerMatches(req.Key, req.Account); err != nil {
		return err
	}
	return nil
}

// signerMatches rejects requests where the declared account is not the
// address derived from the signing key.
func signerMatches(key *ecdsa.PrivateKey, account common.Address) error {
	if key == nil {
		return errors.Wrap(apperrors.ErrInvalidArgument, "private key is required")
	}
	if crypto.PubkeyToAddress(key.PublicKey) != account {
		return errors.Wrap(apperrors.ErrInvalidArgument, "account address does not match signing key")
	}
	return nil
}

package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientLiquidity is returned when no pool can quote the
	// requested swap at any fee tier.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrInsufficientBalance is returned when the account token balance
	// does not cover the requested input amount.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrSlippageExceeded is returned when the current quote falls below
	// the caller's minimum output. The transaction is never submitted.
	ErrSlippageExceeded = errors.New("slippage exceeded")

	// ErrChainRead is returned when reading chain state (contract calls,
	// nonce, gas price) fails, typically due to an RPC error.
	ErrChainRead = errors.New("chain read failed")

	// ErrTxRejected is returned when the node rejects a submitted
	// transaction.
	ErrTxRejected = errors.New("transaction rejected")
)

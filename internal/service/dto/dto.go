// Package dto holds the request and response shapes of the gateway
// business layer. All values live for a single request.
package dto

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TokenInfo is a metadata snapshot of the configured token.
type TokenInfo struct {
	Address     common.Address
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *big.Int
}

// Pool describes one discovered liquidity pool.
type Pool struct {
	Address      common.Address
	Fee          uint32
	Liquidity    *big.Int
	SqrtPriceX96 *big.Int
}

// QuoteRequest asks for the expected output of swapping AmountIn of the
// configured token into the quote token. Fee, when non-zero, names the
// preferred fee tier to try first.
type QuoteRequest struct {
	AmountIn *big.Int
	Fee      uint32
}

// QuoteResult is the best quote found across the probed fee tiers.
type QuoteResult struct {
	AmountIn    *big.Int
	AmountOut   *big.Int
	Fee         uint32
	GasEstimate *big.Int
}

// ApproveRequest asks to approve the router to spend Amount of the
// configured token. The key is consumed for one signature.
type ApproveRequest struct {
	Account common.Address
	Amount  *big.Int
	Key     *ecdsa.PrivateKey
}

// ApproveResult reports a submitted approval.
type ApproveResult struct {
	Hash    common.Hash
	Amount  *big.Int
	Spender common.Address
}

// SwapRequest asks to swap AmountIn of the configured token into the
// quote token. AmountOutMinimum, when set, is an explicit output floor;
// otherwise the floor is derived from SlippageBps against a fresh quote.
type SwapRequest struct {
	Account          common.Address
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
	SlippageBps      uint32
	Fee              uint32
	Key              *ecdsa.PrivateKey
}

// SwapResult reports a submitted swap.
type SwapResult struct {
	Hash             common.Hash
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
	Fee              uint32
}

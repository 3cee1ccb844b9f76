package executor

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"dexgateway/internal/apperrors"
)

//go:generate mockgen -source=executor.go -destination=mock/executor_mock.go -package=mock

// Fixed gas limits for the two transaction shapes the gateway submits.
const (
	approveGasLimit = 200_000
	swapGasLimit    = 1_000_000
)

const erc20WriteABIJSON = `[
	{"inputs":[
		{"internalType":"address","name":"spender","type":"address"},
		{"internalType":"uint256","name":"amount","type":"uint256"}
	],"name":"approve","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"}
]`

const routerABIJSON = `[
	{
		"inputs": [
			{
				"components": [
					{"internalType": "address", "name": "tokenIn", "type": "address"},
					{"internalType": "address", "name": "tokenOut", "type": "address"},
					{"internalType": "uint24", "name": "fee", "type": "uint24"},
					{"internalType": "address", "name": "recipient", "type": "address"},
					{"internalType": "uint256", "name": "deadline", "type": "uint256"},
					{"internalType": "uint256", "name": "amountIn", "type": "uint256"},
					{"internalType": "uint256", "name": "amountOutMinimum", "type": "uint256"},
					{"internalType": "uint160", "name": "sqrtPriceLimitX96", "type": "uint160"}
				],
				"internalType": "struct ISwapRouter.ExactInputSingleParams",
				"name": "params",
				"type": "tuple"
			}
		],
		"name": "exactInputSingle",
		"outputs": [{"internalType": "uint256", "name": "amountOut", "type": "uint256"}],
		"stateMutability": "payable",
		"type": "function"
	}
]`

// TxBackend represents the node operations needed to build and submit
// a transaction.
type TxBackend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// ApproveParams describes an ERC-20 approval submission. The key is
// used for a single signature and never retained.
type ApproveParams struct {
	Token   common.Address
	Spender common.Address
	Amount  *big.Int
	Key     *ecdsa.PrivateKey
}

// SwapParams describes an exactInputSingle swap submission.
type SwapParams struct {
	Router           common.Address
	TokenIn          common.Address
	TokenOut         common.Address
	Fee              uint32
	Recipient        common.Address
	Deadline         *big.Int
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
	Key              *ecdsa.PrivateKey
}

// Executor builds, signs and submits approval and swap transactions.
// Success or failure past submission is decided entirely by the chain.
type Executor interface {
	Approve(ctx context.Context, params ApproveParams) (common.Hash, error)
	Swap(ctx context.Context, params SwapParams) (common.Hash, error)
}

type executorImpl struct {
	backend   TxBackend
	erc20ABI  abi.ABI
	routerABI abi.ABI
}

// New creates an Executor on top of a transaction backend.
func New(backend TxBackend) (Executor, error) {
	erc20ABI, err := abi.JSON(strings.NewReader(erc20WriteABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON erc20")
	}
	routerABI, err := abi.JSON(strings.NewReader(routerABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON router")
	}

	return &executorImpl{
		backend:   backend,
		erc20ABI:  erc20ABI,
		routerABI: routerABI,
	}, nil
}

// Approve submits token.approve(spender, amount) and returns the tx hash.
func (e *executorImpl) Approve(ctx context.Context, params ApproveParams) (common.Hash, error) {
	data, err := e.erc20ABI.Pack("approve", params.Spender, params.Amount)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "pack approve")
	}

	return e.submit(ctx, params.Token, data, approveGasLimit, params.Key)
}

// exactInputSingleParams mirrors the SwapRouter tuple layout.
type exactInputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	Fee               *big.Int
	Recipient         common.Address
	Deadline          *big.Int
	AmountIn          *big.Int
	AmountOutMinimum  *big.Int
	SqrtPriceLimitX96 *big.Int
}

// Swap submits router.exactInputSingle and returns the tx hash.
func (e *executorImpl) Swap(ctx context.Context, params SwapParams) (common.Hash, error) {
	data, err := e.routerABI.Pack("exactInputSingle", exactInputSingleParams{
		TokenIn:           params.TokenIn,
		TokenOut:          params.TokenOut,
		Fee:               big.NewInt(int64(params.Fee)),
		Recipient:         params.Recipient,
		Deadline:          params.Deadline,
		AmountIn:          params.AmountIn,
		AmountOutMinimum:  params.AmountOutMinimum,
		SqrtPriceLimitX96: big.NewInt(0),
	})
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "pack exactInputSingle")
	}

	return e.submit(ctx, params.Router, data, swapGasLimit, params.Key)
}

// submit builds a legacy transaction, signs it with the supplied key
// and sends it to the node.
func (e *executorImpl) submit(ctx context.Context, to common.Address, data []byte, gasLimit uint64, key *ecdsa.PrivateKey) (common.Hash, error) {
	if key == nil {
		return common.Hash{}, errors.Wrap(apperrors.ErrInvalidArgument, "signing key is nil")
	}
	from := crypto.PubkeyToAddress(key.PublicKey)

	nonce, err := e.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, errors.Wrapf(apperrors.ErrChainRead, "pending nonce: %v", err)
	}
	gasPrice, err := e.backend.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, errors.Wrapf(apperrors.ErrChainRead, "suggest gas price: %v", err)
	}
	chainID, err := e.backend.ChainID(ctx)
	if err != nil {
		return common.Hash{}, errors.Wrapf(apperrors.ErrChainRead, "chain id: %v", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "types.SignTx")
	}

	if err := e.backend.SendTransaction(ctx, signedTx); err != nil {
		return common.Hash{}, errors.Wrapf(apperrors.ErrTxRejected, "send transaction: %v", err)
	}

	return signedTx.Hash(), nil
}

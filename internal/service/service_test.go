package service

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dexgateway/internal/apperrors"
	"dexgateway/internal/config"
	"dexgateway/internal/infra/dex"
	dexmock "dexgateway/internal/infra/dex/mock"
	"dexgateway/internal/infra/executor"
	execmock "dexgateway/internal/infra/executor/mock"
	"dexgateway/internal/service/dto"
)

var testChainConfig = config.ChainConfig{
	TokenAddress:      "0xad8c787992428cD158E451aAb109f724B6bc36de",
	QuoteTokenAddress: "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c",
	FactoryAddress:    "0x0BFbCF9fa4f9C56B0F40a671Ad40E0805A091865",
	QuoterAddress:     "0xB048Bbc1Ee6b733FFfCFb9e9CeF7375518e25997",
	RouterAddress:     "0x13f4EA83D0bd40E75C8222255bc855a974568Dd4",
	FeeTiers:          []uint32{100, 500, 2500, 10000},
	DefaultFeeTier:    10000,
}

func newTestGateway(t *testing.T) (*Gateway, *dexmock.MockClient, *execmock.MockExecutor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	dexClient := dexmock.NewMockClient(ctrl)
	exec := execmock.NewMockExecutor(ctrl)

	return NewGateway(dexClient, exec, testChainConfig, nil), dexClient, exec
}

func signer(t *testing.T) (common.Address, *dto.SwapRequest) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	account := crypto.PubkeyToAddress(key.PublicKey)

	return account, &dto.SwapRequest{
		Account:  account,
		AmountIn: big.NewInt(1_000_000),
		Key:      key,
	}
}

func TestGatewayTokenInfo(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		dexClient.EXPECT().
			TokenMetadata(gomock.Any(), gw.token).
			Return(dex.TokenMetadata{
				Address:     gw.token,
				Name:        "ASPECTA",
				Symbol:      "ASP",
				Decimals:    18,
				TotalSupply: big.NewInt(1_000_000),
			}, nil)

		info, err := gw.TokenInfo(context.Background())
		require.NoError(t, err)
		require.Equal(t, "ASPECTA", info.Name)
		require.Equal(t, "ASP", info.Symbol)
		require.EqualValues(t, 18, info.Decimals)
		require.Equal(t, big.NewInt(1_000_000), info.TotalSupply)
	})

	t.Run("chain read failure", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		dexClient.EXPECT().
			TokenMetadata(gomock.Any(), gomock.Any()).
			Return(dex.TokenMetadata{}, errors.New("rpc: connection refused"))

		_, err := gw.TokenInfo(context.Background())
		require.ErrorIs(t, err, apperrors.ErrChainRead)
	})
}

func TestGatewayPools(t *testing.T) {
	t.Parallel()

	poolAddr := common.HexToAddress("0x4BE9B1c9F4Ce929E1C82d4cDf648eCbE2a5F4a2C")

	t.Run("skips tiers without a pool", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		for _, fee := range testChainConfig.FeeTiers {
			addr := common.Address{}
			if fee == 10000 {
				addr = poolAddr
			}
			dexClient.EXPECT().
				FindPool(gomock.Any(), gw.token, gw.quoteToken, fee).
				Return(addr, nil)
		}
		dexClient.EXPECT().
			PoolState(gomock.Any(), poolAddr).
			Return(dex.PoolState{
				Liquidity:    big.NewInt(777),
				SqrtPriceX96: big.NewInt(12345),
			}, nil)

		pools, err := gw.Pools(context.Background())
		require.NoError(t, err)
		require.Len(t, pools, 1)
		require.Equal(t, poolAddr, pools[0].Address)
		require.EqualValues(t, 10000, pools[0].Fee)
		require.Equal(t, big.NewInt(777), pools[0].Liquidity)
	})

	t.Run("no pools at any tier", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		dexClient.EXPECT().
			FindPool(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(common.Address{}, nil).
			Times(len(testChainConfig.FeeTiers))

		pools, err := gw.Pools(context.Background())
		require.NoError(t, err)
		require.Empty(t, pools)
	})

	t.Run("pool reported without state when state read fails", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		dexClient.EXPECT().
			FindPool(gomock.Any(), gomock.Any(), gomock.Any(), uint32(100)).
			Return(poolAddr, nil)
		dexClient.EXPECT().
			FindPool(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(common.Address{}, nil).
			Times(len(testChainConfig.FeeTiers) - 1)
		dexClient.EXPECT().
			PoolState(gomock.Any(), poolAddr).
			Return(dex.PoolState{}, errors.New("execution reverted"))

		pools, err := gw.Pools(context.Background())
		require.NoError(t, err)
		require.Len(t, pools, 1)
		require.Nil(t, pools[0].Liquidity)
	})

	t.Run("factory lookup failure", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		dexClient.EXPECT().
			FindPool(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(common.Address{}, errors.New("rpc: timeout"))

		_, err := gw.Pools(context.Background())
		require.ErrorIs(t, err, apperrors.ErrChainRead)
	})
}

func TestGatewayQuote(t *testing.T) {
	t.Parallel()

	amountIn := big.NewInt(1_000_000)

	t.Run("keeps the best output across tiers", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		outputs := map[uint32]*big.Int{
			100:   nil, // reverts
			500:   big.NewInt(900),
			2500:  big.NewInt(950),
			10000: big.NewInt(940),
		}
		dexClient.EXPECT().
			QuoteExactInputSingle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params dex.QuoteParams) (dex.QuoteResult, error) {
				out := outputs[params.Fee]
				if out == nil {
					return dex.QuoteResult{}, errors.New("execution reverted")
				}
				return dex.QuoteResult{AmountOut: out, GasEstimate: big.NewInt(80_000)}, nil
			}).
			Times(len(testChainConfig.FeeTiers))

		res, err := gw.Quote(context.Background(), dto.QuoteRequest{AmountIn: amountIn})
		require.NoError(t, err)
		require.Equal(t, big.NewInt(950), res.AmountOut)
		require.EqualValues(t, 2500, res.Fee)
		require.Equal(t, amountIn, res.AmountIn)
	})

	t.Run("requested tier probed first", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		var seen []uint32
		dexClient.EXPECT().
			QuoteExactInputSingle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params dex.QuoteParams) (dex.QuoteResult, error) {
				seen = append(seen, params.Fee)
				return dex.QuoteResult{AmountOut: big.NewInt(1)}, nil
			}).
			Times(len(testChainConfig.FeeTiers))

		_, err := gw.Quote(context.Background(), dto.QuoteRequest{AmountIn: amountIn, Fee: 500})
		require.NoError(t, err)
		require.Equal(t, uint32(500), seen[0])
	})

	t.Run("zero output is not a quote", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		dexClient.EXPECT().
			QuoteExactInputSingle(gomock.Any(), gomock.Any()).
			Return(dex.QuoteResult{AmountOut: big.NewInt(0)}, nil).
			Times(len(testChainConfig.FeeTiers))

		_, err := gw.Quote(context.Background(), dto.QuoteRequest{AmountIn: amountIn})
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)
	})

	t.Run("all tiers revert", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		dexClient.EXPECT().
			QuoteExactInputSingle(gomock.Any(), gomock.Any()).
			Return(dex.QuoteResult{}, errors.New("execution reverted")).
			Times(len(testChainConfig.FeeTiers))

		_, err := gw.Quote(context.Background(), dto.QuoteRequest{AmountIn: amountIn})
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)
	})

	t.Run("invalid amount", func(t *testing.T) {
		t.Parallel()

		gw, _, _ := newTestGateway(t)
		_, err := gw.Quote(context.Background(), dto.QuoteRequest{})
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}

func TestGatewayApprove(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		gw, _, exec := newTestGateway(t)
		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		account := crypto.PubkeyToAddress(key.PublicKey)
		hash := common.HexToHash("0xabc123")

		exec.EXPECT().
			Approve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params executor.ApproveParams) (common.Hash, error) {
				require.Equal(t, gw.token, params.Token)
				require.Equal(t, gw.router, params.Spender)
				require.Equal(t, big.NewInt(5000), params.Amount)
				return hash, nil
			})

		res, err := gw.Approve(context.Background(), dto.ApproveRequest{
			Account: account,
			Amount:  big.NewInt(5000),
			Key:     key,
		})
		require.NoError(t, err)
		require.Equal(t, hash, res.Hash)
		require.Equal(t, gw.router, res.Spender)
	})

	t.Run("validation rejected before submission", func(t *testing.T) {
		t.Parallel()

		gw, _, _ := newTestGateway(t)
		_, err := gw.Approve(context.Background(), dto.ApproveRequest{Amount: big.NewInt(1)})
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("submission rejected", func(t *testing.T) {
		t.Parallel()

		gw, _, exec := newTestGateway(t)
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		exec.EXPECT().
			Approve(gomock.Any(), gomock.Any()).
			Return(common.Hash{}, errors.Wrap(apperrors.ErrTxRejected, "nonce too low"))

		_, err = gw.Approve(context.Background(), dto.ApproveRequest{
			Account: crypto.PubkeyToAddress(key.PublicKey),
			Amount:  big.NewInt(1),
			Key:     key,
		})
		require.ErrorIs(t, err, apperrors.ErrTxRejected)
	})
}

func TestGatewaySwap(t *testing.T) {
	t.Parallel()

	quoteAll := func(dexClient *dexmock.MockClient, out int64) {
		dexClient.EXPECT().
			QuoteExactInputSingle(gomock.Any(), gomock.Any()).
			Return(dex.QuoteResult{AmountOut: big.NewInt(out)}, nil).
			Times(len(testChainConfig.FeeTiers))
	}

	t.Run("derives minimum from slippage", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, exec := newTestGateway(t)
		account, req := signer(t)
		req.SlippageBps = 100 // 1%

		dexClient.EXPECT().
			BalanceOf(gomock.Any(), gw.token, account).
			Return(big.NewInt(2_000_000), nil)
		quoteAll(dexClient, 1000)

		hash := common.HexToHash("0xdeadbeef")
		exec.EXPECT().
			Swap(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params executor.SwapParams) (common.Hash, error) {
				require.Equal(t, gw.router, params.Router)
				require.Equal(t, account, params.Recipient)
				require.Equal(t, big.NewInt(990), params.AmountOutMinimum)
				require.NotNil(t, params.Deadline)
				return hash, nil
			})

		res, err := gw.Swap(context.Background(), *req)
		require.NoError(t, err)
		require.Equal(t, hash, res.Hash)
		require.Equal(t, big.NewInt(990), res.AmountOutMinimum)
	})

	t.Run("explicit minimum passed through", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, exec := newTestGateway(t)
		_, req := signer(t)
		req.AmountOutMinimum = big.NewInt(800)

		dexClient.EXPECT().
			BalanceOf(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(big.NewInt(2_000_000), nil)
		quoteAll(dexClient, 1000)

		exec.EXPECT().
			Swap(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params executor.SwapParams) (common.Hash, error) {
				require.Equal(t, big.NewInt(800), params.AmountOutMinimum)
				return common.HexToHash("0x1"), nil
			})

		_, err := gw.Swap(context.Background(), *req)
		require.NoError(t, err)
	})

	t.Run("quote below minimum is rejected before submission", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		_, req := signer(t)
		req.AmountOutMinimum = big.NewInt(2000)

		dexClient.EXPECT().
			BalanceOf(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(big.NewInt(2_000_000), nil)
		quoteAll(dexClient, 1000)

		_, err := gw.Swap(context.Background(), *req)
		require.ErrorIs(t, err, apperrors.ErrSlippageExceeded)
	})

	t.Run("insufficient balance is rejected before quoting", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		_, req := signer(t)

		dexClient.EXPECT().
			BalanceOf(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(big.NewInt(1), nil)

		_, err := gw.Swap(context.Background(), *req)
		require.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	})

	t.Run("balance read failure", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		_, req := signer(t)

		dexClient.EXPECT().
			BalanceOf(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("rpc: timeout"))

		_, err := gw.Swap(context.Background(), *req)
		require.ErrorIs(t, err, apperrors.ErrChainRead)
	})

	t.Run("no liquidity at any tier", func(t *testing.T) {
		t.Parallel()

		gw, dexClient, _ := newTestGateway(t)
		_, req := signer(t)

		dexClient.EXPECT().
			BalanceOf(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(big.NewInt(2_000_000), nil)
		dexClient.EXPECT().
			QuoteExactInputSingle(gomock.Any(), gomock.Any()).
			Return(dex.QuoteResult{}, errors.New("execution reverted")).
			Times(len(testChainConfig.FeeTiers))

		_, err := gw.Swap(context.Background(), *req)
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)
	})

	t.Run("validation rejected before any chain call", func(t *testing.T) {
		t.Parallel()

		gw, _, _ := newTestGateway(t)
		_, err := gw.Swap(context.Background(), dto.SwapRequest{})
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}

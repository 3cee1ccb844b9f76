package dex

import (
	"context"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=mock

// TokenMetadata is an ERC-20 metadata snapshot fetched fresh per request.
type TokenMetadata struct {
	Address     common.Address
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *big.Int
}

// PoolState is a point-in-time view of a V3 pool.
type PoolState struct {
	Liquidity    *big.Int
	SqrtPriceX96 *big.Int
	Tick         *big.Int
}

// QuoteParams are the inputs of a single-hop exact-input quote.
type QuoteParams struct {
	TokenIn  common.Address
	TokenOut common.Address
	AmountIn *big.Int
	Fee      uint32
}

// QuoteResult is the QuoterV2 response for a single fee tier.
type QuoteResult struct {
	AmountOut               *big.Int
	SqrtPriceX96After       *big.Int
	InitializedTicksCrossed uint32
	GasEstimate             *big.Int
}

// Client defines an abstraction for reading token, factory, pool and
// quoter contract state from the chain.
type Client interface {
	// TokenMetadata returns name, symbol, decimals and total supply of an ERC-20 token.
	TokenMetadata(ctx context.Context, token common.Address) (TokenMetadata, error)
	// BalanceOf returns the ERC-20 balance of owner.
	BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error)
	// FindPool returns the pool address for a pair and fee tier, or the
	// zero address when the factory has no such pool.
	FindPool(ctx context.Context, tokenA, tokenB common.Address, fee uint32) (common.Address, error)
	// PoolState returns the current liquidity and slot0 price of a pool.
	PoolState(ctx context.Context, pool common.Address) (PoolState, error)
	// QuoteExactInputSingle asks the QuoterV2 contract for the expected
	// output of a single-hop swap.
	QuoteExactInputSingle(ctx context.Context, params QuoteParams) (QuoteResult, error)
}

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type readerImpl struct {
	caller EthCaller

	erc20ABI   abi.ABI
	factoryABI abi.ABI
	poolABI    abi.ABI
	quoterABI  abi.ABI

	factory common.Address
	quoter  common.Address
}

// NewClient creates a Client on top of an existing contract caller.
func NewClient(caller EthCaller, factory, quoter common.Address) (Client, error) {
	erc20ABI, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON erc20")
	}
	factoryABI, err := abi.JSON(strings.NewReader(factoryABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON factory")
	}
	poolABI, err := abi.JSON(strings.NewReader(poolABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON pool")
	}
	quoterABI, err := abi.JSON(strings.NewReader(quoterABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON quoter")
	}

	return &readerImpl{
		caller:     caller,
		erc20ABI:   erc20ABI,
		factoryABI: factoryABI,
		poolABI:    poolABI,
		quoterABI:  quoterABI,
		factory:    factory,
		quoter:     quoter,
	}, nil
}

func (c *readerImpl) call(ctx context.Context, contractABI abi.ABI, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s", method)
	}

	res, err := c.caller.CallContract(
		ctx,
		ethereum.CallMsg{
			To:   &to,
			Data: data,
		},
		nil,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "call %s", method)
	}

	out, err := contractABI.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrapf(err, "unpack %s", method)
	}

	return out, nil
}

// TokenMetadata fetches the four ERC-20 metadata fields concurrently.
func (c *readerImpl) TokenMetadata(ctx context.Context, token common.Address) (TokenMetadata, error) {
	const (
		numFields         = 4
		nameMethod        = "name"
		symbolMethod      = "symbol"
		decimalsMethod    = "decimals"
		totalSupplyMethod = "totalSupply"
	)

	type fieldResult struct {
		method string
		value  interface{}
		err    error
	}

	var wg sync.WaitGroup
	ch := make(chan fieldResult, numFields)

	getField := func(method string) {
		defer wg.Done()

		out, err := c.call(ctx, c.erc20ABI, token, method)
		if err != nil {
			ch <- fieldResult{method: method, err: err}
			return
		}

		ch <- fieldResult{method: method, value: out[0]}
	}

	wg.Add(numFields)
	go getField(nameMethod)
	go getField(symbolMethod)
	go getField(decimalsMethod)
	go getField(totalSupplyMethod)

	go func() {
		wg.Wait()
		close(ch)
	}()

	meta := TokenMetadata{Address: token}
	var combinedErr error

	for result := range ch {
		if result.err != nil {
			combinedErr = multierr.Append(combinedErr, result.err)
			continue
		}

		switch result.method {
		case nameMethod:
			v, ok := result.value.(string)
			if !ok {
				combinedErr = multierr.Append(combinedErr, errors.New("failed to cast name result to string"))
				continue
			}
			meta.Name = v
		case symbolMethod:
			v, ok := result.value.(string)
			if !ok {
				combinedErr = multierr.Append(combinedErr, errors.New("failed to cast symbol result to string"))
				continue
			}
			meta.Symbol = v
		case decimalsMethod:
			v, ok := result.value.(uint8)
			if !ok {
				combinedErr = multierr.Append(combinedErr, errors.New("failed to cast decimals result to uint8"))
				continue
			}
			meta.Decimals = v
		case totalSupplyMethod:
			v, ok := result.value.(*big.Int)
			if !ok {
				combinedErr = multierr.Append(combinedErr, errors.New("failed to cast totalSupply result to *big.Int"))
				continue
			}
			meta.TotalSupply = v
		}
	}

	if combinedErr != nil {
		return TokenMetadata{}, errors.Wrap(combinedErr, "failed to get token metadata")
	}

	return meta, nil
}

// BalanceOf returns the ERC-20 balance of owner.
func (c *readerImpl) BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	out, err := c.call(ctx, c.erc20ABI, token, "balanceOf", owner)
	if err != nil {
		return nil, errors.Wrap(err, "c.call")
	}

	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.New("failed to cast balanceOf result to *big.Int")
	}

	return balance, nil
}

// FindPool queries the factory for a pair at one fee tier.
func (c *readerImpl) FindPool(ctx context.Context, tokenA, tokenB common.Address, fee uint32) (common.Address, error) {
	out, err := c.call(ctx, c.factoryABI, c.factory, "getPool", tokenA, tokenB, big.NewInt(int64(fee)))
	if err != nil {
		return common.Address{}, errors.Wrap(err, "c.call")
	}

	pool, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, errors.New("failed to cast getPool result to address")
	}

	return pool, nil
}

// PoolState reads liquidity and slot0 of a pool.
func (c *readerImpl) PoolState(ctx context.Context, pool common.Address) (PoolState, error) {
	out, err := c.call(ctx, c.poolABI, pool, "liquidity")
	if err != nil {
		return PoolState{}, errors.Wrap(err, "c.call liquidity")
	}
	liquidity, ok := out[0].(*big.Int)
	if !ok {
		return PoolState{}, errors.New("failed to cast liquidity result to *big.Int")
	}

	out, err = c.call(ctx, c.poolABI, pool, "slot0")
	if err != nil {
		return PoolState{}, errors.Wrap(err, "c.call slot0")
	}
	const slot0Size = 2
	if len(out) < slot0Size {
		return PoolState{}, errors.Errorf("insufficient outputs from slot0 call: expected %d, got %d", slot0Size, len(out))
	}
	sqrtPrice, ok := out[0].(*big.Int)
	if !ok {
		return PoolState{}, errors.New("failed to cast sqrtPriceX96 result to *big.Int")
	}
	tick, ok := out[1].(*big.Int)
	if !ok {
		return PoolState{}, errors.New("failed to cast tick result to *big.Int")
	}

	return PoolState{
		Liquidity:    liquidity,
		SqrtPriceX96: sqrtPrice,
		Tick:         tick,
	}, nil
}

// quoteExactInputSingleParams mirrors the QuoterV2 tuple layout.
type quoteExactInputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	AmountIn          *big.Int
	Fee               *big.Int
	SqrtPriceLimitX96 *big.Int
}

// QuoteExactInputSingle asks the QuoterV2 contract for the expected output.
func (c *readerImpl) QuoteExactInputSingle(ctx context.Context, params QuoteParams) (QuoteResult, error) {
	out, err := c.call(ctx, c.quoterABI, c.quoter, "quoteExactInputSingle", quoteExactInputSingleParams{
		TokenIn:           params.TokenIn,
		TokenOut:          params.TokenOut,
		AmountIn:          params.AmountIn,
		Fee:               big.NewInt(int64(params.Fee)),
		SqrtPriceLimitX96: big.NewInt(0),
	})
	if err != nil {
		return QuoteResult{}, errors.Wrap(err, "c.call")
	}

	const requiredSize = 4
	if len(out) < requiredSize {
		return QuoteResult{}, errors.Errorf("insufficient outputs from quoteExactInputSingle call: expected %d, got %d", requiredSize, len(out))
	}

	amountOut, ok := out[0].(*big.Int)
	if !ok {
		return QuoteResult{}, errors.New("failed to cast amountOut to *big.Int")
	}
	sqrtPriceAfter, ok := out[1].(*big.Int)
	if !ok {
		return QuoteResult{}, errors.New("failed to cast sqrtPriceX96After to *big.Int")
	}
	ticksCrossed, ok := out[2].(uint32)
	if !ok {
		return QuoteResult{}, errors.New("failed to cast initializedTicksCrossed to uint32")
	}
	gasEstimate, ok := out[3].(*big.Int)
	if !ok {
		return QuoteResult{}, errors.New("failed to cast gasEstimate to *big.Int")
	}

	return QuoteResult{
		AmountOut:               amountOut,
		SqrtPriceX96After:       sqrtPriceAfter,
		InitializedTicksCrossed: ticksCrossed,
		GasEstimate:             gasEstimate,
	}, nil
}

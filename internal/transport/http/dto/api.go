// Package dto holds the JSON wire shapes of the gateway API. Amounts
// travel as base-10 strings so that uint256 values survive the trip.
package dto

// TokenInfoResponse is the payload of GET /api/token-info.
type TokenInfoResponse struct {
	Address              string `json:"address"`
	Name                 string `json:"name"`
	Symbol               string `json:"symbol"`
	Decimals             uint8  `json:"decimals"`
	TotalSupply          string `json:"total_supply"`
	TotalSupplyFormatted string `json:"total_supply_formatted"`
}

// PoolInfoResponse is the payload of GET /api/pool-info.
type PoolInfoResponse struct {
	TokenAddress      string `json:"token_address"`
	QuoteTokenAddress string `json:"quote_token_address"`
	PoolsFound        int    `json:"pools_found"`
	Pools             []Pool `json:"pools"`
}

// Pool describes one pool inside PoolInfoResponse.
type Pool struct {
	Address       string `json:"address"`
	Fee           uint32 `json:"fee"`
	FeePercentage string `json:"fee_percentage"`
	Liquidity     string `json:"liquidity,omitempty"`
	SqrtPriceX96  string `json:"sqrt_price_x96,omitempty"`
}

// QuoteRequest is the body of POST /api/quote.
type QuoteRequest struct {
	AmountIn string `json:"amount_in"`
	Fee      uint32 `json:"fee,omitempty"`
}

// QuoteResponse is the payload of POST /api/quote.
type QuoteResponse struct {
	AmountIn           string `json:"amount_in"`
	AmountOut          string `json:"amount_out"`
	AmountOutFormatted string `json:"amount_out_formatted"`
	Fee                uint32 `json:"fee"`
	FeePercentage      string `json:"fee_percentage"`
	Price              string `json:"price"`
	GasEstimate        string `json:"gas_estimate,omitempty"`
}

// ApproveRequest is the body of POST /api/approve.
type ApproveRequest struct {
	AccountAddress string `json:"account_address"`
	Amount         string `json:"amount"`
	PrivateKey     string `json:"private_key"`
}

// ApproveResponse is the payload of POST /api/approve.
type ApproveResponse struct {
	TransactionHash string `json:"transaction_hash"`
	Amount          string `json:"amount"`
	Spender         string `json:"spender"`
}

// SwapRequest is the body of POST /api/swap.
type SwapRequest struct {
	AccountAddress   string `json:"account_address"`
	AmountIn         string `json:"amount_in"`
	AmountOutMinimum string `json:"amount_out_minimum,omitempty"`
	SlippageBps      uint32 `json:"slippage_bps,omitempty"`
	Fee              uint32 `json:"fee,omitempty"`
	PrivateKey       string `json:"private_key"`
}

// SwapResponse is the payload of POST /api/swap.
type SwapResponse struct {
	TransactionHash  string `json:"transaction_hash"`
	AmountIn         string `json:"amount_in"`
	AmountOutMinimum string `json:"amount_out_minimum"`
	Fee              uint32 `json:"fee"`
}

package format

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Units renders a raw integer token amount as a decimal string, e.g.
// 1500000000000000000 with 18 decimals becomes "1.5".
func Units(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

// FeePercent renders a V3 fee tier (hundredths of a bip) as a percent
// string, e.g. 2500 becomes "0.25%".
func FeePercent(fee uint32) string {
	return decimal.New(int64(fee), -4).String() + "%"
}

// Price renders the unit price implied by an input/output amount pair,
// fixed to eight fractional digits. Returns "0" for a zero input.
func Price(amountIn, amountOut *big.Int, decimalsIn, decimalsOut uint8) string {
	if amountIn == nil || amountOut == nil || amountIn.Sign() == 0 {
		return "0"
	}
	in := decimal.NewFromBigInt(amountIn, -int32(decimalsIn))
	out := decimal.NewFromBigInt(amountOut, -int32(decimalsOut))
	return out.Div(in).StringFixed(8)
}

// UnitsWithSymbol renders Units followed by the token symbol.
func UnitsWithSymbol(amount *big.Int, decimals uint8, symbol string) string {
	if symbol == "" {
		return Units(amount, decimals)
	}
	return fmt.Sprintf("%s %s", Units(amount, decimals), symbol)
}

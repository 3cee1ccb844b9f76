// Package validate parses and checks incoming API requests before they
// reach the business layer.
package validate

import (
	"crypto/ecdsa"
	"encoding/json"
	"math/big"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"dexgateway/internal/apperrors"
	svcdto "dexgateway/internal/service/dto"
	"dexgateway/internal/transport/http/dto"
)

// QuoteRequestValidate parses the /api/quote body.
func QuoteRequestValidate(r *http.Request) (svcdto.QuoteRequest, error) {
	var body dto.QuoteRequest
	if err := decode(r, &body); err != nil {
		return svcdto.QuoteRequest{}, err
	}

	amountIn, err := parseAmount(body.AmountIn, "amount_in")
	if err != nil {
		return svcdto.QuoteRequest{}, err
	}

	return svcdto.QuoteRequest{
		AmountIn: amountIn,
		Fee:      body.Fee,
	}, nil
}

// ApproveRequestValidate parses the /api/approve body.
func ApproveRequestValidate(r *http.Request) (svcdto.ApproveRequest, error) {
	var body dto.ApproveRequest
	if err := decode(r, &body); err != nil {
		return svcdto.ApproveRequest{}, err
	}

	account, err := parseAddress(body.AccountAddress, "account_address")
	if err != nil {
		return svcdto.ApproveRequest{}, err
	}
	amount, err := parseAmount(body.Amount, "amount")
	if err != nil {
		return svcdto.ApproveRequest{}, err
	}
	key, err := parseKey(body.PrivateKey)
	if err != nil {
		return svcdto.ApproveRequest{}, err
	}

	return svcdto.ApproveRequest{
		Account: account,
		Amount:  amount,
		Key:     key,
	}, nil
}

// SwapRequestValidate parses the /api/swap body.
func SwapRequestValidate(r *http.Request) (svcdto.SwapRequest, error) {
	var body dto.SwapRequest
	if err := decode(r, &body); err != nil {
		return svcdto.SwapRequest{}, err
	}

	account, err := parseAddress(body.AccountAddress, "account_address")
	if err != nil {
		return svcdto.SwapRequest{}, err
	}
	amountIn, err := parseAmount(body.AmountIn, "amount_in")
	if err != nil {
		return svcdto.SwapRequest{}, err
	}
	key, err := parseKey(body.PrivateKey)
	if err != nil {
		return svcdto.SwapRequest{}, err
	}

	var minOut *big.Int
	if body.AmountOutMinimum != "" {
		minOut, err = parseAmount(body.AmountOutMinimum, "amount_out_minimum")
		if err != nil {
			return svcdto.SwapRequest{}, err
		}
	}

	return svcdto.SwapRequest{
		Account:          account,
		AmountIn:         amountIn,
		AmountOutMinimum: minOut,
		SlippageBps:      body.SlippageBps,
		Fee:              body.Fee,
		Key:              key,
	}, nil
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(apperrors.ErrInvalidArgument, "malformed JSON body")
	}
	return nil
}

func parseAddress(s, field string) (common.Address, error) {
	if s == "" {
		return common.Address{}, errors.Wrapf(apperrors.ErrInvalidArgument, "%s is required", field)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Wrapf(apperrors.ErrInvalidArgument, "%s is not a valid address", field)
	}
	return common.HexToAddress(s), nil
}

func parseAmount(s, field string) (*big.Int, error) {
	if s == "" {
		return nil, errors.Wrapf(apperrors.ErrInvalidArgument, "%s is required", field)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrInvalidArgument, "%s is not a base-10 integer", field)
	}
	if v.Sign() <= 0 {
		return nil, errors.Wrapf(apperrors.ErrInvalidArgument, "%s must be positive", field)
	}
	return v, nil
}

// parseKey decodes a hex private key. The key material never appears
// in returned errors.
func parseKey(s string) (*ecdsa.PrivateKey, error) {
	if s == "" {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "private_key is required")
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "private_key is not a valid secp256k1 key")
	}
	return key, nil
}

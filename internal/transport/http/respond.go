package http

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dexgateway/internal/apperrors"
)

// envelope is the uniform response wrapper of every API endpoint.
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) respondData(w http.ResponseWriter, data any) {
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// respondError maps business errors onto HTTP statuses and stable
// error codes. Unknown errors are never echoed to the client.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	var (
		status int
		code   string
		msg    = err.Error()
	)

	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		status, code = http.StatusBadRequest, "validation_error"
	case errors.Is(err, apperrors.ErrInsufficientLiquidity):
		status, code = http.StatusBadRequest, "insufficient_liquidity"
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		status, code = http.StatusBadRequest, "insufficient_balance"
	case errors.Is(err, apperrors.ErrSlippageExceeded):
		status, code = http.StatusBadRequest, "slippage_exceeded"
	case errors.Is(err, apperrors.ErrChainRead):
		status, code = http.StatusBadGateway, "upstream_error"
	case errors.Is(err, apperrors.ErrTxRejected):
		status, code = http.StatusBadGateway, "transaction_rejected"
	default:
		status, code = http.StatusInternalServerError, "internal_error"
		msg = "internal error"
		s.log.Error("unhandled error", zap.Error(err))
	}

	s.writeJSON(w, status, envelope{
		Success: false,
		Error:   &errorBody{Code: code, Message: msg},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Warn("response write failed", zap.Error(err))
	}
}

package http

import (
	"net/http"

	"dexgateway/internal/transport/http/dto"
	"dexgateway/internal/transport/http/validate"
)

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	req, err := validate.SwapRequestValidate(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.Swap(ctx, req)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondData(w, dto.SwapResponse{
		TransactionHash:  res.Hash.Hex(),
		AmountIn:         res.AmountIn.String(),
		AmountOutMinimum: res.AmountOutMinimum.String(),
		Fee:              res.Fee,
	})
}

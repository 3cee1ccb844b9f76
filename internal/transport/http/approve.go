package http

import (
	"net/http"

	"dexgateway/internal/transport/http/dto"
	"dexgateway/internal/transport/http/validate"
)

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	req, err := validate.ApproveRequestValidate(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.Approve(ctx, req)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondData(w, dto.ApproveResponse{
		TransactionHash: res.Hash.Hex(),
		Amount:          res.Amount.String(),
		Spender:         res.Spender.Hex(),
	})
}

package http

import (
	"net/http"

	"dexgateway/internal/format"
	"dexgateway/internal/transport/http/dto"
)

func (s *Server) handleTokenInfo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	info, err := s.svc.TokenInfo(ctx)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondData(w, dto.TokenInfoResponse{
		Address:              info.Address.Hex(),
		Name:                 info.Name,
		Symbol:               info.Symbol,
		Decimals:             info.Decimals,
		TotalSupply:          info.TotalSupply.String(),
		TotalSupplyFormatted: format.Units(info.TotalSupply, info.Decimals),
	})
}

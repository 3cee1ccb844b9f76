package http

import (
	"net/http"

	"dexgateway/internal/format"
	"dexgateway/internal/transport/http/dto"
	"dexgateway/internal/transport/http/validate"
)

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	req, err := validate.QuoteRequestValidate(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.Quote(ctx, req)
	if err != nil {
		s.respondError(w, err)
		return
	}

	out := dto.QuoteResponse{
		AmountIn:           res.AmountIn.String(),
		AmountOut:          res.AmountOut.String(),
		AmountOutFormatted: format.Units(res.AmountOut, s.chain.QuoteTokenDecimals),
		Fee:                res.Fee,
		FeePercentage:      format.FeePercent(res.Fee),
		Price:              format.Price(res.AmountIn, res.AmountOut, s.chain.TokenDecimals, s.chain.QuoteTokenDecimals),
	}
	if res.GasEstimate != nil {
		out.GasEstimate = res.GasEstimate.String()
	}

	s.respondData(w, out)
}

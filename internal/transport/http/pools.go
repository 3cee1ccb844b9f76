package http

import (
	"net/http"

	"dexgateway/internal/format"
	"dexgateway/internal/transport/http/dto"
)

func (s *Server) handlePoolInfo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	pools, err := s.svc.Pools(ctx)
	if err != nil {
		s.respondError(w, err)
		return
	}

	out := make([]dto.Pool, 0, len(pools))
	for _, p := range pools {
		item := dto.Pool{
			Address:       p.Address.Hex(),
			Fee:           p.Fee,
			FeePercentage: format.FeePercent(p.Fee),
		}
		if p.Liquidity != nil {
			item.Liquidity = p.Liquidity.String()
		}
		if p.SqrtPriceX96 != nil {
			item.SqrtPriceX96 = p.SqrtPriceX96.String()
		}
		out = append(out, item)
	}

	s.respondData(w, dto.PoolInfoResponse{
		TokenAddress:      s.chain.TokenAddress,
		QuoteTokenAddress: s.chain.QuoteTokenAddress,
		PoolsFound:        len(out),
		Pools:             out,
	})
}

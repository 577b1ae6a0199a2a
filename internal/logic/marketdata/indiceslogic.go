package marketdata

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
	"stockdeck-api/pkg/market"
)

type IndicesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewIndicesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *IndicesLogic {
	return &IndicesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *IndicesLogic) Indices(req *types.MarketIndicesReq) ([]market.MarketIndex, error) {
	if !market.ValidTimeframe(req.Timeframe) {
		return nil, xerr.Invalid("Invalid timeframe", map[string]string{
			"timeframe": "must be one of 1D, 1W, 1M, 3M, 1Y, 5Y",
		})
	}
	return l.svcCtx.Gateway.Indices(l.ctx, req.Timeframe)
}

package stocks

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/pkg/market"
)

type IndicatorsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewIndicatorsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *IndicatorsLogic {
	return &IndicatorsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *IndicatorsLogic) Indicators(req *types.StockSymbolReq) ([]market.TechnicalIndicator, error) {
	return l.svcCtx.Gateway.Indicators(l.ctx, req.Symbol)
}

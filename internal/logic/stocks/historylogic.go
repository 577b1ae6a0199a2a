package stocks

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
	"stockdeck-api/pkg/market"
)

type HistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HistoryLogic {
	return &HistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *HistoryLogic) History(req *types.StockHistoryReq) ([]market.HistoryPoint, error) {
	if !market.ValidTimeframe(req.Timeframe) {
		return nil, xerr.Invalid("Invalid timeframe", map[string]string{
			"timeframe": "must be one of 1D, 1W, 1M, 3M, 1Y, 5Y",
		})
	}
	return l.svcCtx.Gateway.History(l.ctx, req.Symbol, req.Timeframe)
}

package stocks

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/pkg/market"
)

type CompanyLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCompanyLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CompanyLogic {
	return &CompanyLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CompanyLogic) Company(req *types.StockSymbolReq) (*market.CompanyInfo, error) {
	return l.svcCtx.Gateway.Company(l.ctx, req.Symbol)
}

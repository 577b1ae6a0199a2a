package news

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/pkg/market"
)

type NewsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewNewsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *NewsLogic {
	return &NewsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// News returns symbol-scoped stories, or the general market feed when the
// symbol is empty.
func (l *NewsLogic) News(req *types.NewsReq) ([]market.NewsItem, error) {
	return l.svcCtx.Gateway.News(l.ctx, req.Symbol)
}

package stocks

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
	"stockdeck-api/pkg/market"
)

type SearchLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSearchLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SearchLogic {
	return &SearchLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SearchLogic) Search(req *types.StockSearchReq) ([]market.SearchResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, xerr.Invalid("Query parameter is required", map[string]string{
			"q": "must not be empty",
		})
	}
	return l.svcCtx.Gateway.Search(l.ctx, query)
}

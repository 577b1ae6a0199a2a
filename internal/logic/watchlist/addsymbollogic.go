package watchlist

import (
	"context"
	"errors"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/storage"
	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
)

type AddSymbolLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddSymbolLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddSymbolLogic {
	return &AddSymbolLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AddSymbolLogic) AddSymbol(req *types.AddSymbolReq) (*types.WatchlistSymbolResp, error) {
	if strings.TrimSpace(req.Symbol) == "" {
		return nil, xerr.Invalid("Invalid symbol data", map[string]string{
			"symbol": "must not be empty",
		})
	}

	sym, err := l.svcCtx.Store.AddSymbol(l.ctx, req.Id, req.Symbol, req.CompanyName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, xerr.NotFound("Watchlist not found")
		}
		return nil, err
	}
	resp := toSymbolResp(sym)
	return &resp, nil
}

package watchlist

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/storage"
	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
)

type GetWatchlistLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetWatchlistLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetWatchlistLogic {
	return &GetWatchlistLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetWatchlistLogic) GetWatchlist(req *types.WatchlistIdReq) (*types.WatchlistResp, error) {
	wl, err := l.svcCtx.Store.GetWatchlist(l.ctx, req.Id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, xerr.NotFound("Watchlist not found")
		}
		return nil, err
	}
	return toWatchlistResp(wl), nil
}

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

type DeleteWatchlistLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteWatchlistLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteWatchlistLogic {
	return &DeleteWatchlistLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteWatchlistLogic) DeleteWatchlist(req *types.WatchlistIdReq) error {
	if err := l.svcCtx.Store.DeleteWatchlist(l.ctx, req.Id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return xerr.NotFound("Watchlist not found")
		}
		return err
	}
	return nil
}

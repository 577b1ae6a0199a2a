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

type RemoveSymbolLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRemoveSymbolLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RemoveSymbolLogic {
	return &RemoveSymbolLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RemoveSymbolLogic) RemoveSymbol(req *types.RemoveSymbolReq) error {
	if err := l.svcCtx.Store.RemoveSymbol(l.ctx, req.WatchlistId, req.SymbolId); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return xerr.NotFound("Symbol not found")
		}
		return err
	}
	return nil
}

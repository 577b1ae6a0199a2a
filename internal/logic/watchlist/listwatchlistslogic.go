package watchlist

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
)

type ListWatchlistsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListWatchlistsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListWatchlistsLogic {
	return &ListWatchlistsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListWatchlistsLogic) ListWatchlists() ([]types.WatchlistResp, error) {
	lists, err := l.svcCtx.Store.ListWatchlists(l.ctx, l.svcCtx.Config.DefaultUserId)
	if err != nil {
		return nil, err
	}
	resp := make([]types.WatchlistResp, 0, len(lists))
	for i := range lists {
		resp = append(resp, *toWatchlistResp(&lists[i]))
	}
	return resp, nil
}

package watchlist

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
)

type CreateWatchlistLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateWatchlistLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateWatchlistLogic {
	return &CreateWatchlistLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateWatchlistLogic) CreateWatchlist(req *types.CreateWatchlistReq) (*types.WatchlistResp, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, xerr.Invalid("Invalid watchlist data", map[string]string{
			"name": "must not be empty",
		})
	}

	userID := req.UserId
	if userID == 0 {
		userID = l.svcCtx.Config.DefaultUserId
	}

	wl, err := l.svcCtx.Store.CreateWatchlist(l.ctx, name, userID)
	if err != nil {
		return nil, err
	}
	return toWatchlistResp(wl), nil
}

package user

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/storage"
	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
	"stockdeck-api/pkg/market"
)

type UpdatePreferencesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdatePreferencesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdatePreferencesLogic {
	return &UpdatePreferencesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdatePreferencesLogic) UpdatePreferences(req *types.UpdatePreferencesReq) (*types.UserPreferencesResp, error) {
	if req.DefaultTimeframe != nil && !market.ValidTimeframe(*req.DefaultTimeframe) {
		return nil, xerr.Invalid("Invalid preference data", map[string]string{
			"defaultTimeframe": "must be one of 1D, 1W, 1M, 3M, 1Y, 5Y",
		})
	}

	prefs, err := l.svcCtx.Store.UpdatePreferences(l.ctx, l.svcCtx.Config.DefaultUserId, storage.PreferencePatch{
		DefaultTimeframe: req.DefaultTimeframe,
		FavoriteSymbols:  req.FavoriteSymbols,
		Theme:            req.Theme,
	})
	if err != nil {
		return nil, err
	}
	return toPreferencesResp(prefs), nil
}

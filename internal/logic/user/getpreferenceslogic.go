package user

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/storage"
	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
)

type GetPreferencesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetPreferencesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetPreferencesLogic {
	return &GetPreferencesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetPreferences returns the default user's settings. A user with no stored
// record gets the defaults without one being persisted.
func (l *GetPreferencesLogic) GetPreferences() (*types.UserPreferencesResp, error) {
	userID := l.svcCtx.Config.DefaultUserId
	prefs, err := l.svcCtx.Store.GetPreferences(l.ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return &types.UserPreferencesResp{
			UserId:           userID,
			DefaultTimeframe: storage.DefaultTimeframe,
			FavoriteSymbols:  []string{},
			Theme:            storage.DefaultTheme,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return toPreferencesResp(prefs), nil
}

func toPreferencesResp(prefs *storage.UserPreference) *types.UserPreferencesResp {
	favorites := prefs.FavoriteSymbols
	if favorites == nil {
		favorites = []string{}
	}
	return &types.UserPreferencesResp{
		Id:               prefs.ID,
		UserId:           prefs.UserID,
		DefaultTimeframe: prefs.DefaultTimeframe,
		FavoriteSymbols:  favorites,
		Theme:            prefs.Theme,
	}
}

package watchlist

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"stockdeck-api/internal/logic/watchlist"
	"stockdeck-api/internal/svc"
)

func ListWatchlistsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := watchlist.NewListWatchlistsLogic(r.Context(), svcCtx)
		resp, err := l.ListWatchlists()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

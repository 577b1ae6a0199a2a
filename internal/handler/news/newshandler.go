package news

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"stockdeck-api/internal/logic/news"
	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
)

// NewsHandler serves both the general feed and the symbol-scoped route.
func NewsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.NewsReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, xerr.Invalid(err.Error(), nil))
			return
		}

		l := news.NewNewsLogic(r.Context(), svcCtx)
		resp, err := l.News(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

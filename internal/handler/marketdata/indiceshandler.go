package marketdata

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"stockdeck-api/internal/logic/marketdata"
	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
)

func IndicesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.MarketIndicesReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, xerr.Invalid(err.Error(), nil))
			return
		}

		l := marketdata.NewIndicesLogic(r.Context(), svcCtx)
		resp, err := l.Indices(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

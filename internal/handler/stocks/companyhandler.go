package stocks

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"stockdeck-api/internal/logic/stocks"
	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
)

func CompanyHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.StockSymbolReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, xerr.Invalid(err.Error(), nil))
			return
		}

		l := stocks.NewCompanyLogic(r.Context(), svcCtx)
		resp, err := l.Company(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

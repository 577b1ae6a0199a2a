// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	marketdatahandler "stockdeck-api/internal/handler/marketdata"
	newshandler "stockdeck-api/internal/handler/news"
	stockshandler "stockdeck-api/internal/handler/stocks"
	userhandler "stockdeck-api/internal/handler/user"
	watchlisthandler "stockdeck-api/internal/handler/watchlist"
	"stockdeck-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/market/indices",
				Handler: marketdatahandler.IndicesHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/stocks/search",
				Handler: stockshandler.SearchHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/stocks/quote/:symbol",
				Handler: stockshandler.QuoteHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/stocks/history/:symbol",
				Handler: stockshandler.HistoryHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/stocks/indicators/:symbol",
				Handler: stockshandler.IndicatorsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/stocks/company/:symbol",
				Handler: stockshandler.CompanyHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/news",
				Handler: newshandler.NewsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/news/:symbol",
				Handler: newshandler.NewsHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/watchlists",
				Handler: watchlisthandler.ListWatchlistsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/watchlists",
				Handler: watchlisthandler.CreateWatchlistHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/watchlists/:id",
				Handler: watchlisthandler.GetWatchlistHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/watchlists/:id",
				Handler: watchlisthandler.DeleteWatchlistHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/watchlists/:id/symbols",
				Handler: watchlisthandler.AddSymbolHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/watchlists/:watchlistId/symbols/:symbolId",
				Handler: watchlisthandler.RemoveSymbolHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/user/preferences",
				Handler: userhandler.GetPreferencesHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/api/user/preferences",
				Handler: userhandler.UpdatePreferencesHandler(serverCtx),
			},
		},
	)
}

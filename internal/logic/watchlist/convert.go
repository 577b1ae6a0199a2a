package watchlist

import (
	"stockdeck-api/internal/storage"
	"stockdeck-api/internal/types"
)

func toWatchlistResp(wl *storage.Watchlist) *types.WatchlistResp {
	resp := &types.WatchlistResp{
		Id:      wl.ID,
		Name:    wl.Name,
		UserId:  wl.UserID,
		Symbols: make([]types.WatchlistSymbolResp, 0, len(wl.Symbols)),
	}
	for _, sym := range wl.Symbols {
		resp.Symbols = append(resp.Symbols, toSymbolResp(&sym))
	}
	return resp
}

func toSymbolResp(sym *storage.WatchlistSymbol) types.WatchlistSymbolResp {
	return types.WatchlistSymbolResp{
		Id:            sym.ID,
		WatchlistId:   sym.WatchlistID,
		Symbol:        sym.Symbol,
		CompanyName:   sym.CompanyName,
		Price:         sym.Price,
		ChangePercent: sym.ChangePercent,
	}
}

package types

// Request types for the REST surface. Market data responses reuse the
// pkg/market payload structs directly.

type MarketIndicesReq struct {
	Timeframe string `form:"timeframe,default=1D"`
}

type StockSearchReq struct {
	Query string `form:"q,optional"`
}

type StockSymbolReq struct {
	Symbol string `path:"symbol"`
}

type StockHistoryReq struct {
	Symbol    string `path:"symbol"`
	Timeframe string `form:"timeframe,default=1D"`
}

type NewsReq struct {
	Symbol string `path:"symbol,optional"`
}

type WatchlistIdReq struct {
	Id int64 `path:"id"`
}

type CreateWatchlistReq struct {
	Name   string `json:"name"`
	UserId int64  `json:"userId,optional"`
}

type AddSymbolReq struct {
	Id          int64  `path:"id"`
	Symbol      string `json:"symbol"`
	CompanyName string `json:"companyName,optional"`
}

type RemoveSymbolReq struct {
	WatchlistId int64 `path:"watchlistId"`
	SymbolId    int64 `path:"symbolId"`
}

type UpdatePreferencesReq struct {
	DefaultTimeframe *string  `json:"defaultTimeframe,optional"`
	FavoriteSymbols  []string `json:"favoriteSymbols,optional"`
	Theme            *string  `json:"theme,optional"`
}

// Response types for the store-backed routes.

type WatchlistSymbolResp struct {
	Id            int64   `json:"id"`
	WatchlistId   int64   `json:"watchlistId"`
	Symbol        string  `json:"symbol"`
	CompanyName   string  `json:"companyName"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"changePercent"`
}

type WatchlistResp struct {
	Id      int64                 `json:"id"`
	Name    string                `json:"name"`
	UserId  int64                 `json:"userId"`
	Symbols []WatchlistSymbolResp `json:"symbols"`
}

type UserPreferencesResp struct {
	Id               int64    `json:"id"`
	UserId           int64    `json:"userId"`
	DefaultTimeframe string   `json:"defaultTimeframe"`
	FavoriteSymbols  []string `json:"favoriteSymbols"`
	Theme            string   `json:"theme"`
}

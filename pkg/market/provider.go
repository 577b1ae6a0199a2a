package market

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by providers for operations they have no
// upstream endpoint for. Callers treat it like any other upstream failure
// and route to the fallback path.
var ErrUnsupported = errors.New("market: operation not supported by provider")

// ErrNotFound indicates the upstream knows the operation but has no data for
// the requested symbol.
var ErrNotFound = errors.New("market: symbol not found")

// Provider exposes provider-agnostic financial market data.
type Provider interface {
	// Indices returns the major market indices scaled to the timeframe.
	Indices(ctx context.Context, timeframe string) ([]MarketIndex, error)
	// Search looks up symbols matching the query keyword.
	Search(ctx context.Context, query string) ([]SearchResult, error)
	// Quote returns the latest quote for the symbol.
	Quote(ctx context.Context, symbol string) (*StockQuote, error)
	// History returns OHLCV points for the symbol ordered oldest to newest.
	History(ctx context.Context, symbol, timeframe string) ([]HistoryPoint, error)
	// Indicators returns the standard technical indicator set for the symbol.
	Indicators(ctx context.Context, symbol string) ([]TechnicalIndicator, error)
	// Company returns company or index profile information.
	Company(ctx context.Context, symbol string) (*CompanyInfo, error)
	// News returns recent news, optionally scoped to a symbol.
	News(ctx context.Context, symbol string) ([]NewsItem, error)
}

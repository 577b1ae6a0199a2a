package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/cache"
	"stockdeck-api/pkg/market"
	"stockdeck-api/pkg/market/indicators"
	"stockdeck-api/pkg/market/synthetic"
)

// maxNewsItems caps every news response, upstream or synthetic.
const maxNewsItems = 10

// Gateway serves market data from the upstream provider and caches responses
// in Redis. When the upstream fails or does not cover a resource, it falls
// back to the deterministic synthetic generator so the API keeps answering.
type Gateway struct {
	provider market.Provider
	fallback *synthetic.Generator
	cache    *cache.PayloadCache
	ttls     cache.TTLSet
}

// New builds a gateway. provider may be nil, in which case every response is
// synthetic. cache may be nil to disable caching.
func New(provider market.Provider, fallback *synthetic.Generator, payloadCache *cache.PayloadCache, ttls cache.TTLSet) *Gateway {
	if fallback == nil {
		fallback = synthetic.New()
	}
	return &Gateway{provider: provider, fallback: fallback, cache: payloadCache, ttls: ttls}
}

func (g *Gateway) getCache(ctx context.Context, key string, v interface{}) bool {
	return g.cache.Get(ctx, key, v)
}

func (g *Gateway) setCache(ctx context.Context, key string, v interface{}, class cache.TTLClass) {
	g.cache.Set(ctx, key, v, g.ttls.Duration(class))
}

// Indices returns the major market indices scaled to the timeframe.
// No upstream covers composite indices, so unsupported providers fall
// straight through to the generator.
func (g *Gateway) Indices(ctx context.Context, timeframe string) ([]market.MarketIndex, error) {
	key := cache.IndicesKey(timeframe)
	var cached []market.MarketIndex
	if g.getCache(ctx, key, &cached) {
		return cached, nil
	}

	if g.provider != nil {
		indices, err := g.provider.Indices(ctx, timeframe)
		if err == nil {
			g.setCache(ctx, key, indices, cache.TTLShort)
			return indices, nil
		}
		if !errors.Is(err, market.ErrUnsupported) {
			logx.WithContext(ctx).Errorf("upstream indices %s failed, using synthetic: %v", timeframe, err)
		}
	}

	indices := g.fallback.Indices(timeframe)
	g.setCache(ctx, key, indices, cache.TTLShort)
	return indices, nil
}

// Search proxies symbol search. On upstream failure the generator's keyword
// table answers; an empty result set is a valid answer, not an error.
func (g *Gateway) Search(ctx context.Context, query string) ([]market.SearchResult, error) {
	key := cache.SearchKey(query)
	var cached []market.SearchResult
	if g.getCache(ctx, key, &cached) {
		return cached, nil
	}

	if g.provider != nil {
		results, err := g.provider.Search(ctx, query)
		if err == nil {
			g.setCache(ctx, key, results, cache.TTLMedium)
			return results, nil
		}
		logx.WithContext(ctx).Errorf("upstream search %q failed, using synthetic: %v", query, err)
	}

	results := g.fallback.Search(query)
	g.setCache(ctx, key, results, cache.TTLMedium)
	return results, nil
}

// Quote returns a quote for one symbol. Index symbols are always synthetic;
// plain symbols hit the upstream and fall back only where the generator has
// a shape for them.
func (g *Gateway) Quote(ctx context.Context, symbol string) (*market.StockQuote, error) {
	key := cache.QuoteKey(symbol)
	var cached market.StockQuote
	if g.getCache(ctx, key, &cached) {
		return &cached, nil
	}

	if market.IsIndexSymbol(symbol) {
		quote := g.fallback.IndexQuote(symbol)
		g.setCache(ctx, key, quote, cache.TTLShort)
		return quote, nil
	}

	if g.provider != nil {
		quote, err := g.provider.Quote(ctx, symbol)
		if err == nil {
			g.setCache(ctx, key, quote, cache.TTLShort)
			return quote, nil
		}
		logx.WithContext(ctx).Errorf("upstream quote %s failed: %v", symbol, err)
		if fallback := g.fallback.StockQuote(symbol); fallback != nil {
			g.setCache(ctx, key, fallback, cache.TTLShort)
			return fallback, nil
		}
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}

	if quote := g.fallback.StockQuote(symbol); quote != nil {
		g.setCache(ctx, key, quote, cache.TTLShort)
		return quote, nil
	}
	return nil, fmt.Errorf("quote %s: %w", symbol, market.ErrNotFound)
}

// History returns OHLCV points for a symbol and timeframe. Index symbols are
// always synthetic.
func (g *Gateway) History(ctx context.Context, symbol, timeframe string) ([]market.HistoryPoint, error) {
	key := cache.HistoryKey(symbol, timeframe)
	var cached []market.HistoryPoint
	if g.getCache(ctx, key, &cached) {
		return cached, nil
	}

	if !market.IsIndexSymbol(symbol) && g.provider != nil {
		points, err := g.provider.History(ctx, symbol, timeframe)
		if err == nil {
			g.setCache(ctx, key, points, cache.TTLMedium)
			return points, nil
		}
		logx.WithContext(ctx).Errorf("upstream history %s/%s failed, using synthetic: %v", symbol, timeframe, err)
	}

	points := g.fallback.History(symbol, timeframe)
	g.setCache(ctx, key, points, cache.TTLMedium)
	return points, nil
}

// Indicators returns the technical indicator set for a symbol.
func (g *Gateway) Indicators(ctx context.Context, symbol string) ([]market.TechnicalIndicator, error) {
	key := cache.IndicatorsKey(symbol)
	var cached []market.TechnicalIndicator
	if g.getCache(ctx, key, &cached) {
		return cached, nil
	}

	if !market.IsIndexSymbol(symbol) && g.provider != nil {
		set, err := g.provider.Indicators(ctx, symbol)
		if err == nil {
			g.setCache(ctx, key, set, cache.TTLMedium)
			return set, nil
		}
		logx.WithContext(ctx).Errorf("upstream indicators %s failed: %v", symbol, err)

		// Indicator endpoints are often gated; derive from price history
		// before giving up on live data entirely.
		if set, derr := g.deriveIndicators(ctx, symbol); derr == nil {
			g.setCache(ctx, key, set, cache.TTLMedium)
			return set, nil
		}
	}

	indicators := g.fallback.Indicators(symbol)
	g.setCache(ctx, key, indicators, cache.TTLMedium)
	return indicators, nil
}

// deriveIndicators computes the indicator set locally from a year of daily
// closes when the dedicated indicator endpoints fail.
func (g *Gateway) deriveIndicators(ctx context.Context, symbol string) ([]market.TechnicalIndicator, error) {
	points, err := g.provider.History(ctx, symbol, market.Timeframe1Y)
	if err != nil {
		return nil, err
	}
	closes := make([]float64, 0, len(points))
	for _, p := range points {
		closes = append(closes, p.Close)
	}
	return indicators.DeriveSet(closes)
}

// Company returns profile data for a symbol.
func (g *Gateway) Company(ctx context.Context, symbol string) (*market.CompanyInfo, error) {
	key := cache.CompanyKey(symbol)
	var cached market.CompanyInfo
	if g.getCache(ctx, key, &cached) {
		return &cached, nil
	}

	if !market.IsIndexSymbol(symbol) && g.provider != nil {
		info, err := g.provider.Company(ctx, symbol)
		if err == nil {
			g.setCache(ctx, key, info, cache.TTLLong)
			return info, nil
		}
		logx.WithContext(ctx).Errorf("upstream company %s failed, using synthetic: %v", symbol, err)
	}

	info := g.fallback.Company(symbol)
	g.setCache(ctx, key, info, cache.TTLLong)
	return info, nil
}

// News returns at most maxNewsItems stories, symbol-scoped or general.
func (g *Gateway) News(ctx context.Context, symbol string) ([]market.NewsItem, error) {
	key := cache.NewsKey(symbol)
	var cached []market.NewsItem
	if g.getCache(ctx, key, &cached) {
		return cached, nil
	}

	if g.provider != nil {
		items, err := g.provider.News(ctx, symbol)
		if err == nil {
			items = capNews(items)
			g.setCache(ctx, key, items, cache.TTLMedium)
			return items, nil
		}
		logx.WithContext(ctx).Errorf("upstream news %q failed, using synthetic: %v", symbol, err)
	}

	items := capNews(g.fallback.News(symbol))
	g.setCache(ctx, key, items, cache.TTLMedium)
	return items, nil
}

func capNews(items []market.NewsItem) []market.NewsItem {
	if len(items) > maxNewsItems {
		return items[:maxNewsItems]
	}
	return items
}

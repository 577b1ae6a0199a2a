package gateway

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockdeck-api/internal/cache"
	"stockdeck-api/pkg/market"
	"stockdeck-api/pkg/market/synthetic"
)

// stubProvider returns canned data or a shared error per operation.
type stubProvider struct {
	err              error
	indicatorsErr    error
	quote            *market.StockQuote
	history          []market.HistoryPoint
	historyTimeframe string
	results          []market.SearchResult
	news             []market.NewsItem
	calls            map[string]int
}

func newStubProvider() *stubProvider {
	return &stubProvider{calls: map[string]int{}}
}

func (p *stubProvider) Indices(ctx context.Context, timeframe string) ([]market.MarketIndex, error) {
	p.calls["indices"]++
	return nil, market.ErrUnsupported
}

func (p *stubProvider) Search(ctx context.Context, query string) ([]market.SearchResult, error) {
	p.calls["search"]++
	if p.err != nil {
		return nil, p.err
	}
	return p.results, nil
}

func (p *stubProvider) Quote(ctx context.Context, symbol string) (*market.StockQuote, error) {
	p.calls["quote"]++
	if p.err != nil {
		return nil, p.err
	}
	return p.quote, nil
}

func (p *stubProvider) History(ctx context.Context, symbol, timeframe string) ([]market.HistoryPoint, error) {
	p.calls["history"]++
	p.historyTimeframe = timeframe
	if p.err != nil {
		return nil, p.err
	}
	return p.history, nil
}

func (p *stubProvider) Indicators(ctx context.Context, symbol string) ([]market.TechnicalIndicator, error) {
	p.calls["indicators"]++
	if p.indicatorsErr != nil {
		return nil, p.indicatorsErr
	}
	return nil, p.err
}

func (p *stubProvider) Company(ctx context.Context, symbol string) (*market.CompanyInfo, error) {
	p.calls["company"]++
	return nil, p.err
}

func (p *stubProvider) News(ctx context.Context, symbol string) ([]market.NewsItem, error) {
	p.calls["news"]++
	if p.err != nil {
		return nil, p.err
	}
	return p.news, nil
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 15, 13, 0, 0, 0, time.UTC)
}

func newTestGateway(provider market.Provider) *Gateway {
	gen := synthetic.New(
		synthetic.WithRand(rand.New(rand.NewSource(42))),
		synthetic.WithClock(fixedClock),
	)
	return New(provider, gen, nil, cache.TTLSet{})
}

func TestIndicesFallsBackWhenUnsupported(t *testing.T) {
	provider := newStubProvider()
	gw := newTestGateway(provider)

	indices, err := gw.Indices(context.Background(), "1D")
	require.NoError(t, err)
	require.Len(t, indices, 6)
	require.Equal(t, "^GSPC", indices[0].Symbol)
	require.Equal(t, 1, provider.calls["indices"])
}

func TestIndicesWithoutProvider(t *testing.T) {
	gw := newTestGateway(nil)

	indices, err := gw.Indices(context.Background(), "1M")
	require.NoError(t, err)
	require.Len(t, indices, 6)
}

func TestSearchPrefersUpstream(t *testing.T) {
	provider := newStubProvider()
	provider.results = []market.SearchResult{{Symbol: "AAPL", Name: "Apple Inc."}}
	gw := newTestGateway(provider)

	results, err := gw.Search(context.Background(), "apple")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "AAPL", results[0].Symbol)
}

func TestSearchFallsBackOnUpstreamError(t *testing.T) {
	provider := newStubProvider()
	provider.err = errors.New("rate limited")
	gw := newTestGateway(provider)

	results, err := gw.Search(context.Background(), "goog")
	require.NoError(t, err, "upstream failure with a fallback never surfaces")
	require.Len(t, results, 2)
	require.Equal(t, "GOOGL", results[0].Symbol)

	empty, err := gw.Search(context.Background(), "zzz")
	require.NoError(t, err)
	require.Empty(t, empty, "no match is a valid empty answer")
}

func TestQuoteIndexSymbolIsSynthetic(t *testing.T) {
	provider := newStubProvider()
	gw := newTestGateway(provider)

	quote, err := gw.Quote(context.Background(), "^GSPC")
	require.NoError(t, err)
	require.Equal(t, "^GSPC", quote.Symbol)
	require.Equal(t, 4587.84, quote.Price)
	require.Zero(t, provider.calls["quote"], "index quotes never hit the upstream")
}

func TestQuoteFallsBackToApple(t *testing.T) {
	provider := newStubProvider()
	provider.err = errors.New("down")
	gw := newTestGateway(provider)

	quote, err := gw.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, 178.72, quote.Price)
}

func TestQuoteUnknownSymbolSurfacesError(t *testing.T) {
	provider := newStubProvider()
	provider.err = errors.New("down")
	gw := newTestGateway(provider)

	_, err := gw.Quote(context.Background(), "ZZZZ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ZZZZ")
}

func TestHistoryIndexIsSynthetic(t *testing.T) {
	provider := newStubProvider()
	gw := newTestGateway(provider)

	points, err := gw.History(context.Background(), "^GSPC", "1W")
	require.NoError(t, err)
	require.Len(t, points, 30)
	require.Zero(t, provider.calls["history"], "index history never hits the upstream")
}

func TestHistoryPrefersUpstreamForStocks(t *testing.T) {
	provider := newStubProvider()
	provider.history = []market.HistoryPoint{{Timestamp: "2024-05-14", Close: 101}}
	gw := newTestGateway(provider)

	points, err := gw.History(context.Background(), "AAPL", "1W")
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.Equal(t, 1, provider.calls["history"])
}

func TestHistoryFallsBackOnUpstreamError(t *testing.T) {
	provider := newStubProvider()
	provider.err = errors.New("down")
	gw := newTestGateway(provider)

	points, err := gw.History(context.Background(), "AAPL", "1M")
	require.NoError(t, err)
	require.Len(t, points, 30)
}

func TestIndicatorsFallBack(t *testing.T) {
	provider := newStubProvider()
	provider.err = errors.New("down")
	gw := newTestGateway(provider)

	indicators, err := gw.Indicators(context.Background(), "MSFT")
	require.NoError(t, err)
	require.Len(t, indicators, 4)
	require.Equal(t, 173.42, indicators[0].Value)
}

func TestIndicatorsDerivedFromHistory(t *testing.T) {
	provider := newStubProvider()
	provider.indicatorsErr = errors.New("premium endpoint")
	for i := 0; i < 250; i++ {
		provider.history = append(provider.history, market.HistoryPoint{Close: 100 + float64(i)*0.5})
	}
	gw := newTestGateway(provider)

	set, err := gw.Indicators(context.Background(), "MSFT")
	require.NoError(t, err)
	require.Len(t, set, 4)
	require.Equal(t, market.SignalBuy, set[0].Signal, "price above both MAs on an uptrend")
	require.NotEqual(t, 173.42, set[0].Value, "derived values come from history, not the fixed fallback")
	require.Equal(t, 1, provider.calls["history"])
	require.Equal(t, market.Timeframe1Y, provider.historyTimeframe, "derivation needs the daily-resolution year")
}

func TestIndicatorsThinHistoryFallsBack(t *testing.T) {
	provider := newStubProvider()
	provider.indicatorsErr = errors.New("premium endpoint")
	// A weekly-shaped year: far too few closes for MA(200).
	for i := 0; i < 52; i++ {
		provider.history = append(provider.history, market.HistoryPoint{Close: 100 + float64(i)})
	}
	gw := newTestGateway(provider)

	set, err := gw.Indicators(context.Background(), "MSFT")
	require.NoError(t, err)
	require.Len(t, set, 4)
	require.Equal(t, 173.42, set[0].Value, "thin history lands on the fixed fallback")
}

func TestCompanyFallBack(t *testing.T) {
	provider := newStubProvider()
	provider.err = errors.New("down")
	gw := newTestGateway(provider)

	info, err := gw.Company(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, "Apple Inc.", info.Name)

	index, err := gw.Company(context.Background(), "^GSPC")
	require.NoError(t, err)
	require.Equal(t, "S&P 500", index.Name)
	require.Equal(t, 1, provider.calls["company"], "index profiles never hit the upstream")
}

func TestNewsCapped(t *testing.T) {
	provider := newStubProvider()
	for i := 0; i < 25; i++ {
		provider.news = append(provider.news, market.NewsItem{ID: fmt.Sprint(i)})
	}
	gw := newTestGateway(provider)

	items, err := gw.News(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, items, 10)
}

func TestNewsFallsBack(t *testing.T) {
	provider := newStubProvider()
	provider.err = errors.New("down")
	gw := newTestGateway(provider)

	items, err := gw.News(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, items, 3)

	general, err := gw.News(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, general, 5)
}

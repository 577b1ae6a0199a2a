// Package synthetic fabricates plausible, internally consistent market data
// for demo and offline operation. Index snapshots are a deterministic
// function of (index, timeframe); everything randomized draws from an
// injectable source so tests can pin exact outputs.
package synthetic

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"stockdeck-api/pkg/market"
)

// Generator produces fallback market data.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// Option customises a Generator.
type Option func(*Generator)

// WithRand injects a deterministic random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithClock injects a clock, used for intraday point counts and timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New constructs a Generator seeded from the wall clock.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// uniform returns a value in [0, 1). The shared rng is not goroutine safe.
func (g *Generator) uniform() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

// intn returns a value in [0, n).
func (g *Generator) intn(n int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Int63n(n)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// baseIndices is the 1D snapshot of the tracked indices.
var baseIndices = []market.MarketIndex{
	{Symbol: "^GSPC", Name: "S&P 500", Price: 4587.84, Change: 36.53, ChangePercent: 0.8, Region: "US",
		Sparkline: []float64{4550, 4565, 4560, 4570, 4580, 4587}},
	{Symbol: "^IXIC", Name: "NASDAQ", Price: 14346.02, Change: 170.33, ChangePercent: 1.2, Region: "US",
		Sparkline: []float64{14200, 14250, 14280, 14300, 14320, 14346}},
	{Symbol: "^DJI", Name: "DOW", Price: 36124.23, Change: 143.36, ChangePercent: 0.4, Region: "US",
		Sparkline: []float64{36000, 36050, 36080, 36100, 36110, 36124}},
	{Symbol: "^FTSE", Name: "FTSE 100", Price: 7461.43, Change: -22.41, ChangePercent: -0.3, Region: "UK",
		Sparkline: []float64{7500, 7490, 7480, 7470, 7465, 7461}},
	{Symbol: "^N225", Name: "Nikkei", Price: 29332.16, Change: 174.54, ChangePercent: 0.6, Region: "JP",
		Sparkline: []float64{29200, 29250, 29280, 29300, 29320, 29332}},
	{Symbol: "^GDAXI", Name: "DAX", Price: 15727.67, Change: -15.73, ChangePercent: -0.1, Region: "DE",
		Sparkline: []float64{15750, 15745, 15740, 15735, 15730, 15728}},
}

// timeframeScale holds the fixed multipliers applied to the 1D baseline.
// Change multipliers deliberately outpace price multipliers so longer
// timeframes show visibly larger movement.
type timeframeScale struct {
	price     float64
	change    float64
	sparkline [6]float64
}

var timeframeScales = map[string]timeframeScale{
	market.Timeframe1W: {1.05, 5, [6]float64{0.97, 0.98, 0.99, 1.02, 1.04, 1.05}},
	market.Timeframe1M: {1.10, 8, [6]float64{0.94, 0.97, 1.01, 1.05, 1.08, 1.10}},
	market.Timeframe3M: {1.15, 12, [6]float64{0.90, 0.95, 1.02, 1.08, 1.12, 1.15}},
	market.Timeframe1Y: {1.25, 20, [6]float64{0.85, 0.95, 1.05, 1.15, 1.20, 1.25}},
}

// Indices returns the tracked market indices scaled to the timeframe.
// 1D (and any unrecognised tag) passes the baseline through unchanged.
// The output depends only on the inputs; there is no randomness here.
func (g *Generator) Indices(timeframe string) []market.MarketIndex {
	out := make([]market.MarketIndex, len(baseIndices))
	scale, scaled := timeframeScales[timeframe]
	for i, idx := range baseIndices {
		if !scaled {
			cp := idx
			cp.Sparkline = append([]float64(nil), idx.Sparkline...)
			out[i] = cp
			continue
		}
		spark := make([]float64, len(scale.sparkline))
		for j, ratio := range scale.sparkline {
			spark[j] = idx.Price * ratio
		}
		out[i] = market.MarketIndex{
			Symbol:        idx.Symbol,
			Name:          idx.Name,
			Price:         round2(idx.Price * scale.price),
			Change:        round2(idx.Change * scale.change),
			ChangePercent: round1(idx.ChangePercent * scale.change),
			Region:        idx.Region,
			Sparkline:     spark,
		}
	}
	return out
}

func (g *Generator) findIndex(symbol, timeframe string) (market.MarketIndex, bool) {
	for _, idx := range g.Indices(timeframe) {
		if idx.Symbol == symbol {
			return idx, true
		}
	}
	return market.MarketIndex{}, false
}

// IndexQuote derives a full quote from the 1D index snapshot using fixed
// ratios; only the volume is randomized.
func (g *Generator) IndexQuote(symbol string) *market.StockQuote {
	if idx, ok := g.findIndex(symbol, market.Timeframe1D); ok {
		return &market.StockQuote{
			Symbol:        idx.Symbol,
			Name:          idx.Name,
			Price:         idx.Price,
			Change:        idx.Change,
			ChangePercent: idx.ChangePercent,
			Open:          idx.Price - idx.Change*0.8,
			High:          idx.Price + math.Abs(idx.Change)*0.2,
			Low:           idx.Price - math.Abs(idx.Change)*0.3,
			Close:         idx.Price - idx.Change,
			Volume:        g.intn(500_000_000) + 300_000_000,
			MarketCap:     0,
		}
	}

	switch symbol {
	case "^GSPC":
		return &market.StockQuote{
			Symbol: "^GSPC", Name: "S&P 500",
			Price: 4587.84, Change: 36.53, ChangePercent: 0.008,
			Open: 4551.31, High: 4590.24, Low: 4549.85, Close: 4551.31,
			Volume: 3_800_000_000,
		}
	case "^IXIC":
		return &market.StockQuote{
			Symbol: "^IXIC", Name: "NASDAQ Composite",
			Price: 14346.02, Change: 170.33, ChangePercent: 0.012,
			Open: 14175.69, High: 14352.45, Low: 14160.32, Close: 14175.69,
			Volume: 5_200_000_000,
		}
	default:
		return &market.StockQuote{
			Symbol: symbol, Name: "Market Index",
			Price: 1000.00, Change: 5.00, ChangePercent: 0.005,
			Open: 995.00, High: 1002.50, Low: 994.00, Close: 995.00,
			Volume: 1_000_000_000,
		}
	}
}

// StockQuote returns the hardcoded fallback quote for plain stock symbols,
// or nil when no fallback shape exists for the symbol.
func (g *Generator) StockQuote(symbol string) *market.StockQuote {
	if symbol == "AAPL" {
		return &market.StockQuote{
			Symbol: "AAPL", Name: "Apple Inc.",
			Price: 178.72, Change: 2.45, ChangePercent: 0.0139,
			Open: 176.15, High: 179.63, Low: 175.82, Close: 176.27,
			Volume: 52_300_000, MarketCap: 2_810_000_000_000,
		}
	}
	return nil
}

// Search returns keyword-matched fallback results. Unknown keywords yield an
// empty list rather than an error.
func (g *Generator) Search(query string) []market.SearchResult {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "app"):
		return []market.SearchResult{
			{Symbol: "AAPL", Name: "Apple Inc.", Type: "Equity"},
			{Symbol: "APP", Name: "AppLovin Corporation", Type: "Equity"},
		}
	case strings.Contains(q, "goog"):
		return []market.SearchResult{
			{Symbol: "GOOGL", Name: "Alphabet Inc.", Type: "Equity"},
			{Symbol: "GOOG", Name: "Alphabet Inc. Class C", Type: "Equity"},
		}
	default:
		return []market.SearchResult{}
	}
}

package synthetic

import (
	"sort"
	"time"

	"stockdeck-api/pkg/market"
)

// Trading session bounds (exchange local hours) used for intraday shapes.
const (
	marketOpenHour  = 9
	marketCloseHour = 16
)

const (
	intradayLayout = "2006-01-02 15:04:05"
	dailyLayout    = "2006-01-02"
)

// walkParams seed the random walk for a symbol.
type walkParams struct {
	base       float64 // starting price level
	trend      float64 // signed drift per step, as a fraction of base
	volatility float64 // uniform noise amplitude, as a fraction of base
}

// maxWalkVolatility bounds the amplitude derived from index ChangePercent,
// which is already timeframe-scaled and can run well past 1.0.
const maxWalkVolatility = 0.04

// indexWalkDefaults covers index symbols missing from the live index table.
var indexWalkDefaults = map[string]walkParams{
	"^GSPC":  {4587.84, 0.002, 0.005},
	"^IXIC":  {14346.02, 0.003, 0.008},
	"^DJI":   {36124.23, 0.001, 0.004},
	"^FTSE":  {7461.43, -0.001, 0.006},
	"^N225":  {29332.16, 0.002, 0.007},
	"^GDAXI": {15727.67, -0.0005, 0.006},
}

func (g *Generator) walkParamsFor(symbol, timeframe string) walkParams {
	if market.IsIndexSymbol(symbol) {
		if idx, ok := g.findIndex(symbol, timeframe); ok {
			trend := 0.002
			if idx.ChangePercent < 0 {
				trend = -0.002
			}
			vol := idx.ChangePercent * 0.1
			if vol < 0 {
				vol = -vol
			}
			if vol > maxWalkVolatility {
				vol = maxWalkVolatility
			}
			return walkParams{base: idx.Price, trend: trend, volatility: vol + 0.005}
		}
		if p, ok := indexWalkDefaults[symbol]; ok {
			return p
		}
		return walkParams{base: 100, trend: 0.001, volatility: 0.005}
	}
	if symbol == "AAPL" {
		return walkParams{base: 170, trend: 0.001, volatility: 0.005}
	}
	return walkParams{base: 100, trend: 0.001, volatility: 0.005}
}

// History synthesises an OHLCV series for the symbol, oldest first. Point
// count and spacing depend on the timeframe; 1D covers the elapsed portion
// of the trading session in 30-minute steps.
func (g *Generator) History(symbol, timeframe string) []market.HistoryPoint {
	params := g.walkParamsFor(symbol, timeframe)
	now := g.now()

	var (
		points  int
		stampAt func(i int) string
		vol     = params.volatility
		trend   = params.trend
	)

	switch timeframe {
	case market.Timeframe1D:
		points = g.intradayPoints(now)
		day := now
		stampAt = func(i int) string {
			ts := time.Date(day.Year(), day.Month(), day.Day(),
				marketOpenHour+i/2, (i%2)*30, 0, 0, day.Location())
			return ts.Format(intradayLayout)
		}
	case market.Timeframe1W:
		points = 30
		vol *= 2
		trend *= 3
		stampAt = func(i int) string { return now.AddDate(0, 0, -7+i).Format(dailyLayout) }
	case market.Timeframe1M:
		points = 30
		vol *= 3
		trend *= 5
		stampAt = func(i int) string { return now.AddDate(0, 0, -30+i).Format(dailyLayout) }
	case market.Timeframe3M:
		points = 45
		vol *= 4
		trend *= 8
		stampAt = func(i int) string { return now.AddDate(0, 0, -90+i*2).Format(dailyLayout) }
	case market.Timeframe1Y:
		points = 52
		vol *= 5
		trend *= 12
		stampAt = func(i int) string { return now.AddDate(0, 0, -365+i*7).Format(dailyLayout) }
	case market.Timeframe5Y:
		points = 60
		vol *= 7
		trend *= 20
		stampAt = func(i int) string { return now.AddDate(0, -60+i, 0).Format(dailyLayout) }
	default:
		points = 30
		stampAt = func(i int) string { return now.AddDate(0, 0, -30+i).Format(dailyLayout) }
	}

	history := make([]market.HistoryPoint, 0, points)

	// Start below the base so the drift carries the walk up through it.
	price := params.base * (1 - trend*float64(points)/2)
	for i := 0; i < points; i++ {
		noise := (g.uniform() - 0.5) * params.base * vol
		price += noise + params.base*trend
		// The close must stay positive or the High/Low spread inverts.
		if floor := params.base * 0.05; price < floor {
			price = floor
		}

		history = append(history, market.HistoryPoint{
			Timestamp: stampAt(i),
			Close:     round2(price),
			High:      round2(price + price*vol*0.5),
			Low:       round2(price - price*vol*0.5),
			Open:      round2(price - noise),
			Volume:    g.intn(10_000_000) + 30_000_000,
		})
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Timestamp < history[j].Timestamp
	})
	return history
}

// intradayPoints maps the current hour to a 30-minute point count: the full
// session after the close, two pre-market points before the open, at least
// two points otherwise.
func (g *Generator) intradayPoints(now time.Time) int {
	hour := now.Hour()
	if hour < marketOpenHour {
		return 2
	}

	elapsed := hour - marketOpenHour
	if hour >= marketCloseHour {
		elapsed = marketCloseHour - marketOpenHour
	}

	points := elapsed * 2
	if points < 2 {
		points = 2
	}
	return points
}

package market

// Timeframe tags select the historical window and granularity for market data.
const (
	Timeframe1D = "1D"
	Timeframe1W = "1W"
	Timeframe1M = "1M"
	Timeframe3M = "3M"
	Timeframe1Y = "1Y"
	Timeframe5Y = "5Y"
)

// Timeframes lists all supported timeframe tags, shortest first.
var Timeframes = []string{Timeframe1D, Timeframe1W, Timeframe1M, Timeframe3M, Timeframe1Y, Timeframe5Y}

// ValidTimeframe reports whether tf is one of the supported tags.
func ValidTimeframe(tf string) bool {
	for _, t := range Timeframes {
		if t == tf {
			return true
		}
	}
	return false
}

// MarketIndex is a snapshot of a major market index.
type MarketIndex struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Region        string    `json:"region"`
	Sparkline     []float64 `json:"sparkline,omitempty"`
}

// StockQuote is the latest quote for a stock or index symbol.
type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`
	Volume        int64   `json:"volume"`
	MarketCap     float64 `json:"marketCap"`
}

// HistoryPoint is a single OHLCV observation. Timestamp carries time of day
// for intraday (1D) data and a bare date otherwise.
type HistoryPoint struct {
	Timestamp string  `json:"timestamp"`
	Close     float64 `json:"close"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Open      float64 `json:"open"`
	Volume    int64   `json:"volume"`
}

// Signal values attached to technical indicators.
const (
	SignalBuy     = "Buy"
	SignalSell    = "Sell"
	SignalNeutral = "Neutral"
)

// TechnicalIndicator is a named indicator value with an optional signal.
type TechnicalIndicator struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Signal string  `json:"signal,omitempty"`
}

// WeekRange52 is the 52-week low/high band.
type WeekRange52 struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// CompanyInfo describes a company, or an index profile for index symbols.
type CompanyInfo struct {
	Symbol        string      `json:"symbol"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Industry      string      `json:"industry"`
	Sector        string      `json:"sector"`
	CEO           string      `json:"ceo"`
	Employees     int64       `json:"employees"`
	Founded       string      `json:"founded"`
	Headquarters  string      `json:"headquarters"`
	Website       string      `json:"website"`
	PERatio       float64     `json:"peRatio"`
	EPS           float64     `json:"eps"`
	DividendYield float64     `json:"dividendYield"`
	WeekRange52   WeekRange52 `json:"weekRange52"`
	AvgVolume     int64       `json:"avgVolume"`
}

// NewsItem is a single news article reference.
type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url"`
}

// SearchResult is a symbol search match.
type SearchResult struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Region        string  `json:"region,omitempty"`
	Change        float64 `json:"change,omitempty"`
	ChangePercent float64 `json:"changePercent,omitempty"`
}

// IsIndexSymbol reports whether symbol refers to a market index
// (caret-prefixed, e.g. "^GSPC").
func IsIndexSymbol(symbol string) bool {
	return len(symbol) > 0 && symbol[0] == '^'
}

package alphavantage

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"stockdeck-api/pkg/market"
)

// Search performs a SYMBOL_SEARCH keyword lookup.
func (c *Client) Search(ctx context.Context, query string) ([]market.SearchResult, error) {
	params := url.Values{}
	params.Set("function", "SYMBOL_SEARCH")
	params.Set("keywords", query)

	var resp searchResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return nil, err
	}

	results := make([]market.SearchResult, 0, len(resp.BestMatches))
	for _, match := range resp.BestMatches {
		results = append(results, market.SearchResult{
			Symbol: match.Symbol,
			Name:   match.Name,
			Type:   match.Type,
			Region: match.Region,
		})
	}
	return results, nil
}

// Quote fetches the GLOBAL_QUOTE for a symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (*market.StockQuote, error) {
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)

	var resp quoteResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.GlobalQuote.Symbol == "" {
		return nil, fmt.Errorf("%w: global quote for %s", ErrMissingData, symbol)
	}

	q := resp.GlobalQuote
	return &market.StockQuote{
		Symbol:        q.Symbol,
		Name:          "", // the GLOBAL_QUOTE endpoint does not return the name
		Price:         parseFloat(q.Price),
		Change:        parseFloat(q.Change),
		ChangePercent: parsePercent(q.ChangePercent),
		Open:          parseFloat(q.Open),
		High:          parseFloat(q.High),
		Low:           parseFloat(q.Low),
		Close:         parseFloat(q.PreviousClose),
		Volume:        parseInt(q.Volume),
	}, nil
}

// seriesSpec maps a timeframe onto an Alpha Vantage time-series function.
type seriesSpec struct {
	function   string
	interval   string
	outputSize string
	payloadKey string
	window     time.Duration
}

func specFor(timeframe string) seriesSpec {
	const day = 24 * time.Hour
	switch timeframe {
	case market.Timeframe1D:
		return seriesSpec{"TIME_SERIES_INTRADAY", "5min", "compact", "Time Series (5min)", day}
	case market.Timeframe1W:
		return seriesSpec{"TIME_SERIES_DAILY", "", "compact", "Time Series (Daily)", 7 * day}
	case market.Timeframe1M:
		return seriesSpec{"TIME_SERIES_DAILY", "", "full", "Time Series (Daily)", 30 * day}
	case market.Timeframe3M:
		return seriesSpec{"TIME_SERIES_DAILY", "", "full", "Time Series (Daily)", 90 * day}
	case market.Timeframe1Y:
		// Daily resolution: a year of weekly bars is ~52 closes, too few for
		// MA(200) and the other locally derived indicators.
		return seriesSpec{"TIME_SERIES_DAILY", "", "full", "Time Series (Daily)", 365 * day}
	case market.Timeframe5Y:
		return seriesSpec{"TIME_SERIES_WEEKLY", "", "", "Weekly Time Series", 5 * 365 * day}
	default:
		return seriesSpec{"TIME_SERIES_DAILY", "", "compact", "Time Series (Daily)", 7 * day}
	}
}

// History fetches and normalises the time series for a symbol, oldest first,
// trimmed to the timeframe window.
func (c *Client) History(ctx context.Context, symbol, timeframe string) ([]market.HistoryPoint, error) {
	spec := specFor(timeframe)

	params := url.Values{}
	params.Set("function", spec.function)
	params.Set("symbol", symbol)
	if spec.interval != "" {
		params.Set("interval", spec.interval)
	}
	if spec.outputSize != "" {
		params.Set("outputsize", spec.outputSize)
	}

	var resp seriesResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return nil, err
	}

	raw, ok := resp[spec.payloadKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s for %s", ErrMissingData, spec.payloadKey, symbol)
	}
	var series map[string]seriesPoint
	if err := unmarshalSeries(raw, &series); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-spec.window).Format("2006-01-02")
	history := make([]market.HistoryPoint, 0, len(series))
	for timestamp, point := range series {
		if timestamp < cutoff {
			continue
		}
		history = append(history, market.HistoryPoint{
			Timestamp: timestamp,
			Close:     parseFloat(point.Close),
			High:      parseFloat(point.High),
			Low:       parseFloat(point.Low),
			Open:      parseFloat(point.Open),
			Volume:    parseInt(point.Volume),
		})
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Timestamp < history[j].Timestamp
	})
	return history, nil
}

// Indicators fetches SMA(50), SMA(200), RSI(14) and MACD and reduces each to
// its most recent value with a derived signal.
func (c *Client) Indicators(ctx context.Context, symbol string) ([]market.TechnicalIndicator, error) {
	sma50, err := c.sma(ctx, symbol, 50)
	if err != nil {
		return nil, err
	}
	sma200, err := c.sma(ctx, symbol, 200)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("function", "RSI")
	params.Set("symbol", symbol)
	params.Set("interval", "daily")
	params.Set("time_period", "14")
	params.Set("series_type", "close")
	var rsiResp rsiResponse
	if err := c.doRequest(ctx, params, &rsiResp); err != nil {
		return nil, err
	}
	rsiKey := latestKey(rsiResp.Analysis)
	if rsiKey == "" {
		return nil, fmt.Errorf("%w: RSI for %s", ErrMissingData, symbol)
	}
	rsi := parseFloat(rsiResp.Analysis[rsiKey].RSI)

	params = url.Values{}
	params.Set("function", "MACD")
	params.Set("symbol", symbol)
	params.Set("interval", "daily")
	params.Set("series_type", "close")
	params.Set("fastperiod", "12")
	params.Set("slowperiod", "26")
	params.Set("signalperiod", "9")
	var macdResp macdResponse
	if err := c.doRequest(ctx, params, &macdResp); err != nil {
		return nil, err
	}
	macdKey := latestKey(macdResp.Analysis)
	if macdKey == "" {
		return nil, fmt.Errorf("%w: MACD for %s", ErrMissingData, symbol)
	}
	macd := parseFloat(macdResp.Analysis[macdKey].MACD)
	macdSignalLine := parseFloat(macdResp.Analysis[macdKey].MACDSignal)

	macdSignal := market.SignalSell
	if macd > macdSignalLine {
		macdSignal = market.SignalBuy
	}
	rsiSignal := market.SignalNeutral
	if rsi < 30 {
		rsiSignal = market.SignalBuy
	} else if rsi > 70 {
		rsiSignal = market.SignalSell
	}

	return []market.TechnicalIndicator{
		{Name: "Moving Average (50)", Value: sma50, Signal: market.SignalBuy},
		{Name: "Moving Average (200)", Value: sma200, Signal: market.SignalBuy},
		{Name: "RSI (14)", Value: rsi, Signal: rsiSignal},
		{Name: "MACD", Value: macd, Signal: macdSignal},
	}, nil
}

func (c *Client) sma(ctx context.Context, symbol string, period int) (float64, error) {
	params := url.Values{}
	params.Set("function", "SMA")
	params.Set("symbol", symbol)
	params.Set("interval", "daily")
	params.Set("time_period", fmt.Sprintf("%d", period))
	params.Set("series_type", "close")

	var resp smaResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return 0, err
	}
	key := latestKey(resp.Analysis)
	if key == "" {
		return 0, fmt.Errorf("%w: SMA(%d) for %s", ErrMissingData, period, symbol)
	}
	return parseFloat(resp.Analysis[key].SMA), nil
}

// Company fetches the OVERVIEW fundamentals for a symbol.
func (c *Client) Company(ctx context.Context, symbol string) (*market.CompanyInfo, error) {
	params := url.Values{}
	params.Set("function", "OVERVIEW")
	params.Set("symbol", symbol)

	var resp overviewResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.Symbol == "" {
		return nil, fmt.Errorf("%w: overview for %s", ErrMissingData, symbol)
	}

	ceo := resp.CEO
	if ceo == "" {
		ceo = "N/A"
	}
	founded := resp.IPODate
	if founded == "" {
		founded = "N/A"
	}

	return &market.CompanyInfo{
		Symbol:        resp.Symbol,
		Name:          resp.Name,
		Description:   resp.Description,
		Industry:      resp.Industry,
		Sector:        resp.Sector,
		CEO:           ceo,
		Employees:     parseInt(resp.FullTimeEmployees),
		Founded:       founded,
		Headquarters:  headquarters(resp.Address, resp.City, resp.State),
		Website:       resp.Website,
		PERatio:       parseFloat(resp.PERatio),
		EPS:           parseFloat(resp.EPS),
		DividendYield: parseFloat(resp.DividendYield) * 100,
		WeekRange52: market.WeekRange52{
			Low:  parseFloat(resp.WeekLow52),
			High: parseFloat(resp.WeekHigh52),
		},
		AvgVolume: parseInt(resp.AverageTradingVolume),
	}, nil
}

// News fetches the NEWS_SENTIMENT feed, optionally scoped to a ticker. An
// empty feed counts as missing data so callers fall back.
func (c *Client) News(ctx context.Context, symbol string) ([]market.NewsItem, error) {
	params := url.Values{}
	params.Set("function", "NEWS_SENTIMENT")
	if symbol != "" {
		params.Set("tickers", symbol)
	}

	var resp newsResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Feed) == 0 {
		return nil, fmt.Errorf("%w: news feed", ErrMissingData)
	}

	items := make([]market.NewsItem, 0, len(resp.Feed))
	for i, article := range resp.Feed {
		id := article.ID
		if id == "" {
			id = fmt.Sprintf("%d", i+1)
		}
		items = append(items, market.NewsItem{
			ID:          id,
			Title:       article.Title,
			Summary:     article.Summary,
			Source:      article.Source,
			PublishedAt: article.TimePublished,
			URL:         article.URL,
		})
	}
	return items, nil
}

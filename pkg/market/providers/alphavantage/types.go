package alphavantage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Wire shapes for the Alpha Vantage JSON API. Numeric values arrive as
// strings and are parsed leniently: a malformed field yields zero rather
// than failing the whole payload, matching how the upstream behaves around
// missing fundamentals.

type searchResponse struct {
	BestMatches []searchMatch `json:"bestMatches"`
}

type searchMatch struct {
	Symbol string `json:"1. symbol"`
	Name   string `json:"2. name"`
	Type   string `json:"3. type"`
	Region string `json:"4. region"`
}

type quoteResponse struct {
	GlobalQuote globalQuote `json:"Global Quote"`
}

type globalQuote struct {
	Symbol        string `json:"01. symbol"`
	Open          string `json:"02. open"`
	High          string `json:"03. high"`
	Low           string `json:"04. low"`
	Price         string `json:"05. price"`
	Volume        string `json:"06. volume"`
	PreviousClose string `json:"08. previous close"`
	Change        string `json:"09. change"`
	ChangePercent string `json:"10. change percent"`
}

// seriesResponse defers time-series extraction because the payload key names
// the interval, e.g. "Time Series (Daily)" or "Weekly Time Series".
type seriesResponse map[string]json.RawMessage

type seriesPoint struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

type smaResponse struct {
	Analysis map[string]struct {
		SMA string `json:"SMA"`
	} `json:"Technical Analysis: SMA"`
}

type rsiResponse struct {
	Analysis map[string]struct {
		RSI string `json:"RSI"`
	} `json:"Technical Analysis: RSI"`
}

type macdResponse struct {
	Analysis map[string]struct {
		MACD       string `json:"MACD"`
		MACDSignal string `json:"MACD_Signal"`
	} `json:"Technical Analysis: MACD"`
}

type overviewResponse struct {
	Symbol               string `json:"Symbol"`
	Name                 string `json:"Name"`
	Description          string `json:"Description"`
	Industry             string `json:"Industry"`
	Sector               string `json:"Sector"`
	CEO                  string `json:"CEO"`
	FullTimeEmployees    string `json:"FullTimeEmployees"`
	IPODate              string `json:"IPODate"`
	Address              string `json:"Address"`
	City                 string `json:"City"`
	State                string `json:"State"`
	Website              string `json:"Website"`
	PERatio              string `json:"PERatio"`
	EPS                  string `json:"EPS"`
	DividendYield        string `json:"DividendYield"`
	WeekLow52            string `json:"52WeekLow"`
	WeekHigh52           string `json:"52WeekHigh"`
	AverageTradingVolume string `json:"AverageTradingVolume"`
}

type newsResponse struct {
	Feed []newsArticle `json:"feed"`
}

type newsArticle struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	Source        string `json:"source"`
	TimePublished string `json:"time_published"`
	URL           string `json:"url"`
}

func unmarshalSeries(raw json.RawMessage, out *map[string]seriesPoint) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("alphavantage: decode time series: %w", err)
	}
	return nil
}

func headquarters(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, ", ")
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parsePercent converts "1.39%" into 0.0139.
func parsePercent(s string) float64 {
	return parseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%")) / 100
}

// latestKey returns the most recent timestamp key of an analysis map.
// Timestamps are ISO-ordered, so the lexicographic maximum is the latest.
func latestKey[T any](m map[string]T) string {
	latest := ""
	for k := range m {
		if k > latest {
			latest = k
		}
	}
	return latest
}

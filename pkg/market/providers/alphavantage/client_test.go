package alphavantage

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockdeck-api/pkg/market"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(
		WithBaseURL(server.URL),
		WithAPIKey("test"),
		WithMaxRetries(0),
	)
	return client, server
}

func TestClientSearch(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "SYMBOL_SEARCH", r.URL.Query().Get("function"))
		require.Equal(t, "apple", r.URL.Query().Get("keywords"))
		require.Equal(t, "test", r.URL.Query().Get("apikey"))
		fmt.Fprint(w, `{"bestMatches":[
			{"1. symbol":"AAPL","2. name":"Apple Inc.","3. type":"Equity","4. region":"United States"},
			{"1. symbol":"APLE","2. name":"Apple Hospitality REIT","3. type":"Equity","4. region":"United States"}
		]}`)
	})
	defer server.Close()

	results, err := client.Search(context.Background(), "apple")
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "AAPL", results[0].Symbol)
	require.Equal(t, "Apple Inc.", results[0].Name)
	require.Equal(t, "United States", results[0].Region)
}

func TestClientQuote(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Global Quote":{
			"01. symbol":"AAPL","02. open":"176.15","03. high":"179.63","04. low":"175.82",
			"05. price":"178.72","06. volume":"52300000","08. previous close":"176.27",
			"09. change":"2.45","10. change percent":"1.39%"
		}}`)
	})
	defer server.Close()

	quote, err := client.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, "AAPL", quote.Symbol)
	require.Equal(t, 178.72, quote.Price)
	require.Equal(t, 2.45, quote.Change)
	require.InDelta(t, 0.0139, quote.ChangePercent, 1e-9)
	require.Equal(t, int64(52_300_000), quote.Volume)
	require.Equal(t, 176.27, quote.Close)
}

func TestClientQuoteMissingData(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Global Quote":{}}`)
	})
	defer server.Close()

	_, err := client.Quote(context.Background(), "NOPE")
	require.ErrorIs(t, err, ErrMissingData)
}

func TestClientHistoryDaily(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	stale := time.Now().AddDate(0, 0, -30).Format("2006-01-02")

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "TIME_SERIES_DAILY", r.URL.Query().Get("function"))
		fmt.Fprintf(w, `{"Time Series (Daily)":{
			"%s":{"1. open":"101","2. high":"103","3. low":"100","4. close":"102","5. volume":"1000"},
			"%s":{"1. open":"100","2. high":"102","3. low":"99","4. close":"101","5. volume":"900"},
			"%s":{"1. open":"90","2. high":"91","3. low":"89","4. close":"90","5. volume":"800"}
		}}`, today, yesterday, stale)
	})
	defer server.Close()

	history, err := client.History(context.Background(), "AAPL", market.Timeframe1W)
	require.NoError(t, err)
	require.Len(t, history, 2, "points outside the window are trimmed")
	require.Equal(t, yesterday, history[0].Timestamp)
	require.Equal(t, today, history[1].Timestamp)
	require.Equal(t, 102.0, history[1].Close)
}

func TestClientHistoryYearIsDailyFull(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "TIME_SERIES_DAILY", r.URL.Query().Get("function"))
		require.Equal(t, "full", r.URL.Query().Get("outputsize"))
		fmt.Fprintf(w, `{"Time Series (Daily)":{
			"%s":{"1. open":"100","2. high":"102","3. low":"99","4. close":"101","5. volume":"900"}
		}}`, yesterday)
	})
	defer server.Close()

	history, err := client.History(context.Background(), "AAPL", market.Timeframe1Y)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, yesterday, history[0].Timestamp)
}

func TestClientHistoryMissingSeries(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Note":"rate limited"}`)
	})
	defer server.Close()

	_, err := client.History(context.Background(), "AAPL", market.Timeframe1M)
	require.ErrorIs(t, err, ErrMissingData)
}

func TestClientIndicators(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("function") {
		case "SMA":
			fmt.Fprintf(w, `{"Technical Analysis: SMA":{"2024-05-14":{"SMA":"%s"}}}`,
				map[string]string{"50": "173.42", "200": "158.76"}[r.URL.Query().Get("time_period")])
		case "RSI":
			fmt.Fprint(w, `{"Technical Analysis: RSI":{"2024-05-14":{"RSI":"72.10"}}}`)
		case "MACD":
			fmt.Fprint(w, `{"Technical Analysis: MACD":{"2024-05-14":{"MACD":"1.28","MACD_Signal":"0.90"}}}`)
		default:
			http.Error(w, "unexpected function", http.StatusBadRequest)
		}
	})
	defer server.Close()

	indicators, err := client.Indicators(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, indicators, 4)
	require.Equal(t, 173.42, indicators[0].Value)
	require.Equal(t, 158.76, indicators[1].Value)
	require.Equal(t, market.SignalSell, indicators[2].Signal, "RSI above 70 signals Sell")
	require.Equal(t, market.SignalBuy, indicators[3].Signal, "MACD above its signal line")
}

func TestClientCompany(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Symbol":"AAPL","Name":"Apple Inc.","Description":"desc",
			"Industry":"Consumer Electronics","Sector":"Technology",
			"FullTimeEmployees":"154000","IPODate":"1980-12-12",
			"Address":"One Apple Park Way","City":"Cupertino","State":"CA",
			"Website":"https://www.apple.com","PERatio":"29.47","EPS":"6.06",
			"DividendYield":"0.0053","52WeekLow":"124.17","52WeekHigh":"198.23",
			"AverageTradingVolume":"58670000"}`)
	})
	defer server.Close()

	info, err := client.Company(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, "Apple Inc.", info.Name)
	require.Equal(t, "N/A", info.CEO, "missing CEO maps to N/A")
	require.Equal(t, int64(154_000), info.Employees)
	require.Equal(t, "One Apple Park Way, Cupertino, CA", info.Headquarters)
	require.InDelta(t, 0.53, info.DividendYield, 1e-9)
	require.Equal(t, 124.17, info.WeekRange52.Low)
}

func TestClientNewsEmptyFeedFails(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"feed":[]}`)
	})
	defer server.Close()

	_, err := client.News(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingData)
}

func TestClientNews(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "AAPL", r.URL.Query().Get("tickers"))
		fmt.Fprint(w, `{"feed":[
			{"title":"t1","summary":"s1","source":"src","time_published":"20240515T120000","url":"https://example.com/1"},
			{"id":"abc","title":"t2","summary":"s2","source":"src","time_published":"20240515T110000","url":"https://example.com/2"}
		]}`)
	})
	defer server.Close()

	items, err := client.News(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "1", items[0].ID, "missing upstream ids are backfilled")
	require.Equal(t, "abc", items[1].ID)
}

func TestClientRetriesOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"bestMatches":[]}`)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithMaxRetries(3))
	results, err := client.Search(context.Background(), "x")
	require.NoError(t, err)
	require.Empty(t, results)
	require.Equal(t, 3, attempts)
}

func TestClientSurfacesStatusAfterRetryBudget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithMaxRetries(1))
	_, err := client.Search(context.Background(), "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "http status 500")
}

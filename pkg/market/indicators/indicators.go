// Package indicators computes standard technical analysis series from
// closing prices. It backs the derived-indicator path used when the
// upstream indicator endpoints are unavailable but price history is not.
package indicators

import (
	"errors"
	"math"

	"stockdeck-api/pkg/market"
)

// ErrInsufficientData is returned when a series is too short for the
// requested calculation window.
var ErrInsufficientData = errors.New("indicators: insufficient data")

// SMA produces the simple moving average for the supplied prices. Entries
// before the first full window are NaN.
func SMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) == 0 {
		return []float64{}
	}
	result := make([]float64, len(prices))
	for i := range result {
		result[i] = math.NaN()
	}
	if len(prices) < period {
		return result
	}

	var sum float64
	for i, price := range prices {
		sum += price
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			result[i] = sum / float64(period)
		}
	}
	return result
}

// EMA produces the exponential moving average for the supplied prices.
func EMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) == 0 {
		return []float64{}
	}
	result := make([]float64, len(prices))
	for i := range result {
		result[i] = math.NaN()
	}
	if len(prices) < period {
		return result
	}
	multiplier := 2.0 / float64(period+1)

	start := -1
	var seed float64
	for i := period - 1; i < len(prices); i++ {
		windowValid := true
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			if math.IsNaN(prices[j]) {
				windowValid = false
				break
			}
			sum += prices[j]
		}
		if windowValid {
			start = i
			seed = sum / float64(period)
			break
		}
	}
	if start == -1 {
		return result
	}
	result[start] = seed

	for i := start + 1; i < len(prices); i++ {
		if math.IsNaN(prices[i]) {
			result[i] = result[i-1]
			continue
		}
		prev := result[i-1]
		if math.IsNaN(prev) {
			prev = seed
		}
		result[i] = (prices[i]-prev)*multiplier + prev
	}
	return result
}

// MACD returns MACD, signal, and histogram series.
func MACD(prices []float64) ([]float64, []float64, []float64) {
	if len(prices) == 0 {
		return []float64{}, []float64{}, []float64{}
	}
	ema12 := EMA(prices, 12)
	ema26 := EMA(prices, 26)

	macd := make([]float64, len(prices))
	for i := range prices {
		if math.IsNaN(ema12[i]) || math.IsNaN(ema26[i]) {
			macd[i] = math.NaN()
		} else {
			macd[i] = ema12[i] - ema26[i]
		}
	}

	signal := EMA(macd, 9)
	hist := make([]float64, len(prices))
	for i := range hist {
		if math.IsNaN(macd[i]) || math.IsNaN(signal[i]) {
			hist[i] = math.NaN()
		} else {
			hist[i] = macd[i] - signal[i]
		}
	}
	return macd, signal, hist
}

// RSI computes the Relative Strength Index across the supplied prices.
func RSI(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) == 0 {
		return []float64{}
	}
	rsi := make([]float64, len(prices))
	for i := range rsi {
		rsi[i] = math.NaN()
	}
	if len(prices) <= period {
		return rsi
	}

	var gainSum, lossSum float64
	for i := 1; i <= period; i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gainSum += change
		} else {
			lossSum -= change
		}
	}

	avgGain := gainSum / float64(period)
	avgLoss := lossSum / float64(period)

	rsi[period] = computeRSI(avgGain, avgLoss)

	for i := period + 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		gain := math.Max(change, 0)
		loss := math.Max(-change, 0)

		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)

		rsi[i] = computeRSI(avgGain, avgLoss)
	}
	return rsi
}

// DeriveSet computes the dashboard's four-indicator set (MA50, MA200,
// RSI-14, MACD) from a chronological daily close series. The caller needs
// at least 200 closes, enough for the long moving average.
func DeriveSet(closes []float64) ([]market.TechnicalIndicator, error) {
	if len(closes) < 200 {
		return nil, ErrInsufficientData
	}

	price := closes[len(closes)-1]
	ma50 := last(SMA(closes, 50))
	ma200 := last(SMA(closes, 200))
	rsi := last(RSI(closes, 14))
	macdSeries, signalSeries, _ := MACD(closes)
	macd := last(macdSeries)
	macdSignalLine := last(signalSeries)

	if math.IsNaN(ma50) || math.IsNaN(ma200) || math.IsNaN(rsi) || math.IsNaN(macd) || math.IsNaN(macdSignalLine) {
		return nil, ErrInsufficientData
	}

	return []market.TechnicalIndicator{
		{Name: "Moving Average (50)", Value: ma50, Signal: maSignal(price, ma50)},
		{Name: "Moving Average (200)", Value: ma200, Signal: maSignal(price, ma200)},
		{Name: "RSI (14)", Value: rsi, Signal: rsiSignal(rsi)},
		{Name: "MACD", Value: macd, Signal: macdSignal(macd, macdSignalLine)},
	}, nil
}

func last(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return series[len(series)-1]
}

func maSignal(price, ma float64) string {
	switch {
	case price > ma:
		return market.SignalBuy
	case price < ma:
		return market.SignalSell
	default:
		return market.SignalNeutral
	}
}

func rsiSignal(rsi float64) string {
	switch {
	case rsi < 30:
		return market.SignalBuy
	case rsi > 70:
		return market.SignalSell
	default:
		return market.SignalNeutral
	}
}

func macdSignal(macd, signalLine float64) string {
	switch {
	case macd > signalLine:
		return market.SignalBuy
	case macd < signalLine:
		return market.SignalSell
	default:
		return market.SignalNeutral
	}
}

func computeRSI(avgGain, avgLoss float64) float64 {
	switch {
	case avgLoss == 0 && avgGain == 0:
		return 50.0
	case avgLoss == 0:
		return 100.0
	case avgGain == 0:
		return 0.0
	default:
		rs := avgGain / avgLoss
		return 100.0 - (100.0 / (1.0 + rs))
	}
}

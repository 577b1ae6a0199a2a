package synthetic

import (
	"stockdeck-api/pkg/market"
)

// Indicators returns the standard four-indicator fallback set. Index symbols
// derive values from the index base price and trend; plain symbols get a
// fixed constant set.
func (g *Generator) Indicators(symbol string) []market.TechnicalIndicator {
	if !market.IsIndexSymbol(symbol) {
		return []market.TechnicalIndicator{
			{Name: "Moving Average (50)", Value: 173.42, Signal: market.SignalBuy},
			{Name: "Moving Average (200)", Value: 158.76, Signal: market.SignalBuy},
			{Name: "RSI (14)", Value: 59.2, Signal: market.SignalNeutral},
			{Name: "MACD", Value: 1.28, Signal: market.SignalBuy},
		}
	}

	params, ok := indexWalkDefaults[symbol]
	if !ok {
		params = walkParams{base: 100, trend: 0.001}
	}
	base, trend := params.base, params.trend

	ma50 := base * 0.97
	ma200 := base * 0.92

	var rsi, macd float64
	if trend > 0 {
		rsi = 60 + g.uniform()*10
		macd = 2.5 + g.uniform()*1.5
	} else {
		rsi = 40 - g.uniform()*10
		macd = -1.5 - g.uniform()*1.5
	}

	return []market.TechnicalIndicator{
		{Name: "Moving Average (50)", Value: round2(ma50), Signal: maSignal(base, ma50)},
		{Name: "Moving Average (200)", Value: round2(ma200), Signal: maSignal(base, ma200)},
		{Name: "RSI (14)", Value: round2(rsi), Signal: rsiSignal(rsi)},
		{Name: "MACD", Value: round2(macd), Signal: macdSignal(macd)},
	}
}

func maSignal(price, ma float64) string {
	if price > ma {
		return market.SignalBuy
	}
	return market.SignalSell
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

func macdSignal(macd float64) string {
	if macd > 0 {
		return market.SignalBuy
	}
	return market.SignalSell
}

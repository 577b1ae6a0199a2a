package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"stockdeck-api/pkg/market"
)

func TestSMA(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	result := SMA(data, 3)
	require.Len(t, result, len(data))
	require.True(t, math.IsNaN(result[0]))
	require.True(t, math.IsNaN(result[1]))
	require.InDelta(t, 2.0, result[2], 1e-9)
	require.InDelta(t, 3.0, result[3], 1e-9)
	require.InDelta(t, 4.0, result[4], 1e-9)
	require.InDelta(t, 5.0, result[5], 1e-9)
}

func TestEMA(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	result := EMA(data, 3)
	require.Len(t, result, len(data))
	require.True(t, math.IsNaN(result[0]))
	require.True(t, math.IsNaN(result[1]))
	require.InDelta(t, 2.0, result[2], 1e-9)
	require.InDelta(t, 3.0, result[3], 1e-9)
	require.InDelta(t, 4.0, result[4], 1e-9)
	require.InDelta(t, 5.0, result[5], 1e-9)
}

func TestMACD(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 105, 107, 106, 108, 110, 111, 112, 115, 117, 119, 118, 120, 121, 123, 125, 124, 126, 127, 129, 130, 132, 133, 134, 135, 136, 138, 139, 141, 140, 142, 144, 143, 145, 147, 149, 148, 150, 151, 149, 148, 150, 152, 151, 153, 154, 156, 155, 157, 158, 160, 161, 159, 158, 157, 159, 160}
	macd, signal, hist := MACD(closes)
	require.Len(t, macd, len(closes))
	require.Len(t, signal, len(closes))
	require.Len(t, hist, len(closes))

	last := len(closes) - 1
	require.InDelta(t, 5.582947, macd[last], 1e-6)
	require.InDelta(t, 6.307087, signal[last], 1e-6)
	require.InDelta(t, -0.724141, hist[last], 1e-6)
}

func TestRSI(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 105, 107, 106, 108, 110, 111, 112, 115, 117, 119, 118, 120, 121, 123, 125, 124, 126, 127, 129, 130, 132, 133, 134, 135, 136, 138, 139, 141, 140, 142, 144, 143, 145, 147, 149, 148, 150, 151, 149, 148, 150, 152, 151, 153, 154, 156, 155, 157, 158, 160, 161, 159, 158, 157, 159, 160}
	rsi := RSI(closes, 14)
	require.Len(t, rsi, len(closes))
	require.InDelta(t, 73.084185, rsi[len(rsi)-1], 1e-6)
}

func TestDeriveSetTooShort(t *testing.T) {
	closes := make([]float64, 199)
	for i := range closes {
		closes[i] = 100
	}
	_, err := DeriveSet(closes)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestDeriveSetRisingSeries(t *testing.T) {
	closes := make([]float64, 250)
	for i := range closes {
		closes[i] = 100 + float64(i)*0.5
	}

	set, err := DeriveSet(closes)
	require.NoError(t, err)
	require.Len(t, set, 4)

	price := closes[len(closes)-1]
	require.Equal(t, "Moving Average (50)", set[0].Name)
	require.Less(t, set[0].Value, price, "a steadily rising series keeps price above its MAs")
	require.Equal(t, market.SignalBuy, set[0].Signal)

	require.Equal(t, "Moving Average (200)", set[1].Name)
	require.Less(t, set[1].Value, set[0].Value, "the long MA lags the short MA on an uptrend")
	require.Equal(t, market.SignalBuy, set[1].Signal)

	require.Equal(t, "RSI (14)", set[2].Name)
	require.InDelta(t, 100.0, set[2].Value, 1e-6, "monotonic gains saturate RSI")
	require.Equal(t, market.SignalSell, set[2].Signal)

	require.Equal(t, "MACD", set[3].Name)
	require.Greater(t, set[3].Value, 0.0)
}

func TestDeriveSetSignalRules(t *testing.T) {
	require.Equal(t, market.SignalBuy, maSignal(110, 100))
	require.Equal(t, market.SignalSell, maSignal(90, 100))
	require.Equal(t, market.SignalNeutral, maSignal(100, 100))

	require.Equal(t, market.SignalBuy, rsiSignal(25))
	require.Equal(t, market.SignalSell, rsiSignal(75))
	require.Equal(t, market.SignalNeutral, rsiSignal(50))

	require.Equal(t, market.SignalBuy, macdSignal(1.2, 0.8))
	require.Equal(t, market.SignalSell, macdSignal(0.4, 0.8))
}

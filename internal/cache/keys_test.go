package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockdeck-api/internal/config"
)

func TestKeyHelpers(t *testing.T) {
	require.Equal(t, "stockdeck:indices:1D", IndicesKey("1D"))
	require.Equal(t, "stockdeck:quote:AAPL", QuoteKey("AAPL"))
	require.Equal(t, "stockdeck:history:^GSPC:1M", HistoryKey("^GSPC", "1M"))
	require.Equal(t, "stockdeck:indicators:AAPL", IndicatorsKey("AAPL"))
	require.Equal(t, "stockdeck:company:AAPL", CompanyKey("AAPL"))
	require.Equal(t, "stockdeck:news:AAPL", NewsKey("AAPL"))
	require.Equal(t, "stockdeck:news:general", NewsKey(""))
	require.Equal(t, "stockdeck:search:apple", SearchKey("  Apple "))
}

func TestNewTTLSetDefaults(t *testing.T) {
	ttls := NewTTLSet(config.CacheTTL{})
	require.Equal(t, 10*time.Second, ttls.Short)
	require.Equal(t, time.Minute, ttls.Medium)
	require.Equal(t, 5*time.Minute, ttls.Long)

	ttls = NewTTLSet(config.CacheTTL{Short: 5, Medium: 30, Long: 600})
	require.Equal(t, 5*time.Second, ttls.Duration(TTLShort))
	require.Equal(t, 30*time.Second, ttls.Duration(TTLMedium))
	require.Equal(t, 10*time.Minute, ttls.Duration(TTLLong))
	require.Equal(t, time.Duration(0), ttls.Duration(TTLClass("bogus")))
}

func TestNilPayloadCacheIsNoop(t *testing.T) {
	var c *PayloadCache
	var out string
	require.False(t, c.Get(nil, "stockdeck:quote:AAPL", &out))
	c.Set(nil, "stockdeck:quote:AAPL", "x", time.Minute)
	require.Nil(t, NewPayloadCache(nil))
}

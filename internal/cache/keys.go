package cache

import (
	"strings"
	"time"

	"stockdeck-api/internal/config"
)

// Namespace is the Redis key prefix for the StockDeck application.
const Namespace = "stockdeck"

// TTLClass represents a config-driven TTL bucket.
type TTLClass string

const (
	TTLShort  TTLClass = "short"
	TTLMedium TTLClass = "medium"
	TTLLong   TTLClass = "long"
)

// TTLSet normalises cache TTLs from config into time.Duration values.
type TTLSet struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// NewTTLSet converts config TTLs (in seconds) into durations.
func NewTTLSet(cfg config.CacheTTL) TTLSet {
	return TTLSet{
		Short:  durationOrDefault(cfg.Short, 10*time.Second),
		Medium: durationOrDefault(cfg.Medium, time.Minute),
		Long:   durationOrDefault(cfg.Long, 5*time.Minute),
	}
}

func durationOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds < 0 {
		return 0
	}
	if seconds == 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

// Duration returns the configured duration for the given TTL class.
func (t TTLSet) Duration(class TTLClass) time.Duration {
	switch class {
	case TTLShort:
		return t.Short
	case TTLMedium:
		return t.Medium
	case TTLLong:
		return t.Long
	default:
		return 0
	}
}

func formatKey(parts ...string) string {
	values := make([]string, 0, len(parts)+1)
	values = append(values, Namespace)
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		values = append(values, clean)
	}
	return strings.Join(values, ":")
}

// --- Market Data Keys -------------------------------------------------------

// IndicesKey holds the major index payload per timeframe.
func IndicesKey(timeframe string) string {
	return formatKey("indices", timeframe)
}

func QuoteKey(symbol string) string {
	return formatKey("quote", symbol)
}

func HistoryKey(symbol, timeframe string) string {
	return formatKey("history", symbol, timeframe)
}

func IndicatorsKey(symbol string) string {
	return formatKey("indicators", symbol)
}

func CompanyKey(symbol string) string {
	return formatKey("company", symbol)
}

// NewsKey with an empty symbol holds the general market feed.
func NewsKey(symbol string) string {
	if strings.TrimSpace(symbol) == "" {
		return formatKey("news", "general")
	}
	return formatKey("news", symbol)
}

func SearchKey(query string) string {
	return formatKey("search", strings.ToLower(strings.TrimSpace(query)))
}

package synthetic

import (
	"time"

	"stockdeck-api/pkg/market"
)

// News returns a fixed fallback headline set: three symbol-scoped items, or
// those three plus two market-wide items when no symbol is given. Timestamps
// are relative to the generator clock.
func (g *Generator) News(symbol string) []market.NewsItem {
	now := g.now().UTC()
	stamp := func(ago time.Duration) string {
		return now.Add(-ago).Format(time.RFC3339)
	}

	items := []market.NewsItem{
		{
			ID:          "1",
			Title:       "Apple Announces New M3 MacBook Pro with Improved Performance",
			Summary:     "Apple's new M3 chip promises up to 40% faster performance than the previous generation...",
			Source:      "Bloomberg",
			PublishedAt: stamp(2 * time.Hour),
			URL:         "#",
		},
		{
			ID:          "2",
			Title:       "Analysts Raise Apple Price Target After Strong Quarterly Results",
			Summary:     "Several Wall Street analysts have raised their price targets for Apple following better-than-expected earnings...",
			Source:      "MarketWatch",
			PublishedAt: stamp(5 * time.Hour),
			URL:         "#",
		},
		{
			ID:          "3",
			Title:       "Apple's App Store Faces New Regulatory Challenges in EU",
			Summary:     "European regulators announce new requirements that could affect Apple's App Store policies...",
			Source:      "Financial Times",
			PublishedAt: stamp(24 * time.Hour),
			URL:         "#",
		},
	}

	if symbol != "" {
		return items
	}

	return append(items,
		market.NewsItem{
			ID:          "4",
			Title:       "S&P 500 Hits New Record High as Tech Stocks Rally",
			Summary:     "The S&P 500 reached a new all-time high today as technology stocks led a broad market rally...",
			Source:      "CNBC",
			PublishedAt: stamp(time.Hour),
			URL:         "#",
		},
		market.NewsItem{
			ID:          "5",
			Title:       "Federal Reserve Signals Potential Rate Cut in Coming Months",
			Summary:     "Federal Reserve officials indicated they may be prepared to cut interest rates later this year...",
			Source:      "Wall Street Journal",
			PublishedAt: stamp(3 * time.Hour),
			URL:         "#",
		},
	)
}

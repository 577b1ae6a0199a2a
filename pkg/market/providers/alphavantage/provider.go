package alphavantage

import (
	"context"
	"net/http"
	"time"

	"stockdeck-api/pkg/market"
)

const defaultProviderTimeout = 8 * time.Second

// Provider adapts the Alpha Vantage client to the generic market.Provider
// contract. Market indices have no upstream endpoint and always report
// market.ErrUnsupported.
type Provider struct {
	client  *Client
	timeout time.Duration
}

type providerConfig struct {
	timeout       time.Duration
	clientOptions []Option
}

// ProviderOption customises the Alpha Vantage provider.
type ProviderOption func(*providerConfig)

// WithTimeout overrides the default per-call timeout.
func WithTimeout(timeout time.Duration) ProviderOption {
	return func(cfg *providerConfig) {
		if timeout > 0 {
			cfg.timeout = timeout
		}
	}
}

// WithClientOptions passes options to the underlying client.
func WithClientOptions(options ...Option) ProviderOption {
	return func(cfg *providerConfig) {
		cfg.clientOptions = append(cfg.clientOptions, options...)
	}
}

// NewProvider constructs an Alpha Vantage market provider.
func NewProvider(opts ...ProviderOption) *Provider {
	cfg := &providerConfig{timeout: defaultProviderTimeout}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Provider{
		client:  NewClient(cfg.clientOptions...),
		timeout: cfg.timeout,
	}
}

func init() {
	market.RegisterProvider("alphavantage", func(name string, cfg *market.ProviderConfig) (market.Provider, error) {
		opts := []ProviderOption{}
		clientOptions := []Option{}
		if cfg.BaseURL != "" {
			clientOptions = append(clientOptions, WithBaseURL(cfg.BaseURL))
		}
		if cfg.APIKey != "" {
			clientOptions = append(clientOptions, WithAPIKey(cfg.APIKey))
		}
		if cfg.HTTPTimeout > 0 {
			clientOptions = append(clientOptions, WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
		}
		if cfg.MaxRetries > 0 {
			clientOptions = append(clientOptions, WithMaxRetries(cfg.MaxRetries))
		}
		if len(clientOptions) > 0 {
			opts = append(opts, WithClientOptions(clientOptions...))
		}
		return NewProvider(opts...), nil
	})
}

func (p *Provider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.timeout)
}

// Indices implements market.Provider. Alpha Vantage has no index snapshot
// endpoint on the free tier.
func (p *Provider) Indices(ctx context.Context, timeframe string) ([]market.MarketIndex, error) {
	return nil, market.ErrUnsupported
}

// Search implements market.Provider.
func (p *Provider) Search(ctx context.Context, query string) ([]market.SearchResult, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()
	return p.client.Search(ctx, query)
}

// Quote implements market.Provider.
func (p *Provider) Quote(ctx context.Context, symbol string) (*market.StockQuote, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()
	return p.client.Quote(ctx, symbol)
}

// History implements market.Provider.
func (p *Provider) History(ctx context.Context, symbol, timeframe string) ([]market.HistoryPoint, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()
	return p.client.History(ctx, symbol, timeframe)
}

// Indicators implements market.Provider.
func (p *Provider) Indicators(ctx context.Context, symbol string) ([]market.TechnicalIndicator, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()
	return p.client.Indicators(ctx, symbol)
}

// Company implements market.Provider.
func (p *Provider) Company(ctx context.Context, symbol string) (*market.CompanyInfo, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()
	return p.client.Company(ctx, symbol)
}

// News implements market.Provider.
func (p *Provider) News(ctx context.Context, symbol string) ([]market.NewsItem, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()
	return p.client.News(ctx, symbol)
}

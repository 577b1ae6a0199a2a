package stocks

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockdeck-api/internal/cache"
	"stockdeck-api/internal/config"
	"stockdeck-api/internal/gateway"
	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
	"stockdeck-api/pkg/market/synthetic"
)

func newTestSvcCtx() *svc.ServiceContext {
	gen := synthetic.New(
		synthetic.WithRand(rand.New(rand.NewSource(42))),
		synthetic.WithClock(func() time.Time {
			return time.Date(2024, 5, 15, 13, 0, 0, 0, time.UTC)
		}),
	)
	return &svc.ServiceContext{
		Config:  config.Config{DefaultUserId: 1},
		Gateway: gateway.New(nil, gen, nil, cache.TTLSet{}),
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	svcCtx := newTestSvcCtx()

	for _, q := range []string{"", "   "} {
		_, err := NewSearchLogic(context.Background(), svcCtx).Search(&types.StockSearchReq{Query: q})
		var apiErr *xerr.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.Status)
		require.Contains(t, apiErr.Fields, "q")
	}
}

func TestSearchAppFindsApple(t *testing.T) {
	svcCtx := newTestSvcCtx()

	results, err := NewSearchLogic(context.Background(), svcCtx).Search(&types.StockSearchReq{Query: "app"})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	require.Equal(t, "AAPL", results[0].Symbol)
}

func TestHistoryRejectsBadTimeframe(t *testing.T) {
	svcCtx := newTestSvcCtx()

	_, err := NewHistoryLogic(context.Background(), svcCtx).History(&types.StockHistoryReq{Symbol: "AAPL", Timeframe: "2W"})
	var apiErr *xerr.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)

	points, err := NewHistoryLogic(context.Background(), svcCtx).History(&types.StockHistoryReq{Symbol: "AAPL", Timeframe: "1W"})
	require.NoError(t, err)
	require.Len(t, points, 30)
}

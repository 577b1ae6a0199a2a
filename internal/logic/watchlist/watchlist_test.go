package watchlist

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"stockdeck-api/internal/config"
	"stockdeck-api/internal/storage"
	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/types"
	"stockdeck-api/internal/xerr"
)

func newTestSvcCtx() *svc.ServiceContext {
	return &svc.ServiceContext{
		Config: config.Config{DefaultUserId: 1},
		Store:  storage.NewMemoryStore(storage.WithRand(rand.New(rand.NewSource(42)))),
	}
}

func TestCreateWatchlistValidation(t *testing.T) {
	svcCtx := newTestSvcCtx()
	ctx := context.Background()

	_, err := NewCreateWatchlistLogic(ctx, svcCtx).CreateWatchlist(&types.CreateWatchlistReq{Name: "  "})
	var apiErr *xerr.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)
	require.Equal(t, "Invalid watchlist data", apiErr.Message)
	require.Contains(t, apiErr.Fields, "name")
}

func TestCreateWatchlistDefaultsUser(t *testing.T) {
	svcCtx := newTestSvcCtx()
	ctx := context.Background()

	wl, err := NewCreateWatchlistLogic(ctx, svcCtx).CreateWatchlist(&types.CreateWatchlistReq{Name: "Tech"})
	require.NoError(t, err)
	require.Equal(t, int64(1), wl.UserId)
	require.NotNil(t, wl.Symbols)
	require.Empty(t, wl.Symbols)
}

func TestGetWatchlistNotFound(t *testing.T) {
	svcCtx := newTestSvcCtx()
	ctx := context.Background()

	_, err := NewGetWatchlistLogic(ctx, svcCtx).GetWatchlist(&types.WatchlistIdReq{Id: 42})
	var apiErr *xerr.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)
	require.Equal(t, "Watchlist not found", apiErr.Message)
}

func TestAddAndRemoveSymbolFlow(t *testing.T) {
	svcCtx := newTestSvcCtx()
	ctx := context.Background()

	wl, err := NewCreateWatchlistLogic(ctx, svcCtx).CreateWatchlist(&types.CreateWatchlistReq{Name: "Tech"})
	require.NoError(t, err)

	addLogic := NewAddSymbolLogic(ctx, svcCtx)
	_, err = addLogic.AddSymbol(&types.AddSymbolReq{Id: wl.Id, Symbol: ""})
	var apiErr *xerr.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Invalid symbol data", apiErr.Message)

	sym, err := addLogic.AddSymbol(&types.AddSymbolReq{Id: wl.Id, Symbol: "aapl", CompanyName: "Apple Inc."})
	require.NoError(t, err)
	require.Equal(t, "AAPL", sym.Symbol)

	again, err := addLogic.AddSymbol(&types.AddSymbolReq{Id: wl.Id, Symbol: "AAPL"})
	require.NoError(t, err)
	require.Equal(t, sym.Id, again.Id, "re-adding is idempotent")

	err = NewRemoveSymbolLogic(ctx, svcCtx).RemoveSymbol(&types.RemoveSymbolReq{WatchlistId: wl.Id, SymbolId: sym.Id})
	require.NoError(t, err)

	got, err := NewGetWatchlistLogic(ctx, svcCtx).GetWatchlist(&types.WatchlistIdReq{Id: wl.Id})
	require.NoError(t, err)
	require.Empty(t, got.Symbols)
}

func TestDeleteWatchlistRemovesFromListing(t *testing.T) {
	svcCtx := newTestSvcCtx()
	ctx := context.Background()

	first, err := NewCreateWatchlistLogic(ctx, svcCtx).CreateWatchlist(&types.CreateWatchlistReq{Name: "First"})
	require.NoError(t, err)
	_, err = NewCreateWatchlistLogic(ctx, svcCtx).CreateWatchlist(&types.CreateWatchlistReq{Name: "Second"})
	require.NoError(t, err)

	require.NoError(t, NewDeleteWatchlistLogic(ctx, svcCtx).DeleteWatchlist(&types.WatchlistIdReq{Id: first.Id}))

	lists, err := NewListWatchlistsLogic(ctx, svcCtx).ListWatchlists()
	require.NoError(t, err)
	require.Len(t, lists, 1)
	require.Equal(t, "Second", lists[0].Name)
}

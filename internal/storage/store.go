package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("storage: not found")

// User is an account identity. One demo user (id 1) is seeded at startup.
type User struct {
	ID       int64
	Username string
	Email    string
	FullName string
}

// Watchlist is a user-named collection of tracked symbols. Deleting a
// watchlist cascades to its symbols.
type Watchlist struct {
	ID      int64
	Name    string
	UserID  int64
	Symbols []WatchlistSymbol
}

// WatchlistSymbol is one tracked ticker inside a watchlist. Price and
// ChangePercent are seeded once at insertion and never refreshed.
type WatchlistSymbol struct {
	ID            int64
	WatchlistID   int64
	Symbol        string
	CompanyName   string
	Price         float64
	ChangePercent float64
}

// UserPreference holds per-user UI settings. At most one row per user.
type UserPreference struct {
	ID               int64
	UserID           int64
	DefaultTimeframe string
	FavoriteSymbols  []string
	Theme            string
}

// Preference defaults applied when a record is created lazily.
const (
	DefaultTheme     = "dark"
	DefaultTimeframe = "1D"
)

// PreferencePatch is a partial preference update. Nil fields are left
// untouched (shallow merge).
type PreferencePatch struct {
	DefaultTimeframe *string
	FavoriteSymbols  []string
	Theme            *string
}

// Store is the authoritative repository for users, watchlists, symbols and
// preferences. Implementations assign identifiers from per-entity
// monotonically increasing counters and never reuse them.
type Store interface {
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, user User) (*User, error)

	ListWatchlists(ctx context.Context, userID int64) ([]Watchlist, error)
	GetWatchlist(ctx context.Context, id int64) (*Watchlist, error)
	CreateWatchlist(ctx context.Context, name string, userID int64) (*Watchlist, error)
	DeleteWatchlist(ctx context.Context, id int64) error

	// AddSymbol is idempotent on (watchlistID, symbol): re-adding an
	// existing symbol returns the stored entry unchanged.
	AddSymbol(ctx context.Context, watchlistID int64, symbol, companyName string) (*WatchlistSymbol, error)
	RemoveSymbol(ctx context.Context, watchlistID, symbolID int64) error

	GetPreferences(ctx context.Context, userID int64) (*UserPreference, error)
	UpdatePreferences(ctx context.Context, userID int64, patch PreferencePatch) (*UserPreference, error)
}

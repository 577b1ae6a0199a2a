package storage

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore is the volatile reference Store: plain maps guarded by a
// mutex, per-entity counters starting at 1, and no durability across
// restarts. The demo user (id 1) is seeded on construction.
type MemoryStore struct {
	mu  sync.RWMutex
	rng *rand.Rand

	users       map[int64]*User
	watchlists  map[int64]*Watchlist
	symbols     map[int64]*WatchlistSymbol
	preferences map[int64]*UserPreference

	userID       int64
	watchlistID  int64
	symbolID     int64
	preferenceID int64
}

var _ Store = (*MemoryStore)(nil)

// MemoryOption customises a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithRand injects the random source used to seed symbol placeholder prices.
func WithRand(rng *rand.Rand) MemoryOption {
	return func(s *MemoryStore) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewMemoryStore constructs an empty store with the demo user seeded.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		users:       make(map[int64]*User),
		watchlists:  make(map[int64]*Watchlist),
		symbols:     make(map[int64]*WatchlistSymbol),
		preferences: make(map[int64]*UserPreference),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.userID++
	s.users[s.userID] = &User{
		ID:       s.userID,
		Username: "demo",
		Email:    "demo@example.com",
		FullName: "Demo User",
	}
	return s
}

func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, user User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID++
	user.ID = s.userID
	s.users[user.ID] = &user
	cp := user
	return &cp, nil
}

func (s *MemoryStore) ListWatchlists(ctx context.Context, userID int64) ([]Watchlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lists := make([]Watchlist, 0)
	for _, wl := range s.watchlists {
		if wl.UserID != userID {
			continue
		}
		cp := *wl
		cp.Symbols = s.symbolsForLocked(wl.ID)
		lists = append(lists, cp)
	}
	sort.Slice(lists, func(i, j int) bool { return lists[i].ID < lists[j].ID })
	return lists, nil
}

func (s *MemoryStore) GetWatchlist(ctx context.Context, id int64) (*Watchlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wl, ok := s.watchlists[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *wl
	cp.Symbols = s.symbolsForLocked(id)
	return &cp, nil
}

func (s *MemoryStore) CreateWatchlist(ctx context.Context, name string, userID int64) (*Watchlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchlistID++
	wl := &Watchlist{ID: s.watchlistID, Name: name, UserID: userID}
	s.watchlists[wl.ID] = wl
	cp := *wl
	cp.Symbols = []WatchlistSymbol{}
	return &cp, nil
}

func (s *MemoryStore) DeleteWatchlist(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.watchlists[id]; !ok {
		return ErrNotFound
	}
	delete(s.watchlists, id)
	for symbolID, sym := range s.symbols {
		if sym.WatchlistID == id {
			delete(s.symbols, symbolID)
		}
	}
	return nil
}

func (s *MemoryStore) AddSymbol(ctx context.Context, watchlistID int64, symbol, companyName string) (*WatchlistSymbol, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.watchlists[watchlistID]; !ok {
		return nil, ErrNotFound
	}

	ticker := strings.ToUpper(strings.TrimSpace(symbol))
	for _, existing := range s.symbols {
		if existing.WatchlistID == watchlistID && existing.Symbol == ticker {
			cp := *existing
			return &cp, nil
		}
	}

	s.symbolID++
	entry := &WatchlistSymbol{
		ID:          s.symbolID,
		WatchlistID: watchlistID,
		Symbol:      ticker,
		CompanyName: companyName,
		// Placeholder market data, frozen at insertion time.
		Price:         s.rng.Float64()*500 + 50,
		ChangePercent: s.rng.Float64()*0.1 - 0.05,
	}
	s.symbols[entry.ID] = entry
	cp := *entry
	return &cp, nil
}

func (s *MemoryStore) RemoveSymbol(ctx context.Context, watchlistID, symbolID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sym, ok := s.symbols[symbolID]
	if !ok || sym.WatchlistID != watchlistID {
		return ErrNotFound
	}
	delete(s.symbols, symbolID)
	return nil
}

func (s *MemoryStore) GetPreferences(ctx context.Context, userID int64) (*UserPreference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, prefs := range s.preferences {
		if prefs.UserID == userID {
			cp := *prefs
			cp.FavoriteSymbols = append([]string(nil), prefs.FavoriteSymbols...)
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdatePreferences(ctx context.Context, userID int64, patch PreferencePatch) (*UserPreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prefs *UserPreference
	for _, existing := range s.preferences {
		if existing.UserID == userID {
			prefs = existing
			break
		}
	}
	if prefs == nil {
		s.preferenceID++
		prefs = &UserPreference{
			ID:               s.preferenceID,
			UserID:           userID,
			Theme:            DefaultTheme,
			DefaultTimeframe: DefaultTimeframe,
		}
		s.preferences[prefs.ID] = prefs
	}

	if patch.DefaultTimeframe != nil {
		prefs.DefaultTimeframe = *patch.DefaultTimeframe
	}
	if patch.FavoriteSymbols != nil {
		prefs.FavoriteSymbols = append([]string(nil), patch.FavoriteSymbols...)
	}
	if patch.Theme != nil {
		prefs.Theme = *patch.Theme
	}

	cp := *prefs
	cp.FavoriteSymbols = append([]string(nil), prefs.FavoriteSymbols...)
	return &cp, nil
}

// symbolsForLocked collects a watchlist's symbols; callers hold the lock.
func (s *MemoryStore) symbolsForLocked(watchlistID int64) []WatchlistSymbol {
	symbols := make([]WatchlistSymbol, 0)
	for _, sym := range s.symbols {
		if sym.WatchlistID == watchlistID {
			symbols = append(symbols, *sym)
		}
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i].ID < symbols[j].ID })
	return symbols
}

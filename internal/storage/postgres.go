package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// PostgresStore is the durable Store over Postgres. Schema mirrors the
// memory store's entities; identifiers come from serial columns.
type PostgresStore struct {
	conn sqlx.SqlConn
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore wraps an open connection. The caller owns the pool.
func NewPostgresStore(conn sqlx.SqlConn) *PostgresStore {
	return &PostgresStore{conn: conn}
}

type userRow struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Email    string `db:"email"`
	FullName string `db:"full_name"`
}

type watchlistRow struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	UserID int64  `db:"user_id"`
}

type symbolRow struct {
	ID            int64   `db:"id"`
	WatchlistID   int64   `db:"watchlist_id"`
	Symbol        string  `db:"symbol"`
	CompanyName   string  `db:"company_name"`
	Price         float64 `db:"price"`
	ChangePercent float64 `db:"change_percent"`
}

type preferenceRow struct {
	ID               int64  `db:"id"`
	UserID           int64  `db:"user_id"`
	DefaultTimeframe string `db:"default_timeframe"`
	FavoriteSymbols  string `db:"favorite_symbols"`
	Theme            string `db:"theme"`
}

func mapQueryErr(err error) error {
	if errors.Is(err, sqlx.ErrNotFound) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*User, error) {
	const q = `SELECT id, username, email, full_name FROM users WHERE id = $1`
	var row userRow
	if err := s.conn.QueryRowCtx(ctx, &row, q, id); err != nil {
		return nil, mapQueryErr(err)
	}
	return &User{ID: row.ID, Username: row.Username, Email: row.Email, FullName: row.FullName}, nil
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	const q = `SELECT id, username, email, full_name FROM users WHERE username = $1`
	var row userRow
	if err := s.conn.QueryRowCtx(ctx, &row, q, username); err != nil {
		return nil, mapQueryErr(err)
	}
	return &User{ID: row.ID, Username: row.Username, Email: row.Email, FullName: row.FullName}, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, user User) (*User, error) {
	const q = `INSERT INTO users (username, email, full_name) VALUES ($1, $2, $3) RETURNING id`
	var id int64
	if err := s.conn.QueryRowCtx(ctx, &id, q, user.Username, user.Email, user.FullName); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return &user, nil
}

func (s *PostgresStore) ListWatchlists(ctx context.Context, userID int64) ([]Watchlist, error) {
	const q = `SELECT id, name, user_id FROM watchlists WHERE user_id = $1 ORDER BY id`
	var rows []watchlistRow
	if err := s.conn.QueryRowsCtx(ctx, &rows, q, userID); err != nil {
		return nil, err
	}
	lists := make([]Watchlist, 0, len(rows))
	for _, row := range rows {
		symbols, err := s.listSymbols(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		lists = append(lists, Watchlist{ID: row.ID, Name: row.Name, UserID: row.UserID, Symbols: symbols})
	}
	return lists, nil
}

func (s *PostgresStore) GetWatchlist(ctx context.Context, id int64) (*Watchlist, error) {
	const q = `SELECT id, name, user_id FROM watchlists WHERE id = $1`
	var row watchlistRow
	if err := s.conn.QueryRowCtx(ctx, &row, q, id); err != nil {
		return nil, mapQueryErr(err)
	}
	symbols, err := s.listSymbols(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return &Watchlist{ID: row.ID, Name: row.Name, UserID: row.UserID, Symbols: symbols}, nil
}

func (s *PostgresStore) CreateWatchlist(ctx context.Context, name string, userID int64) (*Watchlist, error) {
	const q = `INSERT INTO watchlists (name, user_id) VALUES ($1, $2) RETURNING id`
	var id int64
	if err := s.conn.QueryRowCtx(ctx, &id, q, name, userID); err != nil {
		return nil, fmt.Errorf("insert watchlist: %w", err)
	}
	return &Watchlist{ID: id, Name: name, UserID: userID, Symbols: []WatchlistSymbol{}}, nil
}

func (s *PostgresStore) DeleteWatchlist(ctx context.Context, id int64) error {
	return s.conn.TransactCtx(ctx, func(ctx context.Context, session sqlx.Session) error {
		if _, err := session.ExecCtx(ctx, `DELETE FROM watchlist_symbols WHERE watchlist_id = $1`, id); err != nil {
			return err
		}
		res, err := session.ExecCtx(ctx, `DELETE FROM watchlists WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *PostgresStore) AddSymbol(ctx context.Context, watchlistID int64, symbol, companyName string) (*WatchlistSymbol, error) {
	if _, err := s.GetWatchlist(ctx, watchlistID); err != nil {
		return nil, err
	}

	ticker := strings.ToUpper(strings.TrimSpace(symbol))

	const existing = `SELECT id, watchlist_id, symbol, company_name, price, change_percent
FROM watchlist_symbols WHERE watchlist_id = $1 AND symbol = $2`
	var row symbolRow
	err := s.conn.QueryRowCtx(ctx, &row, existing, watchlistID, ticker)
	if err == nil {
		return symbolFromRow(row), nil
	}
	if mapped := mapQueryErr(err); !errors.Is(mapped, ErrNotFound) {
		return nil, mapped
	}

	const insert = `INSERT INTO watchlist_symbols (watchlist_id, symbol, company_name, price, change_percent)
VALUES ($1, $2, $3, random() * 500 + 50, random() * 0.1 - 0.05)
RETURNING id, watchlist_id, symbol, company_name, price, change_percent`
	if err := s.conn.QueryRowCtx(ctx, &row, insert, watchlistID, ticker, companyName); err != nil {
		return nil, fmt.Errorf("insert symbol: %w", err)
	}
	return symbolFromRow(row), nil
}

func (s *PostgresStore) RemoveSymbol(ctx context.Context, watchlistID, symbolID int64) error {
	const q = `DELETE FROM watchlist_symbols WHERE id = $1 AND watchlist_id = $2`
	res, err := s.conn.ExecCtx(ctx, q, symbolID, watchlistID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) GetPreferences(ctx context.Context, userID int64) (*UserPreference, error) {
	const q = `SELECT id, user_id, default_timeframe, favorite_symbols, theme
FROM user_preferences WHERE user_id = $1`
	var row preferenceRow
	if err := s.conn.QueryRowCtx(ctx, &row, q, userID); err != nil {
		return nil, mapQueryErr(err)
	}
	return preferenceFromRow(row)
}

func (s *PostgresStore) UpdatePreferences(ctx context.Context, userID int64, patch PreferencePatch) (*UserPreference, error) {
	prefs, err := s.GetPreferences(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		prefs, err = s.insertDefaultPreferences(ctx, userID)
	}
	if err != nil {
		return nil, err
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

	favorites, err := json.Marshal(prefs.FavoriteSymbols)
	if err != nil {
		return nil, err
	}
	const q = `UPDATE user_preferences SET default_timeframe = $1, favorite_symbols = $2, theme = $3 WHERE id = $4`
	if _, err := s.conn.ExecCtx(ctx, q, prefs.DefaultTimeframe, string(favorites), prefs.Theme, prefs.ID); err != nil {
		return nil, fmt.Errorf("update preferences: %w", err)
	}
	return prefs, nil
}

func (s *PostgresStore) insertDefaultPreferences(ctx context.Context, userID int64) (*UserPreference, error) {
	const q = `INSERT INTO user_preferences (user_id, default_timeframe, favorite_symbols, theme)
VALUES ($1, $2, '[]', $3) RETURNING id`
	var id int64
	if err := s.conn.QueryRowCtx(ctx, &id, q, userID, DefaultTimeframe, DefaultTheme); err != nil {
		return nil, fmt.Errorf("insert preferences: %w", err)
	}
	return &UserPreference{
		ID:               id,
		UserID:           userID,
		DefaultTimeframe: DefaultTimeframe,
		Theme:            DefaultTheme,
	}, nil
}

func (s *PostgresStore) listSymbols(ctx context.Context, watchlistID int64) ([]WatchlistSymbol, error) {
	const q = `SELECT id, watchlist_id, symbol, company_name, price, change_percent
FROM watchlist_symbols WHERE watchlist_id = $1 ORDER BY id`
	var rows []symbolRow
	if err := s.conn.QueryRowsCtx(ctx, &rows, q, watchlistID); err != nil {
		return nil, err
	}
	symbols := make([]WatchlistSymbol, 0, len(rows))
	for _, row := range rows {
		symbols = append(symbols, *symbolFromRow(row))
	}
	return symbols, nil
}

func symbolFromRow(row symbolRow) *WatchlistSymbol {
	return &WatchlistSymbol{
		ID:            row.ID,
		WatchlistID:   row.WatchlistID,
		Symbol:        row.Symbol,
		CompanyName:   row.CompanyName,
		Price:         row.Price,
		ChangePercent: row.ChangePercent,
	}
}

func preferenceFromRow(row preferenceRow) (*UserPreference, error) {
	prefs := &UserPreference{
		ID:               row.ID,
		UserID:           row.UserID,
		DefaultTimeframe: row.DefaultTimeframe,
		Theme:            row.Theme,
	}
	if row.FavoriteSymbols != "" {
		if err := json.Unmarshal([]byte(row.FavoriteSymbols), &prefs.FavoriteSymbols); err != nil {
			return nil, fmt.Errorf("decode favorite symbols: %w", err)
		}
	}
	return prefs, nil
}

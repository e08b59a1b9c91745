package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	_ "github.com/mattn/go-sqlite3"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// SQLiteStore persists profiles in a single-file SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// users table exists. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS users (
        user_id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        phone TEXT,
        preferences TEXT NOT NULL,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
        updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, userID string) (Profile, bool, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, false, ErrMissingUserID
	}

	var (
		name     string
		phone    sql.NullString
		prefsRaw string
	)
	row := s.db.QueryRowContext(ctx,
		`SELECT name, phone, preferences FROM users WHERE user_id = ?`, userID)
	if err := row.Scan(&name, &phone, &prefsRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, false, nil
		}
		return Profile{}, false, fmt.Errorf("query profile: %w", err)
	}

	p := Profile{Name: name}
	if phone.Valid {
		p.Phone = &phone.String
	}
	if err := jsonCodec.UnmarshalFromString(prefsRaw, &p.Preferences); err != nil {
		return Profile{}, false, fmt.Errorf("decode preferences for user_id=%s: %w", userID, err)
	}
	return p, true, nil
}

func (s *SQLiteStore) Save(ctx context.Context, userID string, p Profile) error {
	if strings.TrimSpace(userID) == "" {
		return ErrMissingUserID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingName
	}

	prefs, err := jsonCodec.MarshalToString(p.Preferences)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	var phone any
	if p.Phone != nil {
		phone = *p.Phone
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO users (user_id, name, phone, preferences, updated_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(user_id) DO UPDATE SET
            name = excluded.name,
            phone = excluded.phone,
            preferences = excluded.preferences,
            updated_at = excluded.updated_at`,
		userID, p.Name, phone, prefs, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

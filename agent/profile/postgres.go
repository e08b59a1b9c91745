package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type PostgresConfig struct {
	DSN     string        `split_words:"true" required:"true"`
	Timeout time.Duration `split_words:"true" default:"10s"`
}

// PostgresStore persists profiles in Postgres via bun.
type PostgresStore struct {
	db *bun.DB
}

type userRow struct {
	bun.BaseModel `bun:"table:users"`

	UserID      string    `bun:"user_id,pk"`
	Name        string    `bun:"name,notnull"`
	Phone       *string   `bun:"phone"`
	Preferences string    `bun:"preferences,notnull"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(timeout),
	))
	return &PostgresStore{db: bun.NewDB(sqldb, pgdialect.New())}, nil
}

// Init creates the users table when it does not exist yet.
func (s *PostgresStore) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*userRow)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) Get(ctx context.Context, userID string) (Profile, bool, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, false, ErrMissingUserID
	}

	var row userRow
	err := s.db.NewSelect().
		Model(&row).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, false, nil
		}
		return Profile{}, false, fmt.Errorf("query profile: %w", err)
	}

	p := Profile{Name: row.Name, Phone: row.Phone}
	if err := jsonCodec.UnmarshalFromString(row.Preferences, &p.Preferences); err != nil {
		return Profile{}, false, fmt.Errorf("decode preferences for user_id=%s: %w", userID, err)
	}
	return p, true, nil
}

func (s *PostgresStore) Save(ctx context.Context, userID string, p Profile) error {
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

	row := userRow{
		UserID:      userID,
		Name:        p.Name,
		Phone:       p.Phone,
		Preferences: prefs,
		UpdatedAt:   time.Now().UTC(),
	}
	_, err = s.db.NewInsert().
		Model(&row).
		On("CONFLICT (user_id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("phone = EXCLUDED.phone").
		Set("preferences = EXCLUDED.preferences").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

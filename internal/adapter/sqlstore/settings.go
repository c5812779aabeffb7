// Package sqlstore persists settings in a SQL database (SQLite or PostgreSQL)
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/ports/secondary"
	querybuilder "gitlab.com/toeic-drill.net/internal/utils"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	settingsTable = "settings"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

var _ secondary.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository implements the SettingsRepository interface with sqlx
type SettingsRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// OpenSQLite opens or creates the SQLite settings database at path
func OpenSQLite(ctx context.Context, path string, logger primary.Logger) (*SettingsRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sqlx.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// SQLite does not support multiple writers
	db.SetMaxOpenConns(1)
	return newRepository(ctx, db, logger)
}

// OpenPostgres connects to PostgreSQL using url
func OpenPostgres(ctx context.Context, url string, logger primary.Logger) (*SettingsRepository, error) {
	db, err := sqlx.Open(DriverPostgres, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return newRepository(ctx, db, logger)
}

func newRepository(ctx context.Context, db *sqlx.DB, logger primary.Logger) (*SettingsRepository, error) {
	repo := &SettingsRepository{
		db:     db,
		logger: logger,
	}
	if err := repo.EnsureTableExists(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// EnsureTableExists creates the settings table when missing
func (r *SettingsRepository) EnsureTableExists(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS settings (
			name VARCHAR(100) PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		r.logger.Error("Failed to create settings table", "error", err)
		return fmt.Errorf("failed to create settings table: %w", err)
	}
	return nil
}

// Get returns the stored value for key, nil when the key is unset
func (r *SettingsRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := querybuilder.NewQueryBuilder("").
		Select("value").
		From(settingsTable).
		Where("name = ?", key).
		Build()
	if err != nil {
		return nil, err
	}

	var value string
	if err := r.db.GetContext(ctx, &value, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get setting", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return []byte(value), nil
}

// Set stores value under key, replacing any previous value
func (r *SettingsRepository) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	query, args, err := querybuilder.NewQueryBuilder("").
		Insert("name", "value", "updated_at").
		Into(settingsTable).
		Values(key, string(value), now).
		OnConflict("name").
		SetExclude("value", "updated_at").
		Build()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to save setting", "key", key, "error", err)
		return fmt.Errorf("failed to save setting: %w", err)
	}

	r.logger.Debug("Saved setting", "key", key)
	return nil
}

func (r *SettingsRepository) Close() error {
	return r.db.Close()
}

package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/pressly/goose/v3"
)

// versionTable is where goose records applied migrations.
const versionTable = "goose_db_version"

// ErrSchemaTooNew means the database was written by a newer release.
var ErrSchemaTooNew = errors.New("database schema is newer than this binary")

// Strategy brings a database schema to the latest embedded version.
type Strategy interface {
	Apply(ctx context.Context, db *sql.DB) error
}

// Source is a migration set together with the SQL dialect it is written in.
type Source struct {
	Dialect goose.Dialect
	FS      fs.FS
}

// DestructiveUpgrade creates the schema on an empty database and, whenever
// the recorded version is older than the newest migration, drops every table
// and recreates the schema from scratch. All rows are lost on such an upgrade.
type DestructiveUpgrade struct {
	Source Source
	Tables []string
	Logger logging.Logger
}

func (s *DestructiveUpgrade) Apply(ctx context.Context, db *sql.DB) error {
	p, err := goose.NewProvider(s.Source.Dialect, db, s.Source.FS)
	if err != nil {
		return fmt.Errorf("migration provider: %w", err)
	}

	current, err := dbVersion(ctx, db, s.Source.Dialect, p)
	if err != nil {
		return err
	}
	latest := latestVersion(p)

	switch {
	case current > latest:
		return fmt.Errorf("%w: database at version %d, latest known %d", ErrSchemaTooNew, current, latest)
	case current != 0 && current < latest:
		logger(s.Logger).Warn(ctx, "schema version changed, dropping all tables",
			"from", current, "to", latest)
		if err := dropTables(ctx, db, append(append([]string{}, s.Tables...), versionTable)); err != nil {
			return err
		}
		// the provider is rebuilt so that it sees the empty database
		if p, err = goose.NewProvider(s.Source.Dialect, db, s.Source.FS); err != nil {
			return fmt.Errorf("migration provider: %w", err)
		}
	}

	if _, err := p.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// IncrementalUpgrade applies pending migrations in order and keeps the data.
type IncrementalUpgrade struct {
	Source Source
	Logger logging.Logger
}

func (s *IncrementalUpgrade) Apply(ctx context.Context, db *sql.DB) error {
	p, err := goose.NewProvider(s.Source.Dialect, db, s.Source.FS)
	if err != nil {
		return fmt.Errorf("migration provider: %w", err)
	}

	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, r := range results {
		logger(s.Logger).Info(ctx, "migration applied", "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// NewStrategy returns the strategy registered under name
// ("destructive" or "incremental").
func NewStrategy(name string, src Source, log logging.Logger) (Strategy, error) {
	switch name {
	case "", "destructive":
		return &DestructiveUpgrade{Source: src, Tables: Tables, Logger: log}, nil
	case "incremental":
		return &IncrementalUpgrade{Source: src, Logger: log}, nil
	}
	return nil, fmt.Errorf("unknown migration strategy %q", name)
}

func latestVersion(p *goose.Provider) int64 {
	var latest int64
	for _, src := range p.ListSources() {
		if src.Version > latest {
			latest = src.Version
		}
	}
	return latest
}

// dbVersion returns 0 for a database that has never been migrated.
func dbVersion(ctx context.Context, db *sql.DB, dialect goose.Dialect, p *goose.Provider) (int64, error) {
	exists, err := tableExists(ctx, db, dialect, versionTable)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}
	v, err := p.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

func tableExists(ctx context.Context, db *sql.DB, dialect goose.Dialect, name string) (bool, error) {
	var query string
	switch dialect {
	case goose.DialectSQLite3:
		query = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`
	case goose.DialectPostgres:
		query = `SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1`
	default:
		return false, fmt.Errorf("unsupported dialect %q", dialect)
	}

	var n int
	if err := db.QueryRowContext(ctx, query, name).Scan(&n); err != nil {
		return false, fmt.Errorf("lookup table %s: %w", name, err)
	}
	return n > 0, nil
}

func dropTables(ctx context.Context, db *sql.DB, tables []string) error {
	for _, t := range tables {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+t); err != nil {
			return fmt.Errorf("drop table %s: %w", t, err)
		}
	}
	return nil
}

func logger(l logging.Logger) logging.Logger {
	if l == nil {
		return logging.Discard()
	}
	return l
}

// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/stockkeeper/internal/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// NewSQLiteDB returns an in-memory SQLite database with the full schema
// applied. It is closed when the test ends.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	s := &migrations.IncrementalUpgrade{
		Source: migrations.Source{Dialect: goose.DialectSQLite3, FS: migrations.SQLite()},
	}
	require.NoError(t, s.Apply(context.Background(), db))

	return db
}

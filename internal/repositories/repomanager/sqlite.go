package repomanager

import (
	"github.com/dmitrijs2005/stockkeeper/internal/dbx"
	"github.com/dmitrijs2005/stockkeeper/internal/migrations"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/inventory"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/settings"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/users"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) DriverName() string {
	return "sqlite"
}

func (m *SQLiteRepositoryManager) Migrations() migrations.Source {
	return migrations.Source{Dialect: goose.DialectSQLite3, FS: migrations.SQLite()}
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Inventory(db dbx.DBTX) inventory.Repository {
	return inventory.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewSQLiteRepository(db)
}

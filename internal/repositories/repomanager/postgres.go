package repomanager

import (
	"github.com/dmitrijs2005/stockkeeper/internal/dbx"
	"github.com/dmitrijs2005/stockkeeper/internal/migrations"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/inventory"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/settings"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) DriverName() string {
	return "pgx"
}

func (m *PostgresRepositoryManager) Migrations() migrations.Source {
	return migrations.Source{Dialect: goose.DialectPostgres, FS: migrations.Postgres()}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Inventory returns an inventory.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Inventory(db dbx.DBTX) inventory.Repository {
	return inventory.NewPostgresRepository(db)
}

// Settings returns a settings.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewPostgresRepository(db)
}

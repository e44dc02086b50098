// Package repomanager vends backend-specific repository implementations
// together with the migration set for that backend.
package repomanager

import (
	"fmt"

	"github.com/dmitrijs2005/stockkeeper/internal/dbx"
	"github.com/dmitrijs2005/stockkeeper/internal/migrations"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/inventory"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/settings"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/users"
)

type RepositoryManager interface {
	// DriverName is the database/sql driver used to open the backend.
	DriverName() string
	Migrations() migrations.Source
	Users(db dbx.DBTX) users.Repository
	Inventory(db dbx.DBTX) inventory.Repository
	Settings(db dbx.DBTX) settings.Repository
}

// New returns the manager for the named backend ("sqlite" or "postgres").
func New(backend string) (RepositoryManager, error) {
	switch backend {
	case "", "sqlite":
		return &SQLiteRepositoryManager{}, nil
	case "postgres":
		return &PostgresRepositoryManager{}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", backend)
}

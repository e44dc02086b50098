// Package migrations embeds the schema of both database backends and the
// strategies used to bring an existing database up to date.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

//go:embed postgres/*.sql
var postgresMigrations embed.FS

// Tables lists every application table, in drop order.
var Tables = []string{"settings", "inventory", "users"}

// SQLite returns the SQLite migration set rooted at the migration files.
func SQLite() fs.FS {
	return mustSub(sqliteMigrations, "sqlite")
}

// Postgres returns the Postgres migration set rooted at the migration files.
func Postgres() fs.FS {
	return mustSub(postgresMigrations, "postgres")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

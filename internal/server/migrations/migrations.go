// Package migrations embeds the goose SQL migrations, one directory per
// dialect.
package migrations

import "embed"

// Directory names inside Migrations.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

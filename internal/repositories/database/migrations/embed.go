// Package migrations embeds the PostgreSQL schema migrations.
package migrations

import "embed"

// Dir is the directory inside FS holding the migration files.
const Dir = "sql"

// FS embeds all PostgreSQL migration files.
//
//go:embed sql/*.sql
var FS embed.FS

// Package migrations embeds the client-side SQLite schema migrations.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

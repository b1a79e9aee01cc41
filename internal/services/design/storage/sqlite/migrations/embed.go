package migrations

import "embed"

// FS contains embedded SQLite migrations for design storage.
//
//go:embed *.sql
var FS embed.FS

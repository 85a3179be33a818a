package migrations

import "embed"

// FS holds the SQL migration files applied at server startup.
//
//go:embed *.sql
var FS embed.FS

package migrations

import "embed"

// FS holds the migration SQL files, applied in lexical order.
//
//go:embed *.sql
var FS embed.FS

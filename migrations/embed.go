// Package migrations embeds the catalogue schema migrations so binaries can
// apply them without shipping loose SQL files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

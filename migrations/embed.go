// Package migrations embeds the goose SQL migrations so the server, the
// operator CLI and the integration tests apply the same schema.
package migrations

import "embed"

// FS holds the *.sql migration files at its root.
//
//go:embed *.sql
var FS embed.FS

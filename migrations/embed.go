// Package migrations embeds the goose SQL migrations so the server, the
// operator CLI and the test helpers apply the same schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

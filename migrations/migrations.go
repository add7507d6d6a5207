// Package migrations embeds the SQL migrations so the binaries do not depend on the working directory.
package migrations

import "embed"

// Postgres holds the golang-migrate files under postgres/.
//
//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"

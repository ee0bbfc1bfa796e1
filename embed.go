// Package stays holds assets embedded at the repository root, such as the
// database migrations shipped with the binary.
package stays

import "embed"

// Migrations contains the goose SQL migrations for the relational backend.
//
//go:embed migrations/*.sql
var Migrations embed.FS

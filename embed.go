// Package bonddata holds embedded assets shared across the service binaries.
package bonddata

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command
// and by the storage test helpers.
//
//go:embed migrations/*.sql
var Migrations embed.FS

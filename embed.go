// Package tenantfinder embeds the files shipped inside the binary.
package tenantfinder

import "embed"

// Migrations holds the goose SQL migrations of the discoveries store.
//
//go:embed migrations/*.sql
var Migrations embed.FS

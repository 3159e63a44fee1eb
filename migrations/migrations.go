// Package migrations embeds the SQL schema owned by each service.
package migrations

import "embed"

//go:embed inventory/*.sql order/*.sql
var FS embed.FS

const (
	Inventory = "inventory"
	Order     = "order"
)

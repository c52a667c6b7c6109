package migration

import "context"

// Migrators maps a version to the migrator which upgrades the database from
// the previous version. Version 0000 creates the full schema from scratch.
var Migrators = map[string]func(context.Context) error{
	"0000": migrate0000,
}

// Migrate brings a fresh database to the latest version.
func Migrate(ctx context.Context) error {
	return migrate0000(ctx)
}

// Package schemas provides the embedded MySQL migrations of the card store.
package schemas

import "embed"

// MigrationsDir is the directory of the migration files inside Migrations.
const MigrationsDir = "migrations"

// Migrations contains all SQL migration files, applied in file name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

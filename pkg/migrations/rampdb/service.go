// Package rampdb holds all the migrations for the ramp aggregator database
package rampdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the ramp aggregator database
var Migrations = migrate.NewMigrations()

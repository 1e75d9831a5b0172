// Package vantage holds assets embedded into the vantage binary.
package vantage

import "embed"

// Migrations contains goose SQL migrations for the application schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Package gamedata provides embedded definitions for terrain, unit, and
// action kinds plus scenarios, and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

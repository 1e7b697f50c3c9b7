// Package appfs exposes embedded application files (database migrations).
package appfs

import "embed"

//go:embed migrations
var FS embed.FS

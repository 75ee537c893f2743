package scaffold

import "embed"

// templateFS holds the bundled extension template trees. Base project files
// are written from constants instead; only the extensions ship whole
// directory trees.
//
//go:embed all:templates
var templateFS embed.FS

package web

import "embed"

//go:embed static
var assetsFS embed.FS

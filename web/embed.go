package web

import "embed"

//go:embed templates/*.html static/*.css static/*.js
var assets embed.FS

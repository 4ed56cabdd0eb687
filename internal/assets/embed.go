// Package assets provides tile face images: an embedded glyph theme for the
// terminal and bitmap faces read from disk for the window.
package assets

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// Package mapdata provides the embedded tile palette and the dictionary used
// to classify pixel colors into terrain tiles.
package mapdata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

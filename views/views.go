// Package views embeds the HTML templates rendered for browser clients.
package views

import "embed"

//go:embed errors layouts
var FS embed.FS

package bareblog

import _ "embed"

// defaultStylesheet ships with the engine so a fresh site renders sanely
// before the user drops a style.css into their static dir.
//
//go:embed embedded/style.css
var defaultStylesheet []byte

// Package data embeds the fixed word lists used by the analyzers.
package data

import _ "embed"

//go:embed lexicon.yaml
var Lexicon []byte

package rule

import "embed"

// builtinRulesFS embeds the built-in ignore rules directory.
//
//go:embed rules/*.yml
var builtinRulesFS embed.FS

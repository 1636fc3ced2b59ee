package lexicon

import "embed"

// builtinTermsFS holds the builtin term files compiled into the binary.
//
//go:embed terms/*.yml
var builtinTermsFS embed.FS

package generator

import (
	"regexp"

	"command-forge/internal/catalogue"
)

// tokenRegex matches {identifier} spans, non-greedy, no nested braces.
// The optional leading $ captures spans that are already in runtime
// interpolation form so they can be skipped, which makes the pass
// idempotent over text that mixes raw tokens with emitted code.
var tokenRegex = regexp.MustCompile(`\$?\{([^{}]+)\}`)

// interpolate rewrites every recognized {token} into its runtime
// interpolation form ${token}. Unrecognized tokens pass through
// verbatim, braces included; no token is ever partially rewritten.
func interpolate(text string) string {
	if text == "" {
		return text
	}

	return tokenRegex.ReplaceAllStringFunc(text, func(match string) string {
		if match[0] == '$' {
			return match
		}
		name := match[1 : len(match)-1]
		if catalogue.Contains(name) {
			return "${" + name + "}"
		}
		return match
	})
}

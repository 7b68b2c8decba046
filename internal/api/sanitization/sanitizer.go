package sanitization

import (
	"regexp"
	"strings"
)

var (
	// scriptBlockRegex matches whole <script>...</script> blocks, including
	// their contents, across newlines and regardless of case.
	scriptBlockRegex = regexp.MustCompile(`(?is)<\s*script[^>]*>.*?<\s*/\s*script\s*>`)

	// javascriptProtocolRegex matches the javascript: URL scheme.
	javascriptProtocolRegex = regexp.MustCompile(`(?i)javascript:`)

	// eventHandlerRegex matches inline event handler attributes like onclick=.
	eventHandlerRegex = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// SanitizeInput neutralizes HTML/script injection in untrusted form input.
//
// Script blocks are removed first so their contents never survive, then the
// remaining script-like patterns are stripped, and finally special characters
// are entity-encoded. The ampersand is encoded before the other characters so
// entities introduced here are not re-escaped.
func SanitizeInput(input string) string {
	if input == "" {
		return ""
	}

	safe := scriptBlockRegex.ReplaceAllString(input, "")
	safe = javascriptProtocolRegex.ReplaceAllString(safe, "")
	safe = eventHandlerRegex.ReplaceAllString(safe, "")

	safe = strings.ReplaceAll(safe, "&", "&amp;")
	safe = strings.ReplaceAll(safe, "<", "&lt;")
	safe = strings.ReplaceAll(safe, ">", "&gt;")
	safe = strings.ReplaceAll(safe, `"`, "&quot;")

	return strings.TrimSpace(safe)
}

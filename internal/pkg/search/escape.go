// Package search provides helpers for safe SQL pattern matching.
package search

import (
	"strings"
	"time"
)

// DefaultSearchTimeout bounds filtered listing queries to prevent
// long-running scans from holding connections.
const DefaultSearchTimeout = 10 * time.Second

// EscapeILIKE escapes LIKE metacharacters in the given term and wraps it for
// substring matching. The result is always bound as a parameter, never
// interpolated into SQL text.
func EscapeILIKE(term string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return "%" + replacer.Replace(term) + "%"
}

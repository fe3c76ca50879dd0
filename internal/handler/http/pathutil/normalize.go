// Package pathutil provides helpers for working with URL paths: extracting
// resource identifiers and normalizing dynamic paths for metrics labels.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/collections/[^/]+$`), Template: "/collections/:id"},
	{Pattern: regexp.MustCompile(`^/collections-sets/[^/]+$`), Template: "/collections-sets/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths carrying an identifier segment (e.g.
// /collections/0a1b...) are converted to template form (/collections/:id).
// Static paths like /healthz and /metrics pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}

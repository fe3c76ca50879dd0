package respond

import (
	"regexp"
)

var (
	// Credentials embedded in connection strings (DSNs).
	dsnPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

	// Bearer tokens that backends sometimes echo back in error bodies.
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._-]+`)
)

// SanitizeError returns the error message with credentials masked so it can
// be written to logs.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")

	return msg
}

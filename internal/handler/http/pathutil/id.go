package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts a resource identifier from a URL path by removing the
// given prefix. The remainder must be a single non-empty path segment.
//
// Example:
//
//	id, err := ExtractID("/collections/azuki", "/collections/")
//	// Returns: "azuki", nil
func ExtractID(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	if id == "" || id == path || strings.ContainsRune(id, '/') {
		return "", ErrInvalidID
	}
	return id, nil
}

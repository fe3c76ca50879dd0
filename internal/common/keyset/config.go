package keyset

// Config holds page-size configuration settings, populated from the API
// config at wiring time.
type Config struct {
	DefaultLimit int // Default items per page (typically 20)
	MaxLimit     int // Maximum allowed items per page (typically 100)
}

// DefaultConfig returns the default page-size configuration.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// Clamp normalizes a requested page size: non-positive values fall back to
// the default, values above the maximum are capped.
func (c Config) Clamp(limit int) int {
	if limit <= 0 {
		return c.DefaultLimit
	}
	if limit > c.MaxLimit {
		return c.MaxLimit
	}
	return limit
}

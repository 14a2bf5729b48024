package cache

import (
	"strings"
)

// Key builds a consistent cache key by joining a prefix and parts with
// colons. The explicit separator keeps distinct registrations from
// colliding when a prefix happens to end with the start of a name.
//
// Example:
//
//	key := cache.Key("probe", "db")           // "probe:db"
//	key := cache.Key("probe", "db", "stats")  // "probe:db:stats"
//
// Empty parts are filtered out to prevent double colons.
func Key(prefix string, parts ...string) string {
	filtered := make([]string, 0, len(parts)+1)

	if prefix != "" {
		filtered = append(filtered, prefix)
	}

	for _, part := range parts {
		if part != "" {
			filtered = append(filtered, part)
		}
	}

	return strings.Join(filtered, ":")
}

package repository

import "strings"

// storeName falls back to def when the configured table or collection name is
// blank.
func storeName(name, def string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return def
}

// Package env is a fallback reader for the few settings that must resolve
// before envconfig has parsed the full configuration.
package env

import "os"

// Get returns the named environment variable, or fallback when it is unset
// or empty.
func Get(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

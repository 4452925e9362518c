package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the environment variable value, skipping the
// test when it is not set.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set, skip", key)
	}
	return value
}

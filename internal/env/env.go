// Package env reads configuration defaults from environment variables. An
// empty variable is treated the same as an unset one.
package env

import (
	"fmt"
	"os"
	"strconv"
)

// String returns the value of key, or fallback when it is unset or empty.
func String(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Int returns the integer value of key, or fallback when it is unset or empty.
// A value that isn't an integer is an error.
func Int(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}

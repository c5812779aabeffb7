package config

import (
	"os"
	"strconv"
	"time"
)

func stringValue(key string, file *string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if file != nil {
		return *file
	}
	return fallback
}

func intValue(key string, file *int, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	if file != nil {
		return *file
	}
	return fallback
}

func boolValue(key string, file *bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		return value == "true"
	}
	return file != nil && *file
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

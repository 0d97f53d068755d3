package core

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func setFromEnv(loc any, key string) error {
	strValue := os.Getenv(key)
	if strValue == "" {
		return nil
	}

	switch v := loc.(type) {
	case *string:
		*v = strValue
	case *bool:
		val, err := strconv.ParseBool(strValue)
		if err != nil {
			return fmt.Errorf("failed to parse %s as a bool: %w", strValue, err)
		}
		*v = val
	case *int:
		val, err := strconv.ParseInt(strValue, 10, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("failed to parse %s as an int: %w", strValue, err)
		}
		*v = int(val)
	case *time.Duration:
		val, err := time.ParseDuration(strValue)
		if err != nil {
			return fmt.Errorf("failed to parse %s as a duration: %w", strValue, err)
		}
		*v = val
	default:
		return fmt.Errorf("unsupported config type %T for %s", loc, key)
	}
	return nil
}

func loadEnvFile(filename string) error {
	err := godotenv.Load(filename)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading file %s: %w", filename, err)
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)

	if value != "" {
		return value
	}

	return fallback
}

func (c *Config) IsProd() bool {
	if c == nil || c.Environment != "production" {
		return false
	}

	return true
}

// LookupBaseURL returns the configured base URL without a trailing slash.
func (c *Config) LookupBaseURL() string {
	return strings.TrimRight(c.Lookup.BaseURL, "/")
}

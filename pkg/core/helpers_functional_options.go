package core

import "time"

func WithRedisAddr(addr string) func(*Config) {
	return func(c *Config) {
		c.Redis.Addr = addr
	}
}

func WithEnvironment(environment string) func(*Config) {
	return func(c *Config) {
		c.Environment = environment
	}
}

func WithLogLevel(level string) func(*Config) {
	return func(c *Config) {
		c.LogLevel = level
	}
}

func WithOtelDisable(value ...bool) func(*Config) {
	val := true
	if len(value) > 0 {
		val = value[0]
	}

	return func(c *Config) {
		c.Otel.Disable = val
	}
}

func WithLookupBaseURL(url string) func(*Config) {
	return func(c *Config) {
		c.Lookup.BaseURL = url
	}
}

func WithLookupTimeout(timeout time.Duration) func(*Config) {
	return func(c *Config) {
		c.Lookup.Timeout = timeout
	}
}

package core

import "time"

type Config struct {
	Environment string
	Otel        OtelConfig
	Port        int
	LogLevel    string
	Redis       RedisConfig
	Lookup      LookupConfig
	CORS        CORSConfig
}

type OtlpConfig struct {
	Endpoint string
	Insecure bool
}

type OtelConfig struct {
	OtlpExporter OtlpConfig
	Disable      bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LookupConfig points at the remote student lookup service.
type LookupConfig struct {
	// Base URL of the service, without trailing slash.
	BaseURL string
	// Per request timeout, applied only when the caller has no deadline.
	Timeout time.Duration
}

type CORSConfig struct {
	AllowOrigins string
}

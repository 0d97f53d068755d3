package core

import (
	"errors"
	"fmt"
	"time"
)

const (
	defaultConfigEnvironment = "development"
	defaultConfigPort        = 8000
	defaultLogLevel          = "info"

	defaultOtelDisable          = false
	defaultOTLPExporterEndpoint = "localhost:4317"
	defaultOTLPInsecure         = false

	defaultRedisAddr     = "localhost:6379"
	defaultRedisPassword = ""
	defaultRedisDB       = 0

	defaultLookupBaseURL = "https://student-image-finder.onrender.com"
	defaultLookupTimeout = 10 * time.Second

	defaultCORSAllowOrigins = "*"
)

func DefaultConfig() Config {
	return Config{
		Environment: defaultConfigEnvironment,
		Port:        defaultConfigPort,
		LogLevel:    defaultLogLevel,
		Otel: OtelConfig{
			Disable: defaultOtelDisable,
			OtlpExporter: OtlpConfig{
				Endpoint: defaultOTLPExporterEndpoint,
				Insecure: defaultOTLPInsecure,
			},
		},
		Redis: RedisConfig{
			Addr:     defaultRedisAddr,
			Password: defaultRedisPassword,
			DB:       defaultRedisDB,
		},
		Lookup: LookupConfig{
			BaseURL: defaultLookupBaseURL,
			Timeout: defaultLookupTimeout,
		},
		CORS: CORSConfig{
			AllowOrigins: defaultCORSAllowOrigins,
		},
	}
}

func NewConfig(options ...func(*Config)) Config {
	config := DefaultConfig()
	for _, opt := range options {
		opt(&config)
	}
	return config
}

func NewConfigFromEnv(options ...func(*Config)) (Config, error) {
	config := DefaultConfig()
	err := errors.Join(
		setFromEnv(&config.Environment, "ENVIRONMENT"),
		setFromEnv(&config.Port, "PORT"),
		setFromEnv(&config.LogLevel, "LOG_LEVEL"),
		setFromEnv(&config.Otel.Disable, "OTEL_DISABLE"),
		setFromEnv(&config.Otel.OtlpExporter.Endpoint, "OTEL_OTLP_EXPORTER_ENDPOINT"),
		setFromEnv(&config.Otel.OtlpExporter.Insecure, "OTEL_OTLP_EXPORTER_INSECURE"),
		setFromEnv(&config.Redis.Addr, "REDIS_ADDR"),
		setFromEnv(&config.Redis.Password, "REDIS_PASSWORD"),
		setFromEnv(&config.Redis.DB, "REDIS_DB"),
		setFromEnv(&config.Lookup.BaseURL, "LOOKUP_BASE_URL"),
		setFromEnv(&config.Lookup.Timeout, "LOOKUP_TIMEOUT"),
		setFromEnv(&config.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS"),
	)

	for _, opt := range options {
		opt(&config)
	}

	return config, err
}

func LoadEnv(environment ...string) error {
	filenames := []string{
		".env.local",
		".env",
	}

	env := getEnv("ENVIRONMENT", DefaultConfig().Environment)
	if len(environment) > 0 {
		env = environment[0]
	}

	if env != "" {
		file := ".env." + env + ".local"
		filenames = append([]string{file}, filenames...)
	}

	var errs error

	for _, filename := range filenames {
		err := loadEnvFile(filename)
		if err != nil {
			errs = errors.Join(
				errs,
				fmt.Errorf("error loading %s: %w", filename, err),
			)
		}
	}

	return errs
}

package core

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type FilterBackendType string

const (
	FilterBackendYAML FilterBackendType = "yaml"
	FilterBackendS3   FilterBackendType = "s3"
)

type LockerType string

const (
	LockerLocal LockerType = "local"
	LockerRedis LockerType = "redis"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"production"`

	Port            int `env:"PORT"              envDefault:"8080"`
	HealthCheckPort int `env:"HEALTH_CHECK_PORT" envDefault:"8081"`

	FilterBackend             FilterBackendType `env:"FILTER_BACKEND"               envDefault:"yaml"`
	FilterBackendYAMLPath     string            `env:"FILTER_BACKEND_YAML_PATH"     envDefault:"./namefilter_data/filters.yaml"` //nolint:lll
	FilterBackendTmpPath      string            `env:"FILTER_BACKEND_TMP_PATH"      envDefault:"./namefilter_data/tmp"`
	FilterBackendPollInterval time.Duration     `env:"FILTER_BACKEND_POLL_INTERVAL" envDefault:"5s"`

	FilterBackendS3Endpoint        string `env:"FILTER_BACKEND_S3_ENDPOINT"          envDefault:"localhost:9000"`
	FilterBackendS3Region          string `env:"FILTER_BACKEND_S3_REGION"            envDefault:"us-east-1"`
	FilterBackendS3Bucket          string `env:"FILTER_BACKEND_S3_BUCKET"            envDefault:"namefilter"`
	FilterBackendS3Key             string `env:"FILTER_BACKEND_S3_KEY"               envDefault:"filters.yaml"`
	FilterBackendS3AccessKeyID     string `env:"FILTER_BACKEND_S3_ACCESS_KEY_ID"`
	FilterBackendS3SecretAccessKey string `env:"FILTER_BACKEND_S3_SECRET_ACCESS_KEY"`
	FilterBackendS3UseSSL          bool   `env:"FILTER_BACKEND_S3_USE_SSL"           envDefault:"false"`

	Locker       LockerType `env:"LOCKER"        envDefault:"local"`
	RedisAddress string     `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`

	RegexCacheSize    int           `env:"REGEX_CACHE_SIZE"    envDefault:"1024"`
	RegexMatchTimeout time.Duration `env:"REGEX_MATCH_TIMEOUT" envDefault:"100ms"`
}

func (c *Config) Init(_ context.Context) error {
	err := env.Parse(c)
	if err != nil {
		return fmt.Errorf("%w: failed to parse config: %w", ErrInvalidConfig, err)
	}

	return c.Validate()
}

func (c *Config) Validate() error {
	switch c.FilterBackend {
	case FilterBackendYAML, FilterBackendS3:
	default:
		return fmt.Errorf("%w: unknown filter backend %q", ErrInvalidConfig, c.FilterBackend)
	}

	switch c.Locker {
	case LockerLocal, LockerRedis:
	default:
		return fmt.Errorf("%w: unknown locker %q", ErrInvalidConfig, c.Locker)
	}

	if c.RegexCacheSize <= 0 {
		return fmt.Errorf("%w: REGEX_CACHE_SIZE must be positive", ErrInvalidConfig)
	}

	if c.FilterBackendPollInterval <= 0 {
		return fmt.Errorf("%w: FILTER_BACKEND_POLL_INTERVAL must be positive", ErrInvalidConfig)
	}

	return nil
}

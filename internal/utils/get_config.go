package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultConfigPath = "config.yaml"

type Config struct {
	// Server configuration
	AppPort          string        `yaml:"APP_PORT" env:"APP_PORT" env-default:"3000"`
	CORSAllowOrigins string        `yaml:"CORS_ALLOW_ORIGINS" env:"CORS_ALLOW_ORIGINS" env-default:"*"`
	RateLimitMax     int           `yaml:"RATE_LIMIT_MAX" env:"RATE_LIMIT_MAX" env-default:"50"`
	RateLimitWindow  time.Duration `yaml:"RATE_LIMIT_WINDOW" env:"RATE_LIMIT_WINDOW" env-default:"1s"`

	// Database configuration
	DBDriver     string   `yaml:"DB_DRIVER" env:"DB_DRIVER" env-default:"postgres"`
	DBUser       string   `yaml:"DB_USER" env:"DB_USER" env-default:"postgres"`
	DBName       string   `yaml:"DB_NAME" env:"DB_NAME" env-default:"foodrecipes"`
	DBPassword   string   `yaml:"DB_PASSWORD" env:"DB_PASSWORD"`
	DBPort       string   `yaml:"DB_PORT" env:"DB_PORT" env-default:"5432"`
	DBHost       string   `yaml:"DB_HOST" env:"DB_HOST" env-default:"localhost"`
	DBSSLMode    string   `yaml:"DB_SSL_MODE" env:"DB_SSL_MODE" env-default:"disable"`
	DBTimeZone   string   `yaml:"DB_TIMEZONE" env:"DB_TIMEZONE" env-default:"UTC"`
	DBReplicas   []string `yaml:"DB_REPLICAS" env:"DB_REPLICAS" env-separator:","`
	DBMaxConns   int      `yaml:"DB_MAX_CONNS" env:"DB_MAX_CONNS" env-default:"25"`
	DBIdleConns  int      `yaml:"DB_IDLE_CONNS" env:"DB_IDLE_CONNS" env-default:"5"`
	DBLogQueries bool     `yaml:"DB_LOG_QUERIES" env:"DB_LOG_QUERIES" env-default:"false"`
	SqlitePath   string   `yaml:"SQLITE_PATH" env:"SQLITE_PATH" env-default:"recipes.db"`

	// Logging configuration
	LogLevel  string `yaml:"LOG_LEVEL" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"LOG_FORMAT" env:"LOG_FORMAT" env-default:"json"`

	// AWS S3 configuration, used for seed bundles stored as s3://bucket/key
	AWSS3Region    string `yaml:"AWS_S3_REGION" env:"AWS_S3_REGION" env-default:"us-east-1"`
	AWSAccessKey   string `yaml:"AWS_ACCESS_KEY" env:"AWS_ACCESS_KEY"`
	AWSSecretKey   string `yaml:"AWS_SECRET_KEY" env:"AWS_SECRET_KEY"`
	AWSS3Endpoint  string `yaml:"AWS_S3_ENDPOINT" env:"AWS_S3_ENDPOINT"`
	AWSS3PathStyle bool   `yaml:"AWS_S3_PATH_STYLE" env:"AWS_S3_PATH_STYLE" env-default:"false"`
}

// LoadConfig reads path with environment overrides. A missing file is not an
// error: configuration then comes from the environment and defaults alone.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := &Config{}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return cfg, nil
}

// PostgresDSN returns the primary PostgreSQL connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.DBTimeZone,
	)
}

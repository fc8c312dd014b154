package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // zoneinfo for scratch images

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	Port     string `envconfig:"PORT" default:"8080"`
	Timezone string `envconfig:"APP_TIMEZONE" default:"Asia/Jakarta"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	JobsTable            string `envconfig:"JOBS_TABLE" default:"jobs"`
	TransactionsTable    string `envconfig:"CASHIER_TRANSACTIONS_TABLE" default:"cashier_transactions"`
	AssetsTable          string `envconfig:"ASSETS_TABLE" default:"assets"`
	SettingsTable        string `envconfig:"SETTINGS_TABLE" default:"settings"`
	SettingsKey          string `envconfig:"SETTINGS_KEY" default:"global"`
	DocumentNumbersTable string `envconfig:"DOCUMENT_NUMBERS_TABLE" default:"document_numbers"`

	// RedisAddr empty disables the live feed.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	NumberClaimEnabled     bool `envconfig:"NUMBER_CLAIM_ENABLED" default:"true"`
	NumberClaimMaxAttempts int  `envconfig:"NUMBER_CLAIM_MAX_ATTEMPTS" default:"5"`

	StreamHeartbeat time.Duration `envconfig:"KPI_STREAM_HEARTBEAT" default:"25s"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.NumberClaimMaxAttempts < 1 {
		return nil, errors.New("NUMBER_CLAIM_MAX_ATTEMPTS must be at least 1")
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves the business timezone used for month boundaries.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

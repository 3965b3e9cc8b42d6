package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort      string `yaml:"http_port"`
	MaxUploadSize string `yaml:"max_upload_size"`

	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSslMode  string `yaml:"db_sslmode"`

	GraphQLBaseURL string        `yaml:"graphql_base_url"`
	GraphQLTimeout time.Duration `yaml:"graphql_timeout"`
	SessionToken   string        `yaml:"session_token"`
	StoreID        string        `yaml:"store_id"`
	BrandName      string        `yaml:"brand_name"`

	RabbitMQURL   string `yaml:"rabbitmq_url"`
	RabbitMQQueue string `yaml:"rabbitmq_queue"`

	SyncSchedule          string        `yaml:"sync_schedule"`
	HandoffTTL            time.Duration `yaml:"handoff_ttl"`
	HandoffExpirySchedule string        `yaml:"handoff_expiry_schedule"`
}

func DefaultConfig() Config {
	return Config{
		HTTPPort:              "8080",
		MaxUploadSize:         "20M",
		DBPort:                "5432",
		DBSslMode:             "disable",
		GraphQLTimeout:        30 * time.Second,
		BrandName:             "HypeGuardian",
		RabbitMQQueue:         "dashboard.notifications",
		SyncSchedule:          "0 */5 * * * *",
		HandoffTTL:            15 * time.Minute,
		HandoffExpirySchedule: "0 * * * * *",
	}
}

// LoadConfig reads .env (if present) into the environment, applies the
// environment over the defaults and finally the YAML file named by
// CONFIG_FILE over the result.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if path, ok := os.LookupEnv("CONFIG_FILE"); ok && path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	texts := map[string]*string{
		"HTTP_PORT":               &c.HTTPPort,
		"MAX_UPLOAD_SIZE":         &c.MaxUploadSize,
		"DB_HOST":                 &c.DBHost,
		"DB_PORT":                 &c.DBPort,
		"DB_USER":                 &c.DBUser,
		"DB_PASSWORD":             &c.DBPassword,
		"DB_NAME":                 &c.DBName,
		"DB_SSLMODE":              &c.DBSslMode,
		"GRAPHQL_BASE_URL":        &c.GraphQLBaseURL,
		"SESSION_TOKEN":           &c.SessionToken,
		"STORE_ID":                &c.StoreID,
		"BRAND_NAME":              &c.BrandName,
		"RABBITMQ_URL":            &c.RabbitMQURL,
		"RABBITMQ_QUEUE":          &c.RabbitMQQueue,
		"SYNC_SCHEDULE":           &c.SyncSchedule,
		"HANDOFF_EXPIRY_SCHEDULE": &c.HandoffExpirySchedule,
	}
	for key, field := range texts {
		if value, ok := lookup(key); ok && value != "" {
			*field = value
		}
	}

	durations := map[string]*time.Duration{
		"GRAPHQL_TIMEOUT": &c.GraphQLTimeout,
		"HANDOFF_TTL":     &c.HandoffTTL,
	}
	for key, field := range durations {
		value, ok := lookup(key)
		if !ok || value == "" {
			continue
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*field = d
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	var missing []error
	for key, value := range map[string]string{
		"HTTP_PORT":        c.HTTPPort,
		"DB_HOST":          c.DBHost,
		"DB_NAME":          c.DBName,
		"GRAPHQL_BASE_URL": c.GraphQLBaseURL,
	} {
		if value == "" {
			missing = append(missing, fmt.Errorf("%s is required", key))
		}
	}
	if _, err := bytes.Parse(c.MaxUploadSize); err != nil {
		missing = append(missing, fmt.Errorf("MAX_UPLOAD_SIZE: %w", err))
	}
	if c.HandoffTTL <= 0 {
		missing = append(missing, errors.New("HANDOFF_TTL must be positive"))
	}
	return errors.Join(missing...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"
)

type ServerConfig struct {
	Port        string
	Environment string
}

type LogConfig struct {
	Level  string
	Format string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// TableConfig maps each collection to its DynamoDB table.
type TableConfig struct {
	Ordenes    string
	Clientes   string
	Negocios   string
	Contadores string
	Create     bool
}

type StoreConfig struct {
	Driver                 string
	TransactionMaxAttempts int
}

type JWTConfig struct {
	Secret string
	Issuer string
}

// SequenceConfig is the retry policy around the order number transaction.
type SequenceConfig struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	AWS      AWSConfig
	Tables   TableConfig
	Store    StoreConfig
	JWT      JWTConfig
	Sequence SequenceConfig
}

// Load reads the configuration from the environment. The .env file, when
// present, is loaded by the godotenv autoload import in main.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getenvDefault("PORT", "8080"),
			Environment: getenvDefault("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level:  getenvDefault("LOG_LEVEL", "info"),
			Format: getenvDefault("LOG_FORMAT", "json"),
		},
		AWS: AWSConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Tables: TableConfig{
			Ordenes:    getenvDefault("DYNAMODB_TABLE_ORDENES", "tecnicontrol-ordenes"),
			Clientes:   getenvDefault("DYNAMODB_TABLE_CLIENTES", "tecnicontrol-clientes"),
			Negocios:   getenvDefault("DYNAMODB_TABLE_NEGOCIOS", "tecnicontrol-negocios"),
			Contadores: getenvDefault("DYNAMODB_TABLE_CONTADORES", "tecnicontrol-contadores"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getenvDefault("STORE_DRIVER", StoreDriverDynamoDB)),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			Issuer: os.Getenv("JWT_ISSUER"),
		},
	}

	var err error
	if cfg.Tables.Create, err = getenvBool("DYNAMODB_CREATE_TABLES", false); err != nil {
		return nil, err
	}
	if cfg.Store.TransactionMaxAttempts, err = getenvInt("STORE_TX_MAX_ATTEMPTS", 5); err != nil {
		return nil, err
	}
	retries, err := getenvInt("SEQUENCE_MAX_RETRIES", 3)
	if err != nil {
		return nil, err
	}
	cfg.Sequence.MaxRetries = uint64(max(retries, 0))
	if cfg.Sequence.InitialInterval, err = getenvDuration("SEQUENCE_RETRY_INITIAL", 50*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.Sequence.MaxInterval, err = getenvDuration("SEQUENCE_RETRY_MAX", time.Second); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverDynamoDB, StoreDriverMemory:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	if c.Store.TransactionMaxAttempts < 1 {
		return fmt.Errorf("config: STORE_TX_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

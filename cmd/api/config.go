// cmd/api/config.go
// This file loads and validates the server configuration from the environment.
package main

import (
	"errors"
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Store backends selectable with STORE.
const (
	storeMemory   = "memory"
	storeDynamoDB = "dynamodb"
	storePostgres = "postgres"
	storeBadger   = "badger"
)

// serverConfig holds every value that can be tweaked at startup. Values come
// from the environment (optionally a .env file); -port and -env flags override them.
type serverConfig struct {
	Port        int    `env:"PORT,default=3000" validate:"min=1,max=65535"`
	Environment string `env:"ENV,default=development" validate:"oneof=development staging production"`
	LogLevel    string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`

	// Store selects the persistence backend.
	Store string `env:"STORE,default=memory" validate:"oneof=memory dynamodb postgres badger"`

	AWS struct {
		Region   string `env:"AWS_REGION" validate:"required_if=Enabled true"`
		Table    string `env:"AWS_BOOK_TABLE" validate:"required_if=Enabled true"`
		Endpoint string `env:"AWS_DYNAMODB_ENDPOINT" validate:"omitempty,url"`
		Enabled  bool
	}

	DB struct {
		DSN     string `env:"DB_DSN" validate:"required_if=Enabled true"`
		Table   string `env:"AWS_BOOK_TABLE,default=books"`
		Enabled bool
	}

	Badger struct {
		Path    string `env:"BADGER_PATH" validate:"required_if=Enabled true"`
		Table   string `env:"AWS_BOOK_TABLE,default=books"`
		Enabled bool
	}

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=5s" validate:"gt=0"`

	Limiter struct {
		Enabled bool    `env:"LIMITER_ENABLED,default=true"`
		RPS     float64 `env:"LIMITER_RPS,default=2" validate:"gt=0"`
		Burst   int     `env:"LIMITER_BURST,default=4" validate:"gt=0"`
	}

	CORSOrigin string `env:"CORS_ORIGIN,default=*"`
}

// loadConfig reads an optional .env file, decodes the environment into a
// serverConfig and validates it.
func loadConfig() (serverConfig, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	var cfg serverConfig
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return serverConfig{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// validate checks cfg, including the settings required by the selected store.
// Missing required values are reported with their environment variable names.
func (cfg *serverConfig) validate() error {
	cfg.AWS.Enabled = cfg.Store == storeDynamoDB
	cfg.DB.Enabled = cfg.Store == storePostgres
	cfg.Badger.Enabled = cfg.Store == storeBadger

	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Errorf("%s: failed %q check", envName(fe.StructNamespace()), fe.Tag()))
	}
	return errors.Join(msgs...)
}

// envNames maps struct fields to the variables that set them.
var envNames = map[string]string{
	"serverConfig.Port":           "PORT",
	"serverConfig.Environment":    "ENV",
	"serverConfig.LogLevel":       "LOG_LEVEL",
	"serverConfig.Store":          "STORE",
	"serverConfig.AWS.Region":     "AWS_REGION",
	"serverConfig.AWS.Table":      "AWS_BOOK_TABLE",
	"serverConfig.AWS.Endpoint":   "AWS_DYNAMODB_ENDPOINT",
	"serverConfig.DB.DSN":         "DB_DSN",
	"serverConfig.Badger.Path":    "BADGER_PATH",
	"serverConfig.RequestTimeout": "REQUEST_TIMEOUT",
	"serverConfig.Limiter.RPS":    "LIMITER_RPS",
	"serverConfig.Limiter.Burst":  "LIMITER_BURST",
}

func envName(namespace string) string {
	if name, ok := envNames[namespace]; ok {
		return name
	}
	return namespace
}

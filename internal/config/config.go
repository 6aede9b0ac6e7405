// Package config loads server settings from flags and the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Authentication backends.
const (
	AuthLocal   = "local"
	AuthCognito = "cognito"
)

// Item store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Log formats.
const (
	LogJSON    = "json"
	LogConsole = "console"
)

// DefaultJWTSecret is a placeholder for demos. Anyone who knows it can mint
// tokens, so the server warns when it is in use.
const DefaultJWTSecret = "change-me-demo-secret"

// DefaultTokenTTL is the lifetime of locally issued tokens.
const DefaultTokenTTL = 24 * time.Hour

// Config holds all server settings.
type Config struct {
	Addr        string
	Environment string
	LogFormat   string

	AuthBackend string
	JWTSecret   string
	TokenTTL    time.Duration

	CognitoPoolID   string
	CognitoClientID string
	Region          string

	StoreBackend string
	SQLiteDSN    string
}

// envKeys maps flag names to the environment variables that can set them.
var envKeys = map[string]string{
	"addr":              "ADDR",
	"env":               "ENV",
	"log-format":        "LOG_FORMAT",
	"auth":              "AUTH_BACKEND",
	"jwt-secret":        "JWT_SECRET",
	"token-ttl":         "TOKEN_TTL",
	"cognito-pool-id":   "COGNITO_USER_POOL_ID",
	"cognito-client-id": "COGNITO_CLIENT_ID",
	"region":            "AWS_REGION",
	"store":             "STORE_BACKEND",
	"sqlite-dsn":        "SQLITE_DSN",
}

// NewFlagSet returns the server's flags with their defaults.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("addr", ":8000", "listen address")
	fs.String("env", "development", "environment label reported by /health")
	fs.String("log-format", LogJSON, "log output format (json|console)")
	fs.String("auth", AuthLocal, "authentication backend (local|cognito)")
	fs.String("jwt-secret", DefaultJWTSecret, "HS256 signing key for the local backend")
	fs.Duration("token-ttl", DefaultTokenTTL, "lifetime of locally issued tokens")
	fs.String("cognito-pool-id", "", "Cognito user pool id")
	fs.String("cognito-client-id", "", "Cognito app client id")
	fs.String("region", "us-east-1", "AWS region of the Cognito user pool")
	fs.String("store", StoreMemory, "item store backend (memory|sqlite)")
	fs.String("sqlite-dsn", ":memory:", "SQLite data source for the sqlite store")
	return fs
}

// Load parses args and resolves every setting with the precedence
// flag > environment > default.
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("catalog")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	cfg := &Config{
		Addr:            v.GetString("addr"),
		Environment:     v.GetString("env"),
		LogFormat:       v.GetString("log-format"),
		AuthBackend:     v.GetString("auth"),
		JWTSecret:       v.GetString("jwt-secret"),
		TokenTTL:        v.GetDuration("token-ttl"),
		CognitoPoolID:   v.GetString("cognito-pool-id"),
		CognitoClientID: v.GetString("cognito-client-id"),
		Region:          v.GetString("region"),
		StoreBackend:    v.GetString("store"),
		SQLiteDSN:       v.GetString("sqlite-dsn"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are consistent.
func (c *Config) Validate() error {
	var errs []error

	switch c.AuthBackend {
	case AuthLocal:
		if c.JWTSecret == "" {
			errs = append(errs, errors.New("jwt secret must not be empty"))
		}
		if c.TokenTTL <= 0 {
			errs = append(errs, fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL))
		}
	case AuthCognito:
		if c.CognitoPoolID == "" {
			errs = append(errs, errors.New("cognito backend requires a user pool id"))
		}
		if c.CognitoClientID == "" {
			errs = append(errs, errors.New("cognito backend requires a client id"))
		}
		if c.Region == "" {
			errs = append(errs, errors.New("cognito backend requires a region"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown auth backend %q", c.AuthBackend))
	}

	switch c.StoreBackend {
	case StoreMemory:
	case StoreSQLite:
		if c.SQLiteDSN == "" {
			errs = append(errs, errors.New("sqlite store requires a dsn"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store backend %q", c.StoreBackend))
	}

	switch c.LogFormat {
	case LogJSON, LogConsole:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// UsesDefaultSecret reports whether local tokens are signed with the
// placeholder key.
func (c *Config) UsesDefaultSecret() bool {
	return c.AuthBackend == AuthLocal && c.JWTSecret == DefaultJWTSecret
}

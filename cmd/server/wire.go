package main

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/catalog/internal/auth"
	"github.com/erazemk/catalog/internal/config"
	"github.com/erazemk/catalog/internal/db"
	"github.com/erazemk/catalog/internal/store"
)

// newLogger builds a production JSON logger, or a development console
// logger when asked for console output.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.LogFormat == config.LogConsole {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.With(zap.String("env", cfg.Environment)), nil
}

// newAuthenticator selects the token strategy named by cfg.AuthBackend.
func newAuthenticator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (auth.Authenticator, error) {
	named := logger.Named("auth")

	switch cfg.AuthBackend {
	case config.AuthCognito:
		a, err := auth.NewCognitoAuthenticator(ctx, cfg.Region, cfg.CognitoPoolID, cfg.CognitoClientID, named)
		if err != nil {
			return nil, fmt.Errorf("creating cognito authenticator: %w", err)
		}
		return a, nil
	case config.AuthLocal:
		creds, err := auth.NewCredentialStore(auth.DemoUsers, bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("loading credentials: %w", err)
		}
		return auth.NewLocalAuthenticator(creds, cfg.JWTSecret, cfg.TokenTTL, named), nil
	default:
		return nil, fmt.Errorf("unknown auth backend %q", cfg.AuthBackend)
	}
}

// newRepository selects the item store named by cfg.StoreBackend. The
// returned function releases whatever the store holds open.
func newRepository(cfg *config.Config) (store.Repository, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		database, err := db.Open(cfg.SQLiteDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := db.EnsureSchema(database); err != nil {
			database.Close()
			return nil, nil, err
		}
		return store.NewSQLiteStore(database), closer(database), nil
	case config.StoreMemory:
		return store.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func closer(database *sql.DB) func() {
	return func() { _ = database.Close() }
}

package database

import (
	"context"
	"fmt"

	"github.com/lumenlearn/pagecraft/internal/config"
	"github.com/surrealdb/surrealdb.go"
)

// Connect opens, authenticates and scopes a SurrealDB connection for the
// draft store. Credentials are optional for local development instances.
func Connect(ctx context.Context, cfg *config.Config) (*surrealdb.DB, error) {
	conn, err := surrealdb.FromEndpointURLString(ctx, cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database at %s: %w", cfg.DBUrl, err)
	}

	if cfg.DBUser != "" {
		authData := &surrealdb.Auth{
			Username: cfg.DBUser,
			Password: cfg.DBPass,
		}
		if _, err := conn.SignIn(ctx, authData); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to sign in: %w", err)
		}
	}

	if err := conn.Use(ctx, cfg.DBNs, cfg.DBDb); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/db: %w", err)
	}

	return conn, nil
}

// Package drafts persists unsaved working envelopes locally so an edit
// session survives a crashed tab or server restart. Drafts are advisory:
// the remote API holds the only published truth, and a successful remote
// save drops the draft.
package drafts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lumenlearn/pagecraft/internal/database"
	"github.com/surrealdb/surrealdb.go"
)

// Draft is one autosaved working copy, keyed by scope ("landing",
// "profile").
type Draft struct {
	ID        any       `json:"id,omitempty"`
	Scope     string    `json:"scope"`
	Envelope  string    `json:"envelope"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store handles draft persistence in SurrealDB.
type Store struct {
	db *surrealdb.DB
}

// NewStore creates a draft store over an established connection.
func NewStore(db *surrealdb.DB) *Store {
	return &Store{db: db}
}

// Put upserts the draft for a scope with the envelope document.
func (s *Store) Put(ctx context.Context, scope string, envelope any) error {
	raw, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshalling draft envelope: %w", err)
	}

	query := `UPSERT draft SET scope = $scope, envelope = $envelope, updatedAt = time::now() WHERE scope = $scope`
	params := map[string]any{
		"scope":    scope,
		"envelope": string(raw),
	}
	if _, err := database.Query[Draft](ctx, s.db, query, params); err != nil {
		return fmt.Errorf("failed to store draft for %q: %w", scope, err)
	}
	return nil
}

// Get returns the draft envelope bytes for a scope, or nil when no draft
// exists.
func (s *Store) Get(ctx context.Context, scope string) ([]byte, error) {
	query := `SELECT * FROM draft WHERE scope = $scope LIMIT 1`
	draft, err := database.QueryOne[Draft](ctx, s.db, query, map[string]any{"scope": scope})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draft for %q: %w", scope, err)
	}
	if draft == nil {
		return nil, nil
	}
	return []byte(draft.Envelope), nil
}

// Delete drops the draft for a scope. Deleting a missing draft is not an
// error.
func (s *Store) Delete(ctx context.Context, scope string) error {
	query := `DELETE draft WHERE scope = $scope`
	if _, err := database.Query[Draft](ctx, s.db, query, map[string]any{"scope": scope}); err != nil {
		return fmt.Errorf("failed to delete draft for %q: %w", scope, err)
	}
	return nil
}

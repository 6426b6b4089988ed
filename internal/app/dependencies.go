// Package app assembles the application's shared services and its module
// list. Construction goes through a samber/do injector so service
// lifetimes and their dependency order live in one place.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/surrealdb/surrealdb.go"

	"github.com/lumenlearn/pagecraft/internal/api"
	"github.com/lumenlearn/pagecraft/internal/config"
	"github.com/lumenlearn/pagecraft/internal/database"
	"github.com/lumenlearn/pagecraft/internal/drafts"
	"github.com/lumenlearn/pagecraft/internal/hub"
	"github.com/lumenlearn/pagecraft/internal/i18n"
	"github.com/lumenlearn/pagecraft/internal/pubsub"
)

// NewInjector builds the service container for the given configuration.
func NewInjector(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	do.Provide(injector, func(i do.Injector) (*api.Client, error) {
		return api.New(cfg.APIBaseURL), nil
	})

	do.Provide(injector, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})

	do.Provide(injector, func(i do.Injector) (*hub.Hub, error) {
		return hub.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*i18n.Translator, error) {
		return i18n.ForLocale(cfg.Locale), nil
	})

	do.Provide(injector, func(i do.Injector) (*surrealdb.DB, error) {
		if !cfg.DraftsEnabled() {
			return nil, fmt.Errorf("draft store not configured")
		}
		return database.Connect(context.Background(), cfg)
	})

	do.Provide(injector, func(i do.Injector) (*drafts.Store, error) {
		db, err := do.Invoke[*surrealdb.DB](i)
		if err != nil {
			return nil, err
		}
		return drafts.NewStore(db), nil
	})

	return injector
}

// DraftStore resolves the optional draft store. A missing SurrealDB
// configuration is not an error; draft autosave is simply off.
func DraftStore(injector do.Injector) (*drafts.Store, bool) {
	store, err := do.Invoke[*drafts.Store](injector)
	if err != nil {
		slog.Info("Draft autosave disabled", "reason", err)
		return nil, false
	}
	return store, true
}

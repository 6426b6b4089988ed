// Package profilebuilder is the editing surface for user profile pages.
// It shares the orchestrator and registry machinery with the landing
// builder but differs where the page semantics differ: adding a section
// selects it, and a save replaces only the profile field of the user
// object.
package profilebuilder

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/debounce"
	"github.com/lumenlearn/pagecraft/internal/module"
	"github.com/lumenlearn/pagecraft/internal/profile"
	"github.com/lumenlearn/pagecraft/internal/pubsub"
	"github.com/lumenlearn/pagecraft/internal/registry"
)

// Scope identifies this builder's envelope on the bus and in the draft
// store.
const Scope = "profile"

// Module wires the profile builder into the application.
type Module struct {
	module.BaseModule

	handler   *Handler
	debouncer *debounce.Debouncer
}

// New creates the profile builder module.
func New() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "profilebuilder"
}

// Boot hydrates the orchestrator from the owner's user object and mounts
// the editing routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	client := registry.MustGet(reg, registry.APIClientKey)
	publisher := registry.MustGet(reg, registry.PublisherKey)
	tr := registry.MustGet(reg, registry.TranslatorKey)
	draftStore, hasDrafts := registry.Get(reg, registry.DraftStoreKey)

	sectionReg := profile.NewRegistry(tr)
	orch := builder.NewOrchestrator(sectionReg, builder.Options{AutoSelectOnAdd: true})

	var rawEnvelope []byte
	if cfg.UserID != "" {
		user, err := client.GetUser(ctx, cfg.UserID, "")
		if err != nil {
			slog.Warn("Profile hydration failed, starting empty", "error", err)
		} else if raw, ok := user["profile"]; ok {
			rawEnvelope = raw
		}
	}

	if hasDrafts {
		if draft, err := draftStore.Get(ctx, Scope); err != nil {
			slog.Warn("Draft lookup failed", "scope", Scope, "error", err)
		} else if len(draft) > 0 {
			slog.Info("Recovering profile draft")
			rawEnvelope = draft
		}
	}

	orch.Hydrate(sectionReg.HydrateEnvelope(rawEnvelope))

	m.debouncer = debounce.New(debounce.DefaultQuietPeriod, func() {
		env := orch.Envelope()
		payload, err := json.Marshal(env)
		if err != nil {
			slog.Error("Failed to marshal profile envelope", "error", err)
			return
		}
		if err := publisher.Publish(ctx, pubsub.Message{
			Topic:   pubsub.TopicEnvelopeUpdated,
			Scope:   Scope,
			Payload: payload,
		}); err != nil {
			slog.Error("Failed to publish profile update", "error", err)
		}
		if hasDrafts {
			if err := draftStore.Put(ctx, Scope, env); err != nil {
				slog.Warn("Draft autosave failed", "scope", Scope, "error", err)
			}
		}
	})
	orch.SetOnChange(func(builder.Envelope) {
		m.debouncer.Trigger()
	})

	m.handler = NewHandler(HandlerDeps{
		Orchestrator: orch,
		Registry:     sectionReg,
		Client:       client,
		Publisher:    publisher,
		DraftStore:   draftStore,
		HasDrafts:    hasDrafts,
		Debouncer:    m.debouncer,
		Translator:   tr,
		UserID:       cfg.UserID,
	})
	m.handler.RegisterRoutes(g)

	slog.Info("Booted profile builder", "sections", len(orch.Sections()))
	return nil
}

// Shutdown cancels any pending debounced sync.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.debouncer != nil {
		m.debouncer.Stop()
	}
	return nil
}

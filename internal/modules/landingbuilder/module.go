// Package landingbuilder is the editing surface for organization landing
// pages: hydration from the remote API, the in-memory section
// orchestrator, and the save path that writes the whole envelope back.
package landingbuilder

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/debounce"
	"github.com/lumenlearn/pagecraft/internal/domain"
	"github.com/lumenlearn/pagecraft/internal/landing"
	"github.com/lumenlearn/pagecraft/internal/module"
	"github.com/lumenlearn/pagecraft/internal/pubsub"
	"github.com/lumenlearn/pagecraft/internal/registry"
)

// Scope identifies this builder's envelope on the bus and in the draft
// store.
const Scope = "landing"

// Module wires the landing builder into the application.
type Module struct {
	module.BaseModule

	handler   *Handler
	debouncer *debounce.Debouncer
}

// New creates the landing builder module.
func New() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "landingbuilder"
}

// Boot hydrates the orchestrator from the remote API (recovering a local
// draft when one is newer than nothing at all) and mounts the editing
// routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	client := registry.MustGet(reg, registry.APIClientKey)
	publisher := registry.MustGet(reg, registry.PublisherKey)
	tr := registry.MustGet(reg, registry.TranslatorKey)
	draftStore, hasDrafts := registry.Get(reg, registry.DraftStoreKey)

	sectionReg := landing.NewRegistry(tr)
	orch := builder.NewOrchestrator(sectionReg, builder.Options{AutoSelectOnAdd: false})

	// Remote envelope and course list load in parallel; neither failing
	// blocks the builder from opening on an empty document.
	var (
		rawEnvelope []byte
		courses     []domain.Course
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		raw, err := client.GetOrgLanding(egCtx, cfg.OrgID, "")
		if err != nil {
			slog.Warn("Landing hydration failed, starting empty", "error", err)
			return nil
		}
		rawEnvelope = raw
		return nil
	})
	eg.Go(func() error {
		list, err := client.ListOrgCourses(egCtx, cfg.OrgSlug, "")
		if err != nil {
			slog.Warn("Course lookup failed, continuing without courses", "error", err)
			return nil
		}
		courses = list
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	// A local draft outranks the remote copy: it is by definition newer
	// than the last successful save.
	if hasDrafts {
		if draft, err := draftStore.Get(ctx, Scope); err != nil {
			slog.Warn("Draft lookup failed", "scope", Scope, "error", err)
		} else if len(draft) > 0 {
			slog.Info("Recovering landing draft")
			rawEnvelope = draft
		}
	}

	env := sectionReg.HydrateEnvelope(rawEnvelope)
	if env.SchemaVersion == 0 {
		env.SchemaVersion = landing.DetectSchemaVersion(env.Sections)
	}
	if env.Navbar == nil && env.SchemaVersion == 2 {
		env.Navbar = landing.DefaultNavbar()
	}
	orch.Hydrate(env)

	// Every mutation fans out after the quiet period: one bus publish for
	// preview consumers and one draft upsert. Bursts of keystrokes
	// collapse into a single sync.
	m.debouncer = debounce.New(debounce.DefaultQuietPeriod, func() {
		syncEnvelope(ctx, orch, publisher, draftStore, hasDrafts)
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
		OrgID:        cfg.OrgID,
		MediaBaseURL: cfg.MediaBaseURL,
		Courses:      courses,
	})
	m.handler.RegisterRoutes(g)

	slog.Info("Booted landing builder", "sections", len(env.Sections), "schemaVersion", env.SchemaVersion)
	return nil
}

// Shutdown cancels any pending debounced sync.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.debouncer != nil {
		m.debouncer.Stop()
	}
	return nil
}

func syncEnvelope(ctx context.Context, orch *builder.Orchestrator, publisher pubsub.Publisher, draftStore draftPutter, hasDrafts bool) {
	env := orch.Envelope()
	payload, err := json.Marshal(env)
	if err != nil {
		slog.Error("Failed to marshal envelope for sync", "error", err)
		return
	}

	if err := publisher.Publish(ctx, pubsub.Message{
		Topic:   pubsub.TopicEnvelopeUpdated,
		Scope:   Scope,
		Payload: payload,
	}); err != nil {
		slog.Error("Failed to publish envelope update", "error", err)
	}

	if hasDrafts {
		if err := draftStore.Put(ctx, Scope, env); err != nil {
			slog.Warn("Draft autosave failed", "scope", Scope, "error", err)
		}
	}
}

// draftPutter is the slice of the draft store the sync path needs.
type draftPutter interface {
	Put(ctx context.Context, scope string, envelope any) error
}

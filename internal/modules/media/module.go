// Package media handles builder uploads and the org preview strip.
// Uploads are precheck-gated (extension allowlist plus size ceiling)
// before a byte is written; preview items keep a contiguous zero-based
// order through every mutation.
package media

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"

	"github.com/lumenlearn/pagecraft/internal/config"
	"github.com/lumenlearn/pagecraft/internal/module"
	"github.com/lumenlearn/pagecraft/internal/previews"
	"github.com/lumenlearn/pagecraft/internal/registry"
	"github.com/lumenlearn/pagecraft/internal/storage"
)

// Size ceilings, overridable per deployment.
const (
	defaultMaxImageBytes = 5 << 20
	defaultMaxVideoBytes = 50 << 20
)

// Module wires media uploads and previews into the application.
type Module struct {
	module.BaseModule

	handler *Handler
}

// New creates the media module.
func New() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "media"
}

// Boot loads the stored preview config and mounts the media routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	client := registry.MustGet(reg, registry.APIClientKey)

	store := storage.NewAferoStore(afero.NewOsFs(), cfg.MediaDir)

	raw, err := client.GetOrgPreviews(ctx, cfg.OrgID, "")
	if err != nil {
		slog.Warn("Preview config load failed, starting empty", "error", err)
		raw = nil
	}
	list, err := previews.Load(raw, func(filename string) string {
		return OrgPreviewMediaURL(cfg.MediaBaseURL, cfg.OrgID, filename)
	})
	if err != nil {
		slog.Warn("Preview config malformed, starting empty", "error", err)
		list, _ = previews.Load(nil, nil)
	}

	m.handler = NewHandler(HandlerDeps{
		Store:         store,
		Client:        client,
		List:          list,
		Config:        cfg,
		MaxImageBytes: config.GetEnvInt("MEDIA_MAX_IMAGE_BYTES", defaultMaxImageBytes),
		MaxVideoBytes: config.GetEnvInt("MEDIA_MAX_VIDEO_BYTES", defaultMaxVideoBytes),
	})
	m.handler.RegisterRoutes(g)

	slog.Info("Booted media module", "previews", len(list.Items()), "dir", cfg.MediaDir)
	return nil
}

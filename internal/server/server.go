// Package server assembles the echo application: shared services, global
// middleware, and the module lifecycle (register, boot, shutdown).
package server

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"
	"github.com/surrealdb/surrealdb.go"

	"github.com/lumenlearn/pagecraft/internal/api"
	"github.com/lumenlearn/pagecraft/internal/app"
	"github.com/lumenlearn/pagecraft/internal/config"
	"github.com/lumenlearn/pagecraft/internal/hub"
	"github.com/lumenlearn/pagecraft/internal/i18n"
	"github.com/lumenlearn/pagecraft/internal/logging"
	appmw "github.com/lumenlearn/pagecraft/internal/middleware"
	"github.com/lumenlearn/pagecraft/internal/module"
	"github.com/lumenlearn/pagecraft/internal/pubsub"
	"github.com/lumenlearn/pagecraft/internal/registry"
	"github.com/lumenlearn/pagecraft/internal/ui"
)

// CustomValidator wraps go-playground/validator to implement Echo's
// Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Server holds the assembled application.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Reg      *registry.Registry
	Injector do.Injector

	modules []module.Module
	bridge  *pubsub.WatermillBridge
}

// New creates a Server instance with all shared services wired.
func New() *Server {
	logging.New()
	cfg := config.New()

	injector := app.NewInjector(cfg)
	reg := registry.New(cfg)

	client := do.MustInvoke[*api.Client](injector)
	bridge := do.MustInvoke[*pubsub.WatermillBridge](injector)
	previewHub := do.MustInvoke[*hub.Hub](injector)
	translator := do.MustInvoke[*i18n.Translator](injector)

	registry.Set(reg, registry.APIClientKey, client)
	registry.Set(reg, registry.PublisherKey, pubsub.Publisher(bridge))
	registry.Set(reg, registry.SubscriberKey, pubsub.Subscriber(bridge))
	registry.Set(reg, registry.PreviewHubKey, previewHub)
	registry.Set(reg, registry.TranslatorKey, translator)

	if store, ok := app.DraftStore(injector); ok {
		registry.Set(reg, registry.DraftStoreKey, store)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(echomw.RequestID())
	e.Use(appmw.Logger)
	e.Use(echomw.Recover())
	e.Use(session.Middleware(ui.NewSessionStore(cfg.SessionSecret)))

	return &Server{
		E:        e,
		Cfg:      cfg,
		Reg:      reg,
		Injector: injector,
		modules:  app.Modules(),
		bridge:   bridge,
	}
}

// closeServices releases shared services after the modules shut down.
func (s *Server) closeServices() {
	if err := s.bridge.Close(); err != nil {
		slog.Warn("Failed to close pubsub bridge", "error", err)
	}
	if db, err := do.Invoke[*surrealdb.DB](s.Injector); err == nil && db != nil {
		if err := db.Close(context.Background()); err != nil {
			slog.Warn("Failed to close draft database", "error", err)
		}
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

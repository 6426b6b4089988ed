package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumenlearn/pagecraft/internal/app"
	appmw "github.com/lumenlearn/pagecraft/internal/middleware"
)

// RegisterRoutes mounts the health endpoint and boots every module under
// its route prefix. Mutating builder routes require a bearer token; the
// media group additionally carries the rate limiter because uploads are
// the expensive surface.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/builder/landing")
	})

	requireBearer := appmw.RequireBearer(s.Cfg.JWTSecret)
	rateLimiter := appmw.RateLimiter()

	for _, m := range s.modules {
		if err := m.Register(s.Reg); err != nil {
			return err
		}
	}

	for _, m := range s.modules {
		path := app.MountPath(m.Name())
		var g *echo.Group
		switch m.Name() {
		case "media":
			g = s.E.Group(path, requireBearer, rateLimiter)
		case "previewstream":
			// Previews are read-only; the websocket stays open to
			// unauthenticated viewers.
			g = s.E.Group(path)
		default:
			g = s.E.Group(path, requireBearer)
		}
		if err := m.Boot(ctx, g, s.Reg); err != nil {
			return err
		}
	}
	return nil
}

package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Start boots the modules, runs the HTTP server, and blocks until a
// shutdown signal arrives.
func (s *Server) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.RegisterRoutes(ctx); err != nil {
		fatal("Failed to boot modules", err)
	}

	go func() {
		if err := s.E.Start(s.Cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			fatal("Server stopped unexpectedly", err)
		}
	}()

	waitForShutdown()
	slog.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Stop background work first so nothing publishes into a closing bus.
	cancel()
	for _, m := range s.modules {
		if err := m.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
	s.closeServices()

	if err := s.E.Shutdown(shutdownCtx); err != nil {
		fatal("Graceful shutdown failed", err)
	}
	slog.Info("Server stopped")
}

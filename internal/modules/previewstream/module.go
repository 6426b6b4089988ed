// Package previewstream pushes envelope updates to live preview clients
// over websockets. Updates arrive on the bus from the builder modules
// (already debounced at the source), fan out through the hub, and each
// connected preview tab re-renders from the received envelope JSON.
package previewstream

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"

	"github.com/lumenlearn/pagecraft/internal/hub"
	"github.com/lumenlearn/pagecraft/internal/module"
	"github.com/lumenlearn/pagecraft/internal/pubsub"
	"github.com/lumenlearn/pagecraft/internal/registry"
)

// Module wires the live preview stream into the application.
type Module struct {
	module.BaseModule

	hub     *hub.Hub
	watcher *SeedsWatcher
}

// New creates the preview stream module.
func New() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "previewstream"
}

// Boot starts the hub, bridges bus updates into it, mounts the websocket
// route, and (in development) starts the seeds watcher.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	m.hub = registry.MustGet(reg, registry.PreviewHubKey)
	subscriber := registry.MustGet(reg, registry.SubscriberKey)

	go m.hub.Run()

	go func() {
		err := subscriber.Subscribe(ctx, pubsub.TopicEnvelopeUpdated, func(ctx context.Context, msg pubsub.Message) error {
			m.hub.Broadcast <- msg.Payload
			return nil
		})
		if err != nil && ctx.Err() == nil {
			slog.Error("Preview subscription ended", "error", err)
		}
	}()

	cfg := reg.Config()
	if cfg.SeedsDir != "" {
		publisher := registry.MustGet(reg, registry.PublisherKey)
		watcher, err := NewSeedsWatcher(cfg.SeedsDir, publisher)
		if err != nil {
			slog.Warn("Seeds watcher disabled", "dir", cfg.SeedsDir, "error", err)
		} else {
			m.watcher = watcher
			go m.watcher.Run(ctx)
		}
	}

	g.GET("/ws", m.ServeWS)
	slog.Info("Booted preview stream")
	return nil
}

// Shutdown stops the hub and the seeds watcher.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.watcher != nil {
		m.watcher.Close()
	}
	if m.hub != nil {
		m.hub.Stop()
	}
	return nil
}

// ServeWS upgrades the connection and pumps hub payloads to the client
// until either side goes away.
func (m *Module) ServeWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Error("Failed to upgrade preview websocket", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to upgrade to WebSocket")
	}

	sub := hub.NewSubscriber()
	m.hub.Register <- sub

	ctx := c.Request().Context()
	defer func() {
		// The hub may already be stopped during shutdown, so don't block
		// on the unregister handshake.
		select {
		case m.hub.Unregister <- sub:
		case <-time.After(time.Second):
		}
		conn.Close(websocket.StatusNormalClosure, "bye")
	}()

	// Read pump: we expect no client messages, but reading surfaces the
	// close frame.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case payload, ok := <-sub.Send:
			if !ok {
				return nil
			}
			if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
				return nil
			}
		case <-readDone:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

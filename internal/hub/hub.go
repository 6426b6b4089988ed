// Package hub is the fan-out point for live preview updates: rendered
// envelope payloads come in on Broadcast and go out to every connected
// preview client.
package hub

import "log/slog"

// Subscriber represents a single preview client. The Hub sends payloads
// to Send; the client's websocket pump reads from it.
type Subscriber struct {
	// Send is a buffered channel of outbound payloads.
	Send chan []byte
}

// NewSubscriber creates a subscriber with a small send buffer so one
// lagging preview tab cannot stall the others.
func NewSubscriber() *Subscriber {
	return &Subscriber{Send: make(chan []byte, 16)}
}

// Hub maintains the set of active preview subscribers and broadcasts
// payloads to them.
type Hub struct {
	subscribers map[*Subscriber]bool

	// Broadcast is the channel for inbound payloads.
	Broadcast chan []byte

	// Register and Unregister manage subscriber membership.
	Register   chan *Subscriber
	Unregister chan *Subscriber

	done chan struct{}
}

// New creates a Hub. Run must be started in its own goroutine.
func New() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte),
		Register:    make(chan *Subscriber),
		Unregister:  make(chan *Subscriber),
		subscribers: make(map[*Subscriber]bool),
		done:        make(chan struct{}),
	}
}

// Run processes registration and broadcast events until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			for sub := range h.subscribers {
				close(sub.Send)
				delete(h.subscribers, sub)
			}
			return

		case sub := <-h.Register:
			h.subscribers[sub] = true
			slog.Debug("Preview subscriber registered", "total", len(h.subscribers))

		case sub := <-h.Unregister:
			if _, ok := h.subscribers[sub]; ok {
				delete(h.subscribers, sub)
				close(sub.Send)
				slog.Debug("Preview subscriber unregistered", "total", len(h.subscribers))
			}

		case payload := <-h.Broadcast:
			for sub := range h.subscribers {
				// Non-blocking send: a full buffer means the client is
				// lagging or gone, so it gets dropped.
				select {
				case sub.Send <- payload:
				default:
					close(sub.Send)
					delete(h.subscribers, sub)
					slog.Warn("Dropping slow preview subscriber", "total", len(h.subscribers))
				}
			}
		}
	}
}

// Stop terminates the Run loop and disconnects all subscribers.
func (h *Hub) Stop() {
	close(h.done)
}

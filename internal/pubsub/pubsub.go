package pubsub

import (
	"context"
)

// Topics used by the builder modules.
const (
	// TopicEnvelopeUpdated carries the full envelope JSON after every
	// orchestrator mutation. Preview consumers re-render from it.
	TopicEnvelopeUpdated = "builder.envelope.updated"

	// TopicEnvelopeSaved is published after a successful remote save.
	TopicEnvelopeSaved = "builder.envelope.saved"
)

// Message is the structure passed between components on the bus.
// It is intentionally simple to act as a wrapper for raw data.
type Message struct {
	// Topic identifies the channel the message belongs to.
	Topic string
	// Scope identifies the envelope the message concerns ("landing",
	// "profile", or a seed fixture name).
	Scope string
	// Payload contains the raw message data (envelope JSON).
	Payload []byte
	// Metadata can contain arbitrary key-value pairs for context.
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the Pub/Sub system.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the Pub/Sub system.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages
	// with the handler. It blocks until the context is canceled or an
	// irrecoverable error occurs.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridge_PublishSubscribe(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	go func() {
		_ = bridge.Subscribe(ctx, "envelope.updated", func(ctx context.Context, msg Message) error {
			received <- msg
			return nil
		})
	}()

	// GoChannel drops messages published before the subscription exists,
	// so give the subscriber a moment to attach.
	time.Sleep(50 * time.Millisecond)

	err := bridge.Publish(ctx, Message{
		Topic:    "envelope.updated",
		Scope:    "landing",
		Payload:  []byte(`{"sections":[]}`),
		Metadata: map[string]string{"origin": "test"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "envelope.updated", msg.Topic)
		assert.Equal(t, "landing", msg.Scope)
		assert.JSONEq(t, `{"sections":[]}`, string(msg.Payload))
		assert.Equal(t, "test", msg.Metadata["origin"])
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestWatermillBridge_HandlerErrorDoesNotStallChannel(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := make(chan string, 2)
	go func() {
		_ = bridge.Subscribe(ctx, "t", func(ctx context.Context, msg Message) error {
			seen <- string(msg.Payload)
			return assert.AnError
		})
	}()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, bridge.Publish(ctx, Message{Topic: "t", Payload: []byte("one")}))
	require.NoError(t, bridge.Publish(ctx, Message{Topic: "t", Payload: []byte("two")}))

	for _, want := range []string{"one", "two"} {
		select {
		case got := <-seen:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("did not receive %q; a failed handler must not stall the channel", want)
		}
	}
}

func TestWatermillBridge_SubscribeStopsOnCancel(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- bridge.Subscribe(ctx, "t", func(ctx context.Context, msg Message) error { return nil })
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("subscribe did not return after cancel")
	}
}

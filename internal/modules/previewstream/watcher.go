package previewstream

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/lumenlearn/pagecraft/internal/pubsub"
)

// SeedsWatcher watches a directory of envelope JSON fixtures and pushes
// each changed file onto the bus as an envelope update. It exists for
// development: designers drop seed documents in the directory and every
// connected preview re-renders.
type SeedsWatcher struct {
	dir       string
	publisher pubsub.Publisher
	watcher   *fsnotify.Watcher
}

// NewSeedsWatcher creates a watcher over the given directory.
func NewSeedsWatcher(dir string, publisher pubsub.Publisher) (*SeedsWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return &SeedsWatcher{dir: dir, publisher: publisher, watcher: w}, nil
}

// Run processes filesystem events until the context is canceled or the
// watcher is closed.
func (s *SeedsWatcher) Run(ctx context.Context) {
	slog.Info("Watching seeds directory", "dir", s.dir)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			s.publish(ctx, event.Name)

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Seeds watcher error", "error", err)
		}
	}
}

// Close stops the watcher.
func (s *SeedsWatcher) Close() error {
	return s.watcher.Close()
}

func (s *SeedsWatcher) publish(ctx context.Context, name string) {
	payload, err := os.ReadFile(name)
	if err != nil {
		slog.Warn("Could not read seed file", "file", name, "error", err)
		return
	}

	scope := strings.TrimSuffix(filepath.Base(name), ".json")
	if err := s.publisher.Publish(ctx, pubsub.Message{
		Topic:   pubsub.TopicEnvelopeUpdated,
		Scope:   scope,
		Payload: payload,
	}); err != nil {
		slog.Warn("Could not publish seed update", "file", name, "error", err)
		return
	}
	slog.Debug("Published seed envelope", "scope", scope)
}

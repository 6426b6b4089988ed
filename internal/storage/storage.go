// Package storage provides the file storage backend for uploaded media.
// The afero filesystem abstraction keeps the same implementation usable
// against the OS filesystem in production and an in-memory filesystem in
// tests.
package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store defines the interface for a media storage backend.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}

// AferoStore implements Store over any afero filesystem.
type AferoStore struct {
	fs   afero.Fs
	root string
}

// NewAferoStore creates a store rooted at the given directory.
func NewAferoStore(fs afero.Fs, root string) *AferoStore {
	return &AferoStore{fs: fs, root: root}
}

// Save writes the reader's content to path under the store root and
// returns the number of bytes written.
func (s *AferoStore) Save(ctx context.Context, path string, reader io.Reader) (int64, error) {
	full := filepath.Join(s.root, path)
	if err := s.fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return 0, err
	}
	f, err := s.fs.Create(full)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, reader)
}

// Open opens a stored file for reading.
func (s *AferoStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.fs.OpenFile(filepath.Join(s.root, path), os.O_RDONLY, 0)
}

// Delete removes a stored file.
func (s *AferoStore) Delete(ctx context.Context, path string) error {
	return s.fs.Remove(filepath.Join(s.root, path))
}

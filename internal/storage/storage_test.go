package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore(t *testing.T) {
	ctx := context.Background()
	store := NewAferoStore(afero.NewMemMapFs(), "media")

	t.Run("save creates parent directories", func(t *testing.T) {
		n, err := store.Save(ctx, "landing/a.png", strings.NewReader("pngbytes"))
		require.NoError(t, err)
		assert.Equal(t, int64(len("pngbytes")), n)
	})

	t.Run("open reads back what was saved", func(t *testing.T) {
		f, err := store.Open(ctx, "landing/a.png")
		require.NoError(t, err)
		defer f.Close()

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "pngbytes", string(data))
	})

	t.Run("open of a missing file errors", func(t *testing.T) {
		_, err := store.Open(ctx, "landing/missing.png")
		assert.Error(t, err)
	})

	t.Run("delete removes the file", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "landing/a.png"))
		_, err := store.Open(ctx, "landing/a.png")
		assert.Error(t, err)
	})
}

package previews

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(filename string) string {
	return "https://cdn.test/" + filename
}

func orders(l *List) []int {
	out := []int{}
	for _, p := range l.Items() {
		out = append(out, p.Order)
	}
	return out
}

func ids(l *List) []string {
	out := []string{}
	for _, p := range l.Items() {
		out = append(out, p.ID)
	}
	return out
}

func TestLoad(t *testing.T) {
	t.Run("empty config", func(t *testing.T) {
		l, err := Load(nil, resolve)
		require.NoError(t, err)
		assert.Empty(t, l.Items())
	})

	t.Run("malformed config errors", func(t *testing.T) {
		_, err := Load([]byte(`{"images": 12}`), resolve)
		assert.Error(t, err)
	})

	t.Run("videos fall in after images when unordered", func(t *testing.T) {
		l, err := Load([]byte(`{
			"images": [{"filename":"a.png"},{"filename":"b.png"}],
			"videos": [{"id":"yt1","url":"https://youtu.be/yt1","type":"youtube"}]
		}`), resolve)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.png", "b.png", "yt1"}, ids(l))
		assert.Equal(t, []int{0, 1, 2}, orders(l))
	})

	t.Run("stored order wins and is renumbered", func(t *testing.T) {
		l, err := Load([]byte(`{
			"images": [{"filename":"a.png","order":7},{"filename":"b.png","order":2}],
			"videos": [{"id":"yt1","url":"u","type":"youtube","order":5}]
		}`), resolve)
		require.NoError(t, err)
		assert.Equal(t, []string{"b.png", "yt1", "a.png"}, ids(l))
		assert.Equal(t, []int{0, 1, 2}, orders(l), "orders are contiguous and zero-based")
	})

	t.Run("blank image entries are skipped", func(t *testing.T) {
		l, err := Load([]byte(`{"images":[{"filename":""},{"filename":"a.png"}]}`), resolve)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.png"}, ids(l))
	})

	t.Run("image urls go through the resolver", func(t *testing.T) {
		l, err := Load([]byte(`{"images":[{"filename":"a.png"}]}`), resolve)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test/a.png", l.Items()[0].URL)
	})

	t.Run("youtube items get a thumbnail", func(t *testing.T) {
		l, err := Load([]byte(`{"videos":[{"id":"abc","url":"u","type":"youtube"}]}`), resolve)
		require.NoError(t, err)
		assert.Contains(t, l.Items()[0].ThumbnailURL, "img.youtube.com/vi/abc")
	})
}

func TestList_Mutations(t *testing.T) {
	seed := func(t *testing.T) *List {
		t.Helper()
		l, err := Load([]byte(`{
			"images": [{"filename":"a.png"},{"filename":"b.png"},{"filename":"c.png"}]
		}`), resolve)
		require.NoError(t, err)
		return l
	}

	t.Run("append lands at the end", func(t *testing.T) {
		l := seed(t)
		l.Append(Preview{ID: "loom1", URL: "u", Type: KindLoom})
		assert.Equal(t, []string{"a.png", "b.png", "c.png", "loom1"}, ids(l))
		assert.Equal(t, []int{0, 1, 2, 3}, orders(l))
	})

	t.Run("remove closes the gap", func(t *testing.T) {
		l := seed(t)
		l.Remove("b.png")
		assert.Equal(t, []string{"a.png", "c.png"}, ids(l))
		assert.Equal(t, []int{0, 1}, orders(l))
	})

	t.Run("remove of an absent id is a no-op", func(t *testing.T) {
		l := seed(t)
		l.Remove("nope")
		assert.Len(t, l.Items(), 3)
	})

	t.Run("reorder moves and renumbers", func(t *testing.T) {
		l := seed(t)
		require.NoError(t, l.Reorder(0, 2))
		assert.Equal(t, []string{"b.png", "c.png", "a.png"}, ids(l))
		assert.Equal(t, []int{0, 1, 2}, orders(l))
	})

	t.Run("reorder out of range errors", func(t *testing.T) {
		l := seed(t)
		assert.Error(t, l.Reorder(0, 3))
		assert.Error(t, l.Reorder(-1, 0))
	})
}

func TestStoredRoundTrip(t *testing.T) {
	l, err := Load([]byte(`{
		"images": [{"filename":"a.png"},{"filename":"b.png"}],
		"videos": [{"id":"yt1","url":"https://youtu.be/yt1","type":"youtube"}]
	}`), resolve)
	require.NoError(t, err)
	require.NoError(t, l.Reorder(2, 0))

	stored := l.Stored()
	require.Len(t, stored.Images, 2)
	require.Len(t, stored.Videos, 1)
	require.NotNil(t, stored.Videos[0].Order)
	assert.Equal(t, 0, *stored.Videos[0].Order, "the moved video keeps its new slot")

	// Reloading the persisted shape reproduces the same order.
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	again, err := Load(raw, resolve)
	require.NoError(t, err)
	assert.Equal(t, ids(l), ids(again))
}

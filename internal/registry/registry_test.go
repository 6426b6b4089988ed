package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/pagecraft/internal/testutils"
)

type fakeService struct {
	name string
}

func TestSetAndGet(t *testing.T) {
	r := New(testutils.ConfigForTests(t))
	key := Key[*fakeService]("test.service")

	svc := &fakeService{name: "primary"}
	Set(r, key, svc)

	got, ok := Get(r, key)
	require.True(t, ok)
	assert.Same(t, svc, got)
}

func TestGet_Missing(t *testing.T) {
	r := New(testutils.ConfigForTests(t))

	got, ok := Get(r, Key[*fakeService]("absent"))
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMustGet(t *testing.T) {
	r := New(testutils.ConfigForTests(t))
	key := Key[string]("test.value")
	Set(r, key, "hello")

	assert.Equal(t, "hello", MustGet(r, key))
	assert.Panics(t, func() {
		MustGet(r, Key[string]("missing"))
	})
}

func TestConfig(t *testing.T) {
	cfg := testutils.ConfigForTests(t)
	r := New(cfg)
	assert.Same(t, cfg, r.Config())
}

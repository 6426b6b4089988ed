package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("minimal valid document", func(t *testing.T) {
		issues, err := Validate([]byte(`{"sections":[]}`))
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("full document", func(t *testing.T) {
		issues, err := Validate([]byte(`{
			"sections": [
				{"id":"a","type":"hero","title":"Hero Section"},
				{"id":"cta","type":"finalCta","title":[{"text":"Go"}]}
			],
			"enabled": true,
			"schemaVersion": 2,
			"navbar": {"brandTitle":"NEXUS","links":[{"label":"Inicio","href":"#inicio"}]}
		}`))
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("missing sections", func(t *testing.T) {
		issues, err := Validate([]byte(`{"enabled":true}`))
		require.NoError(t, err)
		assert.NotEmpty(t, issues)
	})

	t.Run("section without a type", func(t *testing.T) {
		issues, err := Validate([]byte(`{"sections":[{"id":"a"}]}`))
		require.NoError(t, err)
		assert.NotEmpty(t, issues)
	})

	t.Run("schemaVersion outside the enum", func(t *testing.T) {
		issues, err := Validate([]byte(`{"sections":[],"schemaVersion":3}`))
		require.NoError(t, err)
		assert.NotEmpty(t, issues)
	})

	t.Run("pricing feature state enum", func(t *testing.T) {
		issues, err := Validate([]byte(`{
			"sections": [{
				"id":"p","type":"pricing",
				"plans":[{"features":[{"text":"x","state":"maybe"}]}]
			}]
		}`))
		require.NoError(t, err)
		assert.NotEmpty(t, issues)
	})

	t.Run("navbar link without href", func(t *testing.T) {
		issues, err := Validate([]byte(`{"sections":[],"navbar":{"links":[{"label":"x"}]}}`))
		require.NoError(t, err)
		assert.NotEmpty(t, issues)
	})

	t.Run("unparseable document errors", func(t *testing.T) {
		_, err := Validate([]byte(`{`))
		assert.Error(t, err)
	})
}

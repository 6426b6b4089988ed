package builder

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSection_KnownTag(t *testing.T) {
	reg := testRegistry(t)
	s, err := reg.DecodeSection(json.RawMessage(`{"id":"section-1","type":"note","note":"hi"}`))
	require.NoError(t, err)

	note, ok := s.(noteSection)
	require.True(t, ok)
	assert.Equal(t, "section-1", note.SectionID())
	assert.Equal(t, "hi", note.Note)
}

func TestDecodeSection_UnknownTagPreservesRaw(t *testing.T) {
	reg := testRegistry(t)
	raw := []byte(`{"id":"s-9","type":"holographic-banner","payload":{"depth":3,"layers":["a","b"]}}`)

	s, err := reg.DecodeSection(raw)
	require.NoError(t, err, "unknown tags must not be rejected")

	unknown, ok := s.(UnknownSection)
	require.True(t, ok)
	assert.Equal(t, "holographic-banner", unknown.Kind())
	assert.Equal(t, "s-9", unknown.SectionID())

	// The re-marshalled bytes are the original payload, field for field.
	out, err := json.Marshal(s)
	require.NoError(t, err)

	var want, got map[string]any
	require.NoError(t, json.Unmarshal(raw, &want))
	require.NoError(t, json.Unmarshal(out, &got))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unknown section did not round-trip (-want +got):\n%s", diff)
	}
}

func TestDecodeEnvelope_MixedVocabulary(t *testing.T) {
	reg := testRegistry(t)
	doc := []byte(`{
		"sections": [
			{"id":"a","type":"note","note":"one"},
			{"id":"b","type":"mystery","extra":42},
			{"id":"c","type":"note","note":"two"}
		],
		"enabled": true,
		"schemaVersion": 1
	}`)

	env, err := reg.DecodeEnvelope(doc)
	require.NoError(t, err)
	require.Len(t, env.Sections, 3)
	assert.IsType(t, noteSection{}, env.Sections[0])
	assert.IsType(t, UnknownSection{}, env.Sections[1])
	assert.IsType(t, noteSection{}, env.Sections[2])

	// A full round trip keeps the unknown member and the section order.
	out, err := json.Marshal(env)
	require.NoError(t, err)
	again, err := reg.DecodeEnvelope(out)
	require.NoError(t, err)
	require.Len(t, again.Sections, 3)
	assert.Equal(t, "mystery", again.Sections[1].Kind())
}

func TestHydrateEnvelope_Lenient(t *testing.T) {
	reg := testRegistry(t)

	t.Run("empty input", func(t *testing.T) {
		env := reg.HydrateEnvelope(nil)
		assert.Empty(t, env.Sections)
		assert.False(t, env.Enabled)
	})

	t.Run("malformed input degrades to empty", func(t *testing.T) {
		env := reg.HydrateEnvelope([]byte(`{"sections": "not-an-array"}`))
		assert.Empty(t, env.Sections)
	})
}

func TestRegistry_NewEmpty(t *testing.T) {
	reg := testRegistry(t)

	s, err := reg.NewEmpty("note")
	require.NoError(t, err)
	assert.Equal(t, "note", s.Kind())

	_, err = reg.NewEmpty("absent")
	assert.Error(t, err)
}

func TestRegistry_TagsOrder(t *testing.T) {
	reg := testRegistry(t)
	assert.Equal(t, []string{"note", "divider"}, reg.Tags(), "menu order follows registration order")
}

package builder

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noteSection struct {
	Base
	Note string `json:"note"`
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	reg.Register("note", Entry{
		Meta: Meta{Label: "Note"},
		New: func() Section {
			return noteSection{Base: NewBase("note", "Note Section")}
		},
		Decode: DecodeAs[noteSection],
	})
	reg.Register("divider", Entry{
		Meta: Meta{Label: "Divider"},
		New: func() Section {
			return noteSection{Base: NewBase("divider", "Divider")}
		},
		Decode: DecodeAs[noteSection],
	})
	return reg
}

func sectionWith(tag, note string) noteSection {
	return noteSection{Base: NewBase(tag, "t"), Note: note}
}

func hydrated(t *testing.T, notes ...string) *Orchestrator {
	t.Helper()
	o := NewOrchestrator(testRegistry(t), Options{})
	sections := make([]Section, 0, len(notes))
	for _, n := range notes {
		sections = append(sections, sectionWith("note", n))
	}
	o.Hydrate(Envelope{Sections: sections})
	return o
}

func notes(o *Orchestrator) []string {
	out := []string{}
	for _, s := range o.Sections() {
		out = append(out, s.(noteSection).Note)
	}
	return out
}

func TestOrchestrator_AddSection(t *testing.T) {
	t.Run("appends at the end", func(t *testing.T) {
		o := hydrated(t, "a")
		s, err := o.AddSection("note")
		require.NoError(t, err)
		assert.Equal(t, "note", s.Kind())
		assert.NotEmpty(t, s.SectionID())
		assert.Len(t, o.Sections(), 2)
	})

	t.Run("unknown tag errors", func(t *testing.T) {
		o := hydrated(t)
		_, err := o.AddSection("nope")
		require.Error(t, err)
		assert.Empty(t, o.Sections())
	})

	t.Run("no auto select by default", func(t *testing.T) {
		o := hydrated(t)
		_, err := o.AddSection("note")
		require.NoError(t, err)
		_, ok := o.Selected()
		assert.False(t, ok)
	})

	t.Run("auto select when configured", func(t *testing.T) {
		o := NewOrchestrator(testRegistry(t), Options{AutoSelectOnAdd: true})
		_, err := o.AddSection("note")
		require.NoError(t, err)
		idx, ok := o.Selected()
		require.True(t, ok)
		assert.Equal(t, 0, idx)
	})
}

func TestOrchestrator_UpdateSection(t *testing.T) {
	o := hydrated(t, "a", "b", "c")
	require.NoError(t, o.UpdateSection(1, sectionWith("note", "B")))
	assert.Equal(t, []string{"a", "B", "c"}, notes(o))

	err := o.UpdateSection(3, sectionWith("note", "x"))
	assert.Error(t, err)
}

func TestOrchestrator_DeleteSection(t *testing.T) {
	t.Run("removes and keeps order", func(t *testing.T) {
		o := hydrated(t, "a", "b", "c")
		require.NoError(t, o.DeleteSection(1))
		assert.Equal(t, []string{"a", "c"}, notes(o))
	})

	t.Run("deleting the selected section clears selection", func(t *testing.T) {
		o := hydrated(t, "a", "b")
		require.NoError(t, o.Select(1))
		require.NoError(t, o.DeleteSection(1))
		_, ok := o.Selected()
		assert.False(t, ok)
	})

	t.Run("selection past the deleted index shifts down", func(t *testing.T) {
		o := hydrated(t, "a", "b", "c")
		require.NoError(t, o.Select(2))
		require.NoError(t, o.DeleteSection(0))
		idx, ok := o.Selected()
		require.True(t, ok)
		assert.Equal(t, 1, idx)
		assert.Equal(t, "c", notes(o)[idx])
	})

	t.Run("out of range errors", func(t *testing.T) {
		o := hydrated(t, "a")
		assert.Error(t, o.DeleteSection(-1))
		assert.Error(t, o.DeleteSection(1))
	})
}

func TestOrchestrator_Reorder(t *testing.T) {
	t.Run("remove then reinsert", func(t *testing.T) {
		o := hydrated(t, "A", "B", "C", "D")
		require.NoError(t, o.Reorder(0, 2))
		assert.Equal(t, []string{"B", "C", "A", "D"}, notes(o))
	})

	t.Run("selection follows the moved section", func(t *testing.T) {
		o := hydrated(t, "A", "B", "C")
		require.NoError(t, o.Reorder(2, 0))
		idx, ok := o.Selected()
		require.True(t, ok)
		assert.Equal(t, 0, idx)
		assert.Equal(t, []string{"C", "A", "B"}, notes(o))
	})

	t.Run("out of range errors", func(t *testing.T) {
		o := hydrated(t, "A", "B")
		assert.Error(t, o.Reorder(0, 2))
		assert.Error(t, o.Reorder(-1, 0))
	})
}

func TestOrchestrator_SaveGuard(t *testing.T) {
	o := hydrated(t, "a")
	require.True(t, o.BeginSave())
	assert.False(t, o.BeginSave(), "second save must be refused while one is in flight")
	assert.True(t, o.Saving())

	// The envelope stays editable during a save.
	_, err := o.AddSection("note")
	require.NoError(t, err)

	o.EndSave()
	assert.True(t, o.BeginSave())
	o.EndSave()
}

func TestOrchestrator_OnChange(t *testing.T) {
	o := hydrated(t)

	var mu sync.Mutex
	var got []int
	o.SetOnChange(func(env Envelope) {
		mu.Lock()
		got = append(got, len(env.Sections))
		mu.Unlock()
	})

	_, err := o.AddSection("note")
	require.NoError(t, err)
	require.NoError(t, o.DeleteSection(0))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 0}, got)
}

func TestOrchestrator_EnvelopeRoundTrip(t *testing.T) {
	reg := testRegistry(t)
	o := NewOrchestrator(reg, Options{})
	o.Hydrate(Envelope{
		Sections:      []Section{sectionWith("note", "hello")},
		Enabled:       true,
		SchemaVersion: 2,
		Navbar:        &NavbarConfig{BrandTitle: "Nexus"},
	})

	raw, err := json.Marshal(o.Envelope())
	require.NoError(t, err)

	env, err := reg.DecodeEnvelope(raw)
	require.NoError(t, err)
	assert.True(t, env.Enabled)
	assert.Equal(t, 2, env.SchemaVersion)
	require.NotNil(t, env.Navbar)
	assert.Equal(t, "Nexus", env.Navbar.BrandTitle)
	require.Len(t, env.Sections, 1)
	assert.Equal(t, "hello", env.Sections[0].(noteSection).Note)
}

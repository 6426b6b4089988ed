package builder

import (
	"encoding/json"
	"fmt"

	"github.com/lumenlearn/pagecraft/internal/domain"
)

// Meta describes a section type for list display: an icon key (mapped to
// the icon set by the UI layer), a human label and a short description.
type Meta struct {
	IconKey     string
	Label       string
	Description string
}

// Entry binds a section tag to its display metadata, its empty-section
// factory and its JSON decoder.
type Entry struct {
	Meta   Meta
	New    func() Section
	Decode func(raw json.RawMessage) (Section, error)
}

// Registry maps section tags to their entries. Registration order is
// preserved and drives the "add section" menu order.
type Registry struct {
	order   []string
	entries map[string]Entry
}

// NewRegistry returns an empty section type registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds an entry for a tag. Registering the same tag twice is a
// programming error and panics at startup.
func (r *Registry) Register(tag string, e Entry) {
	if _, dup := r.entries[tag]; dup {
		panic(fmt.Sprintf("builder: duplicate section type %q", tag))
	}
	r.order = append(r.order, tag)
	r.entries[tag] = e
}

// Tags returns all registered tags in registration order.
func (r *Registry) Tags() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the entry for a tag.
func (r *Registry) Lookup(tag string) (Entry, bool) {
	e, ok := r.entries[tag]
	return e, ok
}

// NewEmpty invokes the empty-section factory for a tag.
func (r *Registry) NewEmpty(tag string) (Section, error) {
	e, ok := r.entries[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSectionType, tag)
	}
	return e.New(), nil
}

// DecodeSection decodes one raw section object. An unregistered tag is
// absorbed into an UnknownSection rather than surfaced as an error: a
// malformed or future-versioned section must not break the whole
// document. Decode errors of a known tag are real errors.
func (r *Registry) DecodeSection(raw json.RawMessage) (Section, error) {
	var probe struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("section is not an object: %w", err)
	}

	e, ok := r.entries[probe.Type]
	if !ok {
		return UnknownSection{ID: probe.ID, Type: probe.Type, Raw: append(json.RawMessage(nil), raw...)}, nil
	}

	s, err := e.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %q section: %w", probe.Type, err)
	}
	if n, ok := s.(Normalizer); ok {
		s = n.Normalize()
	}
	return s, nil
}

// DecodeAs is the generic decoder used by vocabulary packages when
// registering their concrete types.
func DecodeAs[T Section](raw json.RawMessage) (Section, error) {
	var s T
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return s, nil
}

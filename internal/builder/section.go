// Package builder implements the section-based content builder core: the
// tagged-union section model, the section type registry, the envelope
// document and its JSON codec, and the orchestrator that owns the
// in-memory section list. Page vocabularies (landing, profile) register
// their concrete section types against this package.
package builder

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Section is one editable, typed block of content within a page envelope.
type Section interface {
	// SectionID returns the stable identifier assigned at creation.
	SectionID() string
	// Kind returns the discriminant tag of the section variant.
	Kind() string
}

// Normalizer is implemented by sections that need invariant repair after
// decoding or editing (e.g. experience entries clearing endDate while
// current is set). The registry applies it on every decode.
type Normalizer interface {
	Normalize() Section
}

// Base carries the fields shared by every section variant. Concrete
// sections embed it so the JSON shape stays flat.
type Base struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
}

func (b Base) SectionID() string { return b.ID }
func (b Base) Kind() string      { return b.Type }

// NewBase creates the shared fields for a freshly added section.
func NewBase(tag, title string) Base {
	return Base{
		ID:    NewSectionID(),
		Type:  tag,
		Title: title,
	}
}

// NewSectionID returns a stable section identifier.
func NewSectionID() string {
	return "section-" + uuid.NewString()
}

// UnknownSection preserves a section whose tag is not registered. It is
// rendered as an inert placeholder and re-emitted verbatim on save, so a
// future-versioned document survives an edit round-trip untouched.
type UnknownSection struct {
	ID   string
	Type string
	Raw  json.RawMessage
}

func (s UnknownSection) SectionID() string { return s.ID }
func (s UnknownSection) Kind() string      { return s.Type }

// MarshalJSON re-emits the original bytes.
func (s UnknownSection) MarshalJSON() ([]byte, error) {
	return s.Raw, nil
}

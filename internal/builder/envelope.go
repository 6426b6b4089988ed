package builder

import (
	"encoding/json"
	"fmt"
)

// NavbarLink is one entry in the landing navbar. Href can be an anchor
// like "#como-funciona" or any path.
type NavbarLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// NavbarConfig is the page-level navbar shared by v2 landing sections.
type NavbarConfig struct {
	BrandTitle    string       `json:"brandTitle"`
	BrandSubtitle string       `json:"brandSubtitle"`
	Links         []NavbarLink `json:"links"`
	CTALabel      string       `json:"ctaLabel"`
	CTAHref       string       `json:"ctaHref"`
}

// Envelope is the full persisted document for one landing or profile
// page: the ordered sections plus page-level flags. Section order is the
// sole source of render order.
type Envelope struct {
	Sections      []Section
	Enabled       bool
	SchemaVersion int
	Navbar        *NavbarConfig
}

type envelopeJSON struct {
	Sections      []json.RawMessage `json:"sections"`
	Enabled       bool              `json:"enabled"`
	SchemaVersion int               `json:"schemaVersion,omitempty"`
	Navbar        *NavbarConfig     `json:"navbar,omitempty"`
}

// MarshalJSON serializes the envelope as a single document. Sections are
// marshalled individually so UnknownSection values re-emit their original
// bytes.
func (e Envelope) MarshalJSON() ([]byte, error) {
	doc := envelopeJSON{
		Sections:      make([]json.RawMessage, 0, len(e.Sections)),
		Enabled:       e.Enabled,
		SchemaVersion: e.SchemaVersion,
		Navbar:        e.Navbar,
	}
	for i, s := range e.Sections {
		raw, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("marshalling section %d (%s): %w", i, s.Kind(), err)
		}
		doc.Sections = append(doc.Sections, raw)
	}
	return json.Marshal(doc)
}

// DecodeEnvelope parses an envelope document using the registry's section
// decoders. Unknown section tags are preserved, not rejected.
func (r *Registry) DecodeEnvelope(data []byte) (Envelope, error) {
	var doc envelopeJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return Envelope{}, fmt.Errorf("decoding envelope: %w", err)
	}

	env := Envelope{
		Sections:      make([]Section, 0, len(doc.Sections)),
		Enabled:       doc.Enabled,
		SchemaVersion: doc.SchemaVersion,
		Navbar:        doc.Navbar,
	}
	for i, raw := range doc.Sections {
		s, err := r.DecodeSection(raw)
		if err != nil {
			return Envelope{}, fmt.Errorf("section %d: %w", i, err)
		}
		env.Sections = append(env.Sections, s)
	}
	return env, nil
}

// HydrateEnvelope is the lenient entry point used on mount: an absent or
// malformed remote config degrades to an empty, disabled envelope so the
// builder stays usable even when hydration fails.
func (r *Registry) HydrateEnvelope(data []byte) Envelope {
	if len(data) == 0 {
		return Envelope{}
	}
	env, err := r.DecodeEnvelope(data)
	if err != nil {
		return Envelope{}
	}
	return env
}

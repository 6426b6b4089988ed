// Package schema validates envelope documents against the embedded JSON
// Schema. Validation is advisory for the builder (a failing document
// still saves, matching the cosmetic-only validation policy) but the CLI
// uses it as a hard check.
package schema

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed envelope.schema.json
var envelopeSchema []byte

// Validate checks an envelope document. It returns the list of schema
// violations (empty when the document is valid). The error return is for
// documents that could not be evaluated at all.
func Validate(doc []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewBytesLoader(envelopeSchema)
	docLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		issues = append(issues, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return issues, nil
}

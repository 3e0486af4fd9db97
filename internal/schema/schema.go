package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema definition for a document the app reads
// from disk or from the embedded catalog.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "question-catalog".
	Name string

	// Description is a human-readable description of the document.
	Description string

	// Definition is the JSON Schema itself.
	Definition map[string]any
}

// ErrInvalidDocument indicates a document that is not JSON or does not
// conform to its schema.
type ErrInvalidDocument struct {
	Schema  string
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid %s document: %v", e.Schema, e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

// compiled caches compiled schemas by name.
var compiled sync.Map // map[string]*jsonschema.Schema

// Validate checks raw JSON against s.
// Returns nil if s is nil or validation passes, *ErrInvalidDocument otherwise.
func Validate(s *Schema, raw []byte) error {
	if s == nil {
		return nil
	}

	// Numbers stay json.Number so "integer" checks are exact.
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidDocument{
			Schema:  s.Name,
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	sch, err := compile(s)
	if err != nil {
		return &ErrInvalidDocument{
			Schema:  s.Name,
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", s.Name, err),
		}
	}

	if err := sch.Validate(doc); err != nil {
		return &ErrInvalidDocument{
			Schema:  s.Name,
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}
	return nil
}

// compile returns a cached compiled schema or compiles and caches it.
func compile(s *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiled.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value, not a Go map with typed slices.
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiled.Store(s.Name, sch)
	return sch, nil
}

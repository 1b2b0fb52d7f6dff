// Package artifact validates persisted model artifacts against JSON Schemas
// before they are decoded into typed structures.
package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// Schema names a JSON Schema document.
type Schema struct {
	Name       string
	Definition []byte
}

// Validate checks raw against schema. Returns *ValidationError on failure.
func Validate(schema Schema, raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ValidationError{Schema: schema.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compile(schema)
	if err != nil {
		return &ValidationError{Schema: schema.Name, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := compiled.Validate(doc); err != nil {
		return &ValidationError{Schema: schema.Name, Err: err}
	}
	return nil
}

// Decode validates raw against schema and then unmarshals it into v.
func Decode(schema Schema, raw []byte, v any) error {
	if err := Validate(schema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &ValidationError{Schema: schema.Name, Err: err}
	}
	return nil
}

func compile(schema Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema.Definition))
	if err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}

// ValidationError indicates an artifact that does not match its schema.
type ValidationError struct {
	Schema string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s artifact: %v", e.Schema, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

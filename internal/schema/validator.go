package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
)

//go:embed document.schema.yaml
var documentSchema []byte

const documentSchemaURI = "litedsl://schemas/document.schema.json"

// Validator handles JSON schema validation of configuration documents
type Validator struct {
	documentSchema *jsonschema.Schema
}

// NewValidator compiles the embedded document schema
func NewValidator() (*Validator, error) {
	schema, err := compile(documentSchemaURI, documentSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to load document schema: %w", err)
	}
	return &Validator{documentSchema: schema}, nil
}

// Validate validates a decoded JSON value against the document schema
func (v *Validator) Validate(data interface{}) error {
	if v.documentSchema == nil {
		return fmt.Errorf("document schema not loaded")
	}
	if err := v.documentSchema.Validate(data); err != nil {
		return fmt.Errorf("%w: %v", dslerrors.ErrSchemaViolation, err)
	}
	return nil
}

// ValidateYAML validates a YAML (or JSON) document
func (v *Validator) ValidateYAML(data []byte) error {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to convert document to JSON: %w", err)
	}
	return v.ValidateJSON(jsonData)
}

// ValidateJSON validates a JSON document
func (v *Validator) ValidateJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to parse JSON document: %w", err)
	}
	return v.Validate(doc)
}

// ValidateValue validates any value that marshals to a document
func (v *Validator) ValidateValue(value interface{}) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to convert document to JSON: %w", err)
	}
	return v.ValidateJSON(jsonData)
}

// compile compiles a schema (JSON or YAML) under uri with a custom LoadURL
func compile(uri string, data []byte) (*jsonschema.Schema, error) {
	// Parse YAML to interface{} (supports both YAML and JSON)
	var schemaData interface{}
	if err := yaml.Unmarshal(data, &schemaData); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}

	// Convert to JSON for schema compiler
	jsonData, err := json.Marshal(schemaData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.LoadURL = func(url string) (io.ReadCloser, error) {
		if url == uri {
			return io.NopCloser(strings.NewReader(string(jsonData))), nil
		}
		return nil, fmt.Errorf("external schema reference not supported: %s", url)
	}

	schema, err := compiler.Compile(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return schema, nil
}

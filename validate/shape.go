package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Shape is an immutable, named description of an expected JSON structure. It is compiled
// once when created and never changes afterward.
type Shape struct {
	name   string
	source map[string]interface{}
	schema *gojsonschema.Schema
}

// NewShape compiles a JSON schema literal into a Shape.
func NewShape(name string, schema map[string]interface{}) (*Shape, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile shape %q: %w", name, err)
	}
	return &Shape{name: name, source: schema, schema: compiled}, nil
}

// MustShape is like NewShape but panics on an invalid schema. It is meant for package-level
// descriptors.
func MustShape(name string, schema map[string]interface{}) *Shape {
	s, err := NewShape(name, schema)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the descriptor's name, as used in violation messages.
func (s *Shape) Name() string { return s.name }

func (s *Shape) String() string { return s.name }

// SchemaViolation means a decoded body does not have the expected shape. It is distinct
// from a value mismatch, where the shape is right but the content is not.
type SchemaViolation struct {
	Shape   string
	Details []string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("response does not match shape %q: %s", e.Shape, strings.Join(e.Details, "; "))
}

// IsSchemaViolation reports whether err is, or wraps, a *SchemaViolation.
func IsSchemaViolation(err error) bool {
	var v *SchemaViolation
	return errors.As(err, &v)
}

// Check returns a *SchemaViolation if body does not conform to shape, and nil otherwise.
// The body may be an ldvalue.Value, raw JSON bytes, or any value that encodes to JSON.
func Check(body interface{}, shape *Shape) error {
	var doc gojsonschema.JSONLoader
	switch b := body.(type) {
	case []byte:
		if !json.Valid(b) {
			return &SchemaViolation{Shape: shape.name, Details: []string{"body is not valid JSON"}}
		}
		doc = gojsonschema.NewBytesLoader(b)
	case ldvalue.Value:
		doc = gojsonschema.NewStringLoader(b.JSONString())
	default:
		doc = gojsonschema.NewGoLoader(body)
	}

	result, err := shape.schema.Validate(doc)
	if err != nil {
		return &SchemaViolation{Shape: shape.name, Details: []string{err.Error()}}
	}
	if result.Valid() {
		return nil
	}
	v := &SchemaViolation{Shape: shape.name}
	for _, desc := range result.Errors() {
		v.Details = append(v.Details, desc.String())
	}
	return v
}

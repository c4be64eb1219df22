package fsbox

import (
	"encoding/json"

	"github.com/deepnoodle-ai/wonton/schema"
)

// Type aliases for the schema types used in tool definitions
type (
	Schema         = schema.Schema
	SchemaProperty = schema.Property
	SchemaType     = schema.SchemaType
)

// SchemaType constants for JSON Schema types
const (
	Object  SchemaType = schema.Object
	Array   SchemaType = schema.Array
	String  SchemaType = schema.String
	Integer SchemaType = schema.Integer
	Boolean SchemaType = schema.Boolean
)

// SchemaJSON encodes a tool input schema. A nil schema, or one missing its
// type or properties, encodes as an object schema with no properties.
func SchemaJSON(s *Schema) (json.RawMessage, error) {
	var out Schema
	if s != nil {
		out = *s
	}
	if out.Type == "" {
		out.Type = Object
	}
	if out.Properties == nil {
		out.Properties = map[string]*SchemaProperty{}
	}
	return json.Marshal(out)
}

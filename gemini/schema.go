package gemini

import (
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

// Schema is the OpenAPI subset Gemini accepts as responseSchema.
type Schema struct {
	Type             string             `json:"type"`
	Description      string             `json:"description,omitempty"`
	Items            *Schema            `json:"items,omitempty"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	Required         []string           `json:"required,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
}

// Structs are inlined: Gemini does not resolve $ref.
var reflector = &jsonschema.Reflector{
	Anonymous:      true,
	DoNotReference: true,
}

// Reflect returns the JSON schema of v's type as produced by jsonschema.
func Reflect(v any) *jsonschema.Schema {
	return reflector.Reflect(v)
}

// SchemaFor derives a Gemini response schema from the Go type of v.
// Field descriptions come from `jsonschema:"description=..."` tags.
func SchemaFor(v any) (*Schema, error) {
	return convert(Reflect(v))
}

func convert(s *jsonschema.Schema) (*Schema, error) {
	if s == nil {
		return nil, nil
	}

	typ, err := openAPIType(s.Type)
	if err != nil {
		return nil, err
	}

	out := &Schema{
		Type:        typ,
		Description: s.Description,
	}

	switch typ {
	case "ARRAY":
		if s.Items == nil {
			return nil, fmt.Errorf("array schema without items")
		}
		if out.Items, err = convert(s.Items); err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
	case "OBJECT":
		if s.Properties == nil {
			break
		}
		out.Properties = make(map[string]*Schema, s.Properties.Len())
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			prop, err := convert(pair.Value)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", pair.Key, err)
			}
			out.Properties[pair.Key] = prop
			out.PropertyOrdering = append(out.PropertyOrdering, pair.Key)
		}
		out.Required = append(out.Required, s.Required...)
	}

	return out, nil
}

func openAPIType(t string) (string, error) {
	switch t {
	case "string", "integer", "number", "boolean", "array", "object":
		return strings.ToUpper(t), nil
	default:
		return "", fmt.Errorf("unsupported schema type %q", t)
	}
}

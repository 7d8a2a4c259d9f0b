// Package reqschema implements the minimal structural validator used to gate
// mutating mock requests. It is deliberately a small ad hoc subset, not a
// general JSON-Schema implementation: required-field presence plus per-field
// type, length, range, pattern and format checks.
package reqschema

// Property holds the constraints for a single field.
type Property struct {
	Type      string   `json:"type,omitempty" bson:"type,omitempty"`
	MinLength *int     `json:"minLength,omitempty" bson:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" bson:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" bson:"pattern,omitempty"`
	Format    string   `json:"format,omitempty" bson:"format,omitempty"`
	Minimum   *float64 `json:"minimum,omitempty" bson:"minimum,omitempty"`
	Maximum   *float64 `json:"maximum,omitempty" bson:"maximum,omitempty"`
	MinItems  *int     `json:"minItems,omitempty" bson:"minItems,omitempty"`
	MaxItems  *int     `json:"maxItems,omitempty" bson:"maxItems,omitempty"`
}

// Schema describes the expected shape of a request body. A nil Schema
// validates everything: schemas are opt-in per endpoint.
type Schema struct {
	Required   []string             `json:"required,omitempty" bson:"required,omitempty"`
	Properties map[string]*Property `json:"properties,omitempty" bson:"properties,omitempty"`
}

// Result reports the outcome of a validation pass. Errors carries one
// human-readable message per failed check; checks never short-circuit.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Supported format names.
const (
	FormatEmail = "email"
	FormatURL   = "url"
)

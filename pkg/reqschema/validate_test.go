package reqschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int          { return &n }
func floatp(f float64) *float64 { return &f }

func TestValidateNilSchema(t *testing.T) {
	res := Validate(map[string]any{"anything": 1}, nil)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateMissingRequired(t *testing.T) {
	res := Validate(map[string]any{}, &Schema{Required: []string{"a"}})

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Missing required field: a"}, res.Errors)
}

func TestValidateRequiredPresenceNotTruthiness(t *testing.T) {
	// Present-but-falsy values satisfy required.
	data := map[string]any{"a": "", "b": float64(0), "c": false}
	res := Validate(data, &Schema{Required: []string{"a", "b", "c"}})

	assert.True(t, res.Valid)
}

func TestValidateMinLength(t *testing.T) {
	schema := &Schema{
		Required:   []string{"a"},
		Properties: map[string]*Property{"a": {Type: "string", MinLength: intp(5)}},
	}
	res := Validate(map[string]any{"a": "x"}, schema)

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Field a must be at least 5 characters", res.Errors[0])
}

func TestValidateTypeMismatch(t *testing.T) {
	schema := &Schema{Properties: map[string]*Property{"n": {Type: "number"}}}
	res := Validate(map[string]any{"n": "ten"}, schema)

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Field n must be of type number"}, res.Errors)
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	schema := &Schema{
		Required: []string{"name", "email"},
		Properties: map[string]*Property{
			"age": {Type: "number", Minimum: floatp(18)},
		},
	}
	res := Validate(map[string]any{"age": float64(3)}, schema)

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 3)
	assert.Contains(t, res.Errors, "Missing required field: name")
	assert.Contains(t, res.Errors, "Missing required field: email")
	assert.Contains(t, res.Errors, "Field age must be at least 18")
}

func TestValidateEmailFormat(t *testing.T) {
	schema := &Schema{Properties: map[string]*Property{
		"email": {Type: "string", Format: FormatEmail},
	}}

	assert.True(t, Validate(map[string]any{"email": "a@b.co"}, schema).Valid)
	assert.False(t, Validate(map[string]any{"email": "nope"}, schema).Valid)
}

func TestValidateURLFormat(t *testing.T) {
	schema := &Schema{Properties: map[string]*Property{
		"site": {Type: "string", Format: FormatURL},
	}}

	assert.True(t, Validate(map[string]any{"site": "https://example.com/x"}, schema).Valid)
	assert.False(t, Validate(map[string]any{"site": "not a url"}, schema).Valid)
}

func TestValidatePattern(t *testing.T) {
	schema := &Schema{Properties: map[string]*Property{
		"code": {Type: "string", Pattern: `^[A-Z]{3}$`},
	}}

	assert.True(t, Validate(map[string]any{"code": "ABC"}, schema).Valid)

	res := Validate(map[string]any{"code": "abc"}, schema)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Field code does not match required pattern"}, res.Errors)
}

func TestValidateNumberRange(t *testing.T) {
	schema := &Schema{Properties: map[string]*Property{
		"qty": {Type: "number", Minimum: floatp(1), Maximum: floatp(10)},
	}}

	assert.True(t, Validate(map[string]any{"qty": float64(5)}, schema).Valid)
	assert.False(t, Validate(map[string]any{"qty": float64(0)}, schema).Valid)
	assert.False(t, Validate(map[string]any{"qty": float64(11)}, schema).Valid)
}

func TestValidateArrayItems(t *testing.T) {
	schema := &Schema{Properties: map[string]*Property{
		"tags": {Type: "array", MinItems: intp(1), MaxItems: intp(3)},
	}}

	assert.True(t, Validate(map[string]any{"tags": []any{"a"}}, schema).Valid)
	assert.False(t, Validate(map[string]any{"tags": []any{}}, schema).Valid)
	assert.False(t, Validate(map[string]any{"tags": []any{"a", "b", "c", "d"}}, schema).Valid)
}

func TestValidateSkipsAbsentOptionalFields(t *testing.T) {
	// PATCH semantics: optional fields missing from the body pass trivially.
	schema := &Schema{Properties: map[string]*Property{
		"name": {Type: "string", MinLength: intp(3)},
	}}

	assert.True(t, Validate(map[string]any{}, schema).Valid)
}

func TestValidateInvalidPatternIsIgnored(t *testing.T) {
	schema := &Schema{Properties: map[string]*Property{
		"x": {Type: "string", Pattern: `([`},
	}}

	assert.NotPanics(t, func() {
		assert.True(t, Validate(map[string]any{"x": "anything"}, schema).Valid)
	})
}

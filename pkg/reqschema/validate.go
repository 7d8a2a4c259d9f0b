package reqschema

import (
	"fmt"
	"net/url"
	"regexp"
)

// emailRe is intentionally permissive; the goal is catching obvious typos,
// not RFC 5322 conformance.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks data against schema, accumulating every violation.
// A nil schema always validates. Fields absent from data and not listed in
// Required are never checked, which is what makes the same schema usable
// for PATCH bodies.
func Validate(data map[string]any, schema *Schema) Result {
	if schema == nil {
		return Result{Valid: true, Errors: []string{}}
	}

	errs := []string{}

	for _, name := range schema.Required {
		if _, ok := data[name]; !ok {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", name))
		}
	}

	for name, prop := range schema.Properties {
		value, ok := data[name]
		if !ok || prop == nil {
			continue
		}
		errs = append(errs, checkProperty(name, value, prop)...)
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func checkProperty(name string, value any, prop *Property) []string {
	var errs []string

	if prop.Type != "" && jsonType(value) != prop.Type {
		errs = append(errs, fmt.Sprintf("Field %s must be of type %s", name, prop.Type))
		return errs
	}

	switch v := value.(type) {
	case string:
		errs = append(errs, checkString(name, v, prop)...)
	case float64:
		errs = append(errs, checkNumber(name, v, prop)...)
	case int:
		errs = append(errs, checkNumber(name, float64(v), prop)...)
	case []any:
		errs = append(errs, checkArray(name, v, prop)...)
	}

	return errs
}

func checkString(name, v string, prop *Property) []string {
	var errs []string

	if prop.MinLength != nil && len(v) < *prop.MinLength {
		errs = append(errs, fmt.Sprintf("Field %s must be at least %d characters", name, *prop.MinLength))
	}
	if prop.MaxLength != nil && len(v) > *prop.MaxLength {
		errs = append(errs, fmt.Sprintf("Field %s must be at most %d characters", name, *prop.MaxLength))
	}
	if prop.Pattern != "" {
		if re, err := regexp.Compile(prop.Pattern); err == nil && !re.MatchString(v) {
			errs = append(errs, fmt.Sprintf("Field %s does not match required pattern", name))
		}
	}
	switch prop.Format {
	case FormatEmail:
		if !emailRe.MatchString(v) {
			errs = append(errs, fmt.Sprintf("Field %s must be a valid email", name))
		}
	case FormatURL:
		if u, err := url.Parse(v); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("Field %s must be a valid URL", name))
		}
	}

	return errs
}

func checkNumber(name string, v float64, prop *Property) []string {
	var errs []string

	if prop.Minimum != nil && v < *prop.Minimum {
		errs = append(errs, fmt.Sprintf("Field %s must be at least %v", name, *prop.Minimum))
	}
	if prop.Maximum != nil && v > *prop.Maximum {
		errs = append(errs, fmt.Sprintf("Field %s must be at most %v", name, *prop.Maximum))
	}

	return errs
}

func checkArray(name string, v []any, prop *Property) []string {
	var errs []string

	if prop.MinItems != nil && len(v) < *prop.MinItems {
		errs = append(errs, fmt.Sprintf("Field %s must have at least %d items", name, *prop.MinItems))
	}
	if prop.MaxItems != nil && len(v) > *prop.MaxItems {
		errs = append(errs, fmt.Sprintf("Field %s must have at most %d items", name, *prop.MaxItems))
	}

	return errs
}

// jsonType returns the JSON type name for a decoded value.
func jsonType(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64, int, int64, float32:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

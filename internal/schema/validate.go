package schema

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FieldError names one violated field and why it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every violation found in a payload.
type ValidationError struct {
	Kind   string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("%s: invalid fields: %s", e.Kind, strings.Join(names, ", "))
}

var dateTimeLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Validate checks a payload against the kind's field table. It collects
// every violation rather than stopping at the first, applies defaults for
// absent optional fields and drops keys the kind does not declare. On
// success the returned document carries every declared field.
func (r *Registry) Validate(kind string, payload map[string]any) (map[string]any, error) {
	fields, ok := r.kinds[kind]
	if !ok {
		return nil, &ValidationError{Kind: kind, Fields: []FieldError{{Field: "kind", Reason: "unknown record kind"}}}
	}

	doc := make(map[string]any, len(fields))
	var errs []FieldError
	for _, f := range fields {
		raw, present := payload[f.Name]
		if !present {
			if f.Required {
				errs = append(errs, FieldError{Field: f.Name, Reason: "required field is missing"})
				continue
			}
			doc[f.Name] = defaultValue(f)
			continue
		}
		if raw == nil {
			if f.Nullable {
				doc[f.Name] = nil
				continue
			}
			errs = append(errs, FieldError{Field: f.Name, Reason: "must not be null"})
			continue
		}
		val, reason := convert(f, raw)
		if reason != "" {
			errs = append(errs, FieldError{Field: f.Name, Reason: reason})
			continue
		}
		doc[f.Name] = val
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Kind: kind, Fields: errs}
	}
	return doc, nil
}

// convert checks raw against the field's type and constraints and returns
// the normalized value, or a non-empty rejection reason.
func convert(f Field, raw any) (any, string) {
	switch f.Type {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a string"
		}
		if len(f.Enum) > 0 && !containsString(f.Enum, s) {
			return nil, "must be one of " + strings.Join(f.Enum, ", ")
		}
		if f.NonEmpty && s == "" {
			return nil, "must not be empty"
		}
		return s, ""
	case TypeFloat:
		n, ok := toFloat(raw)
		if !ok {
			return nil, "must be a number"
		}
		if f.Min != nil && n < *f.Min {
			return nil, fmt.Sprintf("must be >= %g", *f.Min)
		}
		if f.Max != nil && n > *f.Max {
			return nil, fmt.Sprintf("must be <= %g", *f.Max)
		}
		return n, ""
	case TypeInt:
		n, ok := toFloat(raw)
		if !ok || n != math.Trunc(n) {
			return nil, "must be an integer"
		}
		return int64(n), ""
	case TypeBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, "must be a boolean"
		}
		return b, ""
	case TypeStringList:
		switch v := raw.(type) {
		case []string:
			out := make([]string, len(v))
			copy(out, v)
			return out, ""
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, "must be a list of strings"
				}
				out = append(out, s)
			}
			return out, ""
		default:
			return nil, "must be a list of strings"
		}
	case TypeMapList:
		switch v := raw.(type) {
		case []map[string]any:
			out := make([]map[string]any, len(v))
			copy(out, v)
			return out, ""
		case []any:
			out := make([]map[string]any, 0, len(v))
			for _, item := range v {
				m, ok := item.(map[string]any)
				if !ok {
					return nil, "must be a list of objects"
				}
				out = append(out, m)
			}
			return out, ""
		default:
			return nil, "must be a list of objects"
		}
	case TypeMap:
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, "must be an object"
		}
		return m, ""
	case TypeDateTime:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a datetime string"
		}
		for _, layout := range dateTimeLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return s, ""
			}
		}
		return nil, "must be a datetime string"
	default:
		return nil, "unsupported field type"
	}
}

// defaultValue returns a fresh copy of the field's default so stored
// documents never share container values.
func defaultValue(f Field) any {
	switch v := f.Default.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []map[string]any:
		out := make([]map[string]any, len(v))
		copy(out, v)
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = item
		}
		return out
	case int:
		return int64(v)
	default:
		return f.Default
	}
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

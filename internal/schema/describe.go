package schema

// FieldDescription is the introspection view of one field.
type FieldDescription struct {
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Nullable bool     `json:"nullable"`
	Enum     []string `json:"enum,omitempty"`
	Minimum  *float64 `json:"minimum,omitempty"`
	Maximum  *float64 `json:"maximum,omitempty"`
	Default  any      `json:"default"`
}

// Description is the introspection view of one record kind.
type Description struct {
	Name   string                      `json:"name"`
	Fields map[string]FieldDescription `json:"fields"`
}

// Describe returns the field table of one kind. The second return is false
// for unknown kinds.
func (r *Registry) Describe(kind string) (Description, bool) {
	fields, ok := r.kinds[kind]
	if !ok {
		return Description{}, false
	}
	d := Description{Name: kind, Fields: make(map[string]FieldDescription, len(fields))}
	for _, f := range fields {
		d.Fields[f.Name] = FieldDescription{
			Type:     string(f.Type),
			Required: f.Required,
			Nullable: f.Nullable,
			Enum:     f.Enum,
			Minimum:  f.Min,
			Maximum:  f.Max,
			Default:  defaultValue(f),
		}
	}
	return d, true
}

// DescribeAll returns every kind's description in registration order.
func (r *Registry) DescribeAll() []Description {
	out := make([]Description, 0, len(r.order))
	for _, kind := range r.order {
		d, _ := r.Describe(kind)
		out = append(out, d)
	}
	return out
}

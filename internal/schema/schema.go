// Package schema holds the registry of persisted record kinds: field types,
// defaults, enumerations and bounds. The registry is built once at startup
// and is read-only afterwards, so it is safe for concurrent use.
package schema

// Record kinds. Each kind maps to one storage collection of the same name.
const (
	KindProfile       = "profile"
	KindPreferences   = "preferences"
	KindHabit         = "habit"
	KindRoutine       = "routine"
	KindTask          = "task"
	KindJournalEntry  = "journalentry"
	KindMood          = "mood"
	KindMoneyRecord   = "moneyrecord"
	KindSavingsGoal   = "savingsgoal"
	KindFitnessMetric = "fitnessmetric"
	KindChallenge     = "challenge"
	KindCoachPlan     = "coachplan"
)

type FieldType string

const (
	TypeString     FieldType = "string"
	TypeFloat      FieldType = "float"
	TypeInt        FieldType = "int"
	TypeBool       FieldType = "bool"
	TypeStringList FieldType = "string_list"
	TypeMapList    FieldType = "map_list"
	TypeMap        FieldType = "map"
	TypeDateTime   FieldType = "datetime"
)

// Field describes one typed field of a record kind. Default applies when the
// field is absent from a payload; Nullable fields additionally accept an
// explicit null. Enum and Min/Max narrow the accepted values.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Nullable bool
	NonEmpty bool
	Enum     []string
	Min      *float64
	Max      *float64
	Default  any
}

type Registry struct {
	kinds map[string][]Field
	order []string
}

// NewRegistry builds the full table of record kinds.
func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string][]Field)}

	r.add(KindProfile,
		userID(),
		required("name", TypeString),
		enumRequired("age_group", "teen", "young_adult", "adult", "senior"),
		optional("goals", TypeStringList, []string{}),
		optional("discipline_score", TypeFloat, 0.0),
		optional("theme", TypeString, "neon-blue"),
		nullable("created_at", TypeDateTime),
		nullable("updated_at", TypeDateTime),
	)
	r.add(KindPreferences,
		userID(),
		optional("theme_color", TypeString, "#00E5FF"),
		bounded("glow_intensity", 0.6, 0, 1),
		bounded("card_opacity", 0.2, 0, 1),
		optional("font_family", TypeString, "Inter"),
		optional("minimal_mode", TypeBool, false),
		optional("notifications", TypeBool, true),
		optional("backup_enabled", TypeBool, false),
		nullable("created_at", TypeDateTime),
		nullable("updated_at", TypeDateTime),
	)
	r.add(KindHabit,
		userID(),
		required("name", TypeString),
		optional("icon", TypeString, "Star"),
		optional("glow_color", TypeString, "#7C3AED"),
		optional("schedule", TypeStringList, []string{}),
		optional("streak", TypeInt, 0),
		optional("analytics", TypeMap, map[string]any{}),
		optional("archived", TypeBool, false),
	)
	r.add(KindRoutine,
		userID(),
		enumRequired("period", "morning", "afternoon", "night"),
		required("title", TypeString),
		optional("tasks", TypeMapList, []map[string]any{}),
		optional("animated", TypeBool, true),
	)
	r.add(KindTask,
		userID(),
		required("title", TypeString),
		nullable("notes", TypeString),
		nullable("due_date", TypeString),
		enumDefault("status", "todo", "todo", "in_progress", "done"),
		intNullable("pomodoro_minutes", 25),
		optional("order", TypeInt, 0),
	)
	r.add(KindJournalEntry,
		userID(),
		required("date", TypeString),
		enumDefault("template", "free", "gratitude", "reflection", "ideas", "free"),
		required("content", TypeString),
		optional("locked", TypeBool, false),
	)
	r.add(KindMood,
		userID(),
		required("date", TypeString),
		enumRequired("mood", "ecstatic", "happy", "calm", "neutral", "stressed", "sad"),
		nullable("reason", TypeString),
	)
	r.add(KindMoneyRecord,
		userID(),
		required("date", TypeString),
		enumRequired("type", "income", "expense", "saving"),
		required("amount", TypeFloat),
		nullable("note", TypeString),
	)
	r.add(KindSavingsGoal,
		userID(),
		required("name", TypeString),
		required("target", TypeFloat),
		optional("progress", TypeFloat, 0.0),
	)
	r.add(KindFitnessMetric,
		userID(),
		required("date", TypeString),
		nullable("weight", TypeFloat),
		nullable("steps", TypeInt),
		nullable("hydration_liters", TypeFloat),
		optional("skincare", TypeStringList, []string{}),
		optional("gym_routine", TypeMapList, []map[string]any{}),
		optional("checklist", TypeMapList, []map[string]any{}),
	)
	r.add(KindChallenge,
		nullable("user_id", TypeString),
		required("slug", TypeString),
		required("title", TypeString),
		required("days", TypeInt),
		enumRequired("category", "discipline", "glowup", "money"),
		required("description", TypeString),
	)
	r.add(KindCoachPlan,
		userID(),
		required("date", TypeString),
		required("summary", TypeString),
		optional("focus", TypeStringList, []string{}),
		optional("actions", TypeMapList, []map[string]any{}),
	)

	return r
}

func (r *Registry) add(kind string, fields ...Field) {
	r.kinds[kind] = fields
	r.order = append(r.order, kind)
}

// Kinds returns every registered kind in registration order.
func (r *Registry) Kinds() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// HasField reports whether the kind declares a field with the given name.
func (r *Registry) HasField(kind, name string) bool {
	for _, f := range r.kinds[kind] {
		if f.Name == name {
			return true
		}
	}
	return false
}

func userID() Field {
	return Field{Name: "user_id", Type: TypeString, Required: true, NonEmpty: true}
}

func required(name string, t FieldType) Field {
	return Field{Name: name, Type: t, Required: true}
}

func optional(name string, t FieldType, def any) Field {
	return Field{Name: name, Type: t, Default: def}
}

// nullable declares an optional field that defaults to null.
func nullable(name string, t FieldType) Field {
	return Field{Name: name, Type: t, Nullable: true}
}

func intNullable(name string, def int) Field {
	return Field{Name: name, Type: TypeInt, Nullable: true, Default: def}
}

func enumRequired(name string, values ...string) Field {
	return Field{Name: name, Type: TypeString, Required: true, Enum: values}
}

func enumDefault(name, def string, values ...string) Field {
	return Field{Name: name, Type: TypeString, Enum: values, Default: def}
}

func bounded(name string, def, min, max float64) Field {
	return Field{Name: name, Type: TypeFloat, Min: &min, Max: &max, Default: def}
}

package models

// CoachPlan is the persisted output of the plan synthesizer.
type CoachPlan struct {
	UserID  string       `json:"user_id"`
	Date    string       `json:"date"`
	Summary string       `json:"summary"`
	Focus   []string     `json:"focus"`
	Actions []PlanAction `json:"actions"`
}

// PlanAction is one scheduled step of a coach plan.
type PlanAction struct {
	Title string `json:"title"`
	Time  string `json:"time"`
}

// Challenge is a multi-day program descriptor. Catalog entries are global,
// so UserID stays empty and is omitted from responses.
type Challenge struct {
	UserID      string `json:"user_id,omitempty"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Days        int    `json:"days"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// PresetChallenges is the static challenge catalog served by /challenges.
// It is read-only and never persisted.
var PresetChallenges = []Challenge{
	{Slug: "discipline-7", Title: "7 Day Discipline", Days: 7, Category: "discipline", Description: "Build unstoppable momentum in a week."},
	{Slug: "glowup-30", Title: "30 Day Glow Up", Days: 30, Category: "glowup", Description: "Daily actions for visible improvement."},
	{Slug: "money-21", Title: "Money Sprint 21", Days: 21, Category: "money", Description: "Cash flow, skills, and savings."},
}

package models

// Habit is a named recurring practice to track. The ID is opaque, globally
// unique, and stable across renames.
type Habit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompletionEntry records that a habit was completed on a calendar day.
// Day is stored in YYYY-MM-DD form; at most one entry exists per
// (HabitID, Day) pair.
type CompletionEntry struct {
	HabitID string `json:"habit_id"`
	Day     string `json:"day"`
}

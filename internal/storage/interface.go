package storage

import "github.com/julianstephens/htrackr/internal/date"

// Provider is the durable store behind the tool: two logical tables,
// habits and completion entries. Implementations must keep a habit's id
// stable across renames and remove a habit's entries before the habit
// itself so no entry ever references a missing habit.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Habits
	CreateHabit(name string) error
	DeleteHabit(name string) error
	RenameHabit(oldName, newName string) error
	HabitExists(name string) (bool, error)
	ListHabits() ([]string, error)
	GetHabitID(name string) (string, error)

	// Completion entries
	Mark(name string, day date.Date) error
	Unmark(name string, day date.Date) error
	MarkedDays(name string, start, end date.Date) ([]date.Date, error)

	// Utils
	GetConfigPath() string
}

var (
	_ Provider = (*SQLiteStore)(nil)
	_ Provider = (*JSONStore)(nil)
)

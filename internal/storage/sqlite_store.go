package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/htrackr/internal/apperror"
	"github.com/julianstephens/htrackr/internal/constants"
	"github.com/julianstephens/htrackr/internal/date"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// Init opens the database and creates the schema if it is absent. It is
// safe to call on every run.
func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// No UNIQUE or FOREIGN KEY constraints: name uniqueness and the
	// entry-per-day rule are enforced by existence checks in code.
	schema := []string{
		`CREATE TABLE IF NOT EXISTS habits (
			id TEXT PRIMARY KEY,
			name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS habit_entries (
			habit_id TEXT,
			date TEXT
		)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return apperror.Storage("initialize schema", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) CreateHabit(name string) error {
	if name == "" {
		return apperror.Validation("invalid name")
	}

	exists, err := s.HabitExists(name)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Duplicate(name)
	}

	id := constants.IDPrefix + uuid.NewString()
	if _, err := s.db.Exec("INSERT INTO habits (id, name) VALUES (?, ?)", id, name); err != nil {
		return apperror.Storage("insert habit", err)
	}

	return nil
}

// DeleteHabit removes the habit's completion entries first, then the habit
// row. There is no enforcing constraint, so the order matters.
func (s *SQLiteStore) DeleteHabit(name string) error {
	id, err := s.GetHabitID(name)
	if err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM habit_entries WHERE habit_id = ?", id); err != nil {
		return apperror.Storage("delete habit entries", err)
	}
	if _, err := s.db.Exec("DELETE FROM habits WHERE id = ?", id); err != nil {
		return apperror.Storage("delete habit", err)
	}

	return nil
}

// RenameHabit updates the name in place; the id and all completion entries
// are unaffected.
//
// TODO: decide whether rename should reject a new name that already belongs
// to another habit. Today it silently produces a duplicate name.
func (s *SQLiteStore) RenameHabit(oldName, newName string) error {
	exists, err := s.HabitExists(oldName)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound(oldName)
	}

	if _, err := s.db.Exec("UPDATE habits SET name = ? WHERE name = ?", newName, oldName); err != nil {
		return apperror.Storage("rename habit", err)
	}

	return nil
}

func (s *SQLiteStore) HabitExists(name string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(1) FROM habits WHERE name = ?", name).Scan(&count)
	if err != nil {
		return false, apperror.Storage("query habit", err)
	}
	return count > 0, nil
}

// ListHabits returns habit names in storage order (insertion order for a
// freshly created database).
func (s *SQLiteStore) ListHabits() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM habits")
	if err != nil {
		return nil, apperror.Storage("query habits", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperror.Storage("scan habit", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate habits", err)
	}

	return names, nil
}

func (s *SQLiteStore) GetHabitID(name string) (string, error) {
	var id string
	err := s.db.QueryRow("SELECT id FROM habits WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return "", apperror.NotFound(name)
	}
	if err != nil {
		return "", apperror.Storage("query habit id", err)
	}
	return id, nil
}

func (s *SQLiteStore) Mark(name string, day date.Date) error {
	dateStr, err := day.Format()
	if err != nil {
		return err
	}

	id, err := s.GetHabitID(name)
	if err != nil {
		return err
	}

	marked, err := s.entryExists(id, dateStr)
	if err != nil {
		return err
	}
	if marked {
		return apperror.AlreadyMarked(name, dateStr)
	}

	if _, err := s.db.Exec("INSERT INTO habit_entries (habit_id, date) VALUES (?, ?)", id, dateStr); err != nil {
		return apperror.Storage("insert entry", err)
	}

	return nil
}

func (s *SQLiteStore) Unmark(name string, day date.Date) error {
	dateStr, err := day.Format()
	if err != nil {
		return err
	}

	id, err := s.GetHabitID(name)
	if err != nil {
		return err
	}

	marked, err := s.entryExists(id, dateStr)
	if err != nil {
		return err
	}
	if !marked {
		return apperror.NotMarked(name, dateStr)
	}

	if _, err := s.db.Exec("DELETE FROM habit_entries WHERE habit_id = ? AND date = ?", id, dateStr); err != nil {
		return apperror.Storage("delete entry", err)
	}

	return nil
}

// MarkedDays returns the dates with a completion entry in [start, end].
// Zero-padded ISO dates compare lexicographically in chronological order,
// so BETWEEN on the stored text is exact. Stored text that no longer parses
// as a valid date is skipped.
func (s *SQLiteStore) MarkedDays(name string, start, end date.Date) ([]date.Date, error) {
	startStr, err := start.Format()
	if err != nil {
		return nil, err
	}
	endStr, err := end.Format()
	if err != nil {
		return nil, err
	}

	id, err := s.GetHabitID(name)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT date FROM habit_entries WHERE habit_id = ? AND date BETWEEN ? AND ?",
		id, startStr, endStr,
	)
	if err != nil {
		return nil, apperror.Storage("query entries", err)
	}
	defer rows.Close()

	var days []date.Date
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, apperror.Storage("scan entry", err)
		}
		d, err := date.Parse(raw)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate entries", err)
	}

	return days, nil
}

func (s *SQLiteStore) entryExists(habitID, dateStr string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(1) FROM habit_entries WHERE habit_id = ? AND date = ?",
		habitID, dateStr,
	).Scan(&count)
	if err != nil {
		return false, apperror.Storage("query entry", err)
	}
	return count > 0, nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

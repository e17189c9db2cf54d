package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/julianstephens/htrackr/internal/apperror"
	"github.com/julianstephens/htrackr/internal/constants"
	"github.com/julianstephens/htrackr/internal/date"
	"github.com/julianstephens/htrackr/internal/models"
)

type Store struct {
	Version int                      `json:"version"`
	Habits  []models.Habit           `json:"habits"`
	Entries []models.CompletionEntry `json:"entries"`
}

// JSONStore keeps the whole store in a single JSON document. Habits are a
// slice, not a map, so list order is insertion order like the relational
// backend.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

// Init loads the document, creating it with an empty store on first run.
func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.store = &Store{Version: 1}
			return s.save()
		}
		return apperror.Storage("read storage", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return apperror.Storage("parse storage", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return apperror.Storage("serialize storage", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return apperror.Storage("write storage", err)
	}

	return nil
}

func (s *JSONStore) findHabit(name string) (int, bool) {
	for i, h := range s.store.Habits {
		if h.Name == name {
			return i, true
		}
	}
	return 0, false
}

func (s *JSONStore) CreateHabit(name string) error {
	if name == "" {
		return apperror.Validation("invalid name")
	}

	if _, ok := s.findHabit(name); ok {
		return apperror.Duplicate(name)
	}

	s.store.Habits = append(s.store.Habits, models.Habit{
		ID:   constants.IDPrefix + uuid.NewString(),
		Name: name,
	})

	return s.save()
}

func (s *JSONStore) DeleteHabit(name string) error {
	i, ok := s.findHabit(name)
	if !ok {
		return apperror.NotFound(name)
	}
	id := s.store.Habits[i].ID

	// Entries go first to preserve the referential invariant on disk.
	kept := s.store.Entries[:0]
	for _, e := range s.store.Entries {
		if e.HabitID != id {
			kept = append(kept, e)
		}
	}
	s.store.Entries = kept
	s.store.Habits = append(s.store.Habits[:i], s.store.Habits[i+1:]...)

	return s.save()
}

// RenameHabit mirrors the relational backend: the new name is not checked
// for collision (see the note on SQLiteStore.RenameHabit).
func (s *JSONStore) RenameHabit(oldName, newName string) error {
	i, ok := s.findHabit(oldName)
	if !ok {
		return apperror.NotFound(oldName)
	}

	s.store.Habits[i].Name = newName
	return s.save()
}

func (s *JSONStore) HabitExists(name string) (bool, error) {
	_, ok := s.findHabit(name)
	return ok, nil
}

func (s *JSONStore) ListHabits() ([]string, error) {
	var names []string
	for _, h := range s.store.Habits {
		names = append(names, h.Name)
	}
	return names, nil
}

func (s *JSONStore) GetHabitID(name string) (string, error) {
	i, ok := s.findHabit(name)
	if !ok {
		return "", apperror.NotFound(name)
	}
	return s.store.Habits[i].ID, nil
}

func (s *JSONStore) entryExists(habitID, dateStr string) bool {
	for _, e := range s.store.Entries {
		if e.HabitID == habitID && e.Day == dateStr {
			return true
		}
	}
	return false
}

func (s *JSONStore) Mark(name string, day date.Date) error {
	dateStr, err := day.Format()
	if err != nil {
		return err
	}

	id, err := s.GetHabitID(name)
	if err != nil {
		return err
	}

	if s.entryExists(id, dateStr) {
		return apperror.AlreadyMarked(name, dateStr)
	}

	s.store.Entries = append(s.store.Entries, models.CompletionEntry{
		HabitID: id,
		Day:     dateStr,
	})

	return s.save()
}

func (s *JSONStore) Unmark(name string, day date.Date) error {
	dateStr, err := day.Format()
	if err != nil {
		return err
	}

	id, err := s.GetHabitID(name)
	if err != nil {
		return err
	}

	if !s.entryExists(id, dateStr) {
		return apperror.NotMarked(name, dateStr)
	}

	kept := s.store.Entries[:0]
	for _, e := range s.store.Entries {
		if !(e.HabitID == id && e.Day == dateStr) {
			kept = append(kept, e)
		}
	}
	s.store.Entries = kept

	return s.save()
}

func (s *JSONStore) MarkedDays(name string, start, end date.Date) ([]date.Date, error) {
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

	var days []date.Date
	for _, e := range s.store.Entries {
		if e.HabitID != id {
			continue
		}
		// Lexicographic comparison is chronological for padded ISO dates.
		if e.Day < startStr || e.Day > endStr {
			continue
		}
		d, err := date.Parse(e.Day)
		if err != nil {
			continue
		}
		days = append(days, d)
	}

	return days, nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note: JSONStore is not safe for concurrent use, and running
// multiple processes against the same file may lose writes.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}

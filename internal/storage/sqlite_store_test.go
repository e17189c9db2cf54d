package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/htrackr/internal/date"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewSQLiteStore(dbPath)
	require.NoError(t, store.Init())
	require.NoError(t, store.CreateHabit("read"))
	require.NoError(t, store.Close())

	// Second run against the same file keeps existing data.
	store = NewSQLiteStore(dbPath)
	require.NoError(t, store.Init())
	defer store.Close()

	exists, err := store.HabitExists("read")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMarkedDaysSkipsMalformedStoredDates(t *testing.T) {
	store := setupSQLiteStore(t)

	require.NoError(t, store.CreateHabit("read"))
	require.NoError(t, store.Mark("read", date.Date{Year: 2006, Month: 6, Day: 7}))

	id, err := store.GetHabitID("read")
	require.NoError(t, err)

	// Corrupt rows written behind the store's back. Both sort inside the
	// queried range so BETWEEN picks them up.
	for _, raw := range []string{"2006-06-0x", "2006-06-31"} {
		_, err = store.GetDB().Exec(
			"INSERT INTO habit_entries (habit_id, date) VALUES (?, ?)", id, raw)
		require.NoError(t, err)
	}

	days, err := store.MarkedDays("read",
		date.Date{Year: 2006, Month: 6, Day: 1},
		date.Date{Year: 2006, Month: 6, Day: 30})
	require.NoError(t, err)
	assert.Equal(t, []date.Date{{Year: 2006, Month: 6, Day: 7}}, days)
}

func TestDeleteLeavesNoOrphanedRows(t *testing.T) {
	store := setupSQLiteStore(t)

	require.NoError(t, store.CreateHabit("read"))
	id, err := store.GetHabitID("read")
	require.NoError(t, err)

	require.NoError(t, store.Mark("read", date.Date{Year: 2006, Month: 6, Day: 7}))
	require.NoError(t, store.Mark("read", date.Date{Year: 2006, Month: 6, Day: 9}))
	require.NoError(t, store.DeleteHabit("read"))

	var count int
	err = store.GetDB().QueryRow(
		"SELECT COUNT(1) FROM habit_entries WHERE habit_id = ?", id).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

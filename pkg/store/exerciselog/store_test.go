package exerciselog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exercise.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func parse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	require.NoError(t, err)
	return d
}

func TestGetEntries_MultipleRowsPerDate(t *testing.T) {
	path := writeLog(t, `Date,Exercise,Calories Burned
2025-07-01,Running,-250
2025-07-01,Cycling,-100
2025-07-02,Swimming,-300
`)
	store := NewStore(path)

	entries, err := store.GetEntries(context.Background(), parse(t, "2025-07-01"), parse(t, "2025-07-02"))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Running", entries[0].Exercise)
	assert.Equal(t, -250.0, entries[0].CaloriesBurned)
	assert.Equal(t, "2025-07-02", entries[2].Date)
}

func TestGetEntries_ColumnDetectionIsForgiving(t *testing.T) {
	path := writeLog(t, `date,exercise name,burned
2025-07-01,Rowing,"−1,250"
`)
	store := NewStore(path)

	entries, err := store.GetEntries(context.Background(), parse(t, "2025-07-01"), parse(t, "2025-07-01"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Rowing", entries[0].Exercise)
	assert.Equal(t, -1250.0, entries[0].CaloriesBurned)
}

func TestGetEntries_SkipsUnparseableRows(t *testing.T) {
	path := writeLog(t, `Date,Exercise,Calories Burned
2025-07-01,Running,n/a
2025-07-01,Cycling,-100
bad-date,Walking,-50
`)
	store := NewStore(path)

	entries, err := store.GetEntries(context.Background(), parse(t, "2025-07-01"), parse(t, "2025-07-01"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Cycling", entries[0].Exercise)
}

func TestGetEntries_MissingCaloriesColumn(t *testing.T) {
	path := writeLog(t, `Date,Exercise
2025-07-01,Running
`)
	store := NewStore(path)

	_, err := store.GetEntries(context.Background(), parse(t, "2025-07-01"), parse(t, "2025-07-01"))
	assert.Error(t, err)
}

func TestGetEntries_RangeFilter(t *testing.T) {
	path := writeLog(t, `Date,Exercise,Calories Burned
2025-06-30,Running,-200
2025-07-01,Running,-250
2025-07-04,Running,-275
`)
	store := NewStore(path)

	entries, err := store.GetEntries(context.Background(), parse(t, "2025-07-01"), parse(t, "2025-07-03"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2025-07-01", entries[0].Date)
}

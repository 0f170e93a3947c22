package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func parse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	require.NoError(t, err)
	return d
}

func TestGetDays_PreservesRawLabels(t *testing.T) {
	path := writeExport(t, `Date,Calories,Basal Metabolic Rate,TEF,Completed
2025-07-01,2200,1650,210,true
2025-07-02,2000,1640,205,true
`)
	store := NewStore(path)

	days, err := store.GetDays(context.Background(), parse(t, "2025-07-01"), parse(t, "2025-07-02"))
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, "2025-07-01", days[0].Date)
	assert.True(t, days[0].Completed)
	// values stay raw strings under the tracker's own labels
	assert.Equal(t, "2200", days[0].Fields["Calories"])
	assert.Equal(t, "1650", days[0].Fields["Basal Metabolic Rate"])
}

func TestGetDays_FiltersByRange(t *testing.T) {
	path := writeExport(t, `Date,Calories
2025-06-30,1900
2025-07-01,2200
2025-07-05,2400
`)
	store := NewStore(path)

	days, err := store.GetDays(context.Background(), parse(t, "2025-07-01"), parse(t, "2025-07-03"))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2025-07-01", days[0].Date)
}

func TestGetDays_CompletedVariants(t *testing.T) {
	path := writeExport(t, `Date,Calories,Day Complete
2025-07-01,2200,yes
2025-07-02,2000,no
2025-07-03,2100,1
`)
	store := NewStore(path)

	days, err := store.GetDays(context.Background(), parse(t, "2025-07-01"), parse(t, "2025-07-03"))
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.True(t, days[0].Completed)
	assert.False(t, days[1].Completed)
	assert.True(t, days[2].Completed)
}

func TestGetDays_NoCompletionColumnMeansCompleted(t *testing.T) {
	path := writeExport(t, `Date,Calories
2025-07-01,2200
`)
	store := NewStore(path)

	days, err := store.GetDays(context.Background(), parse(t, "2025-07-01"), parse(t, "2025-07-01"))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.True(t, days[0].Completed)
}

func TestGetDays_SkipsRowsWithoutDate(t *testing.T) {
	path := writeExport(t, `Date,Calories
,1800
not-a-date,1900
2025-07-01,2200
`)
	store := NewStore(path)

	days, err := store.GetDays(context.Background(), parse(t, "2025-07-01"), parse(t, "2025-07-01"))
	require.NoError(t, err)
	require.Len(t, days, 1)
}

func TestGetDays_MissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := store.GetDays(context.Background(), parse(t, "2025-07-01"), parse(t, "2025-07-01"))
	assert.Error(t, err)
}

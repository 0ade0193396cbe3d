package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFileAndSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestStoreReopenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	first, err := Open(dbPath)
	require.NoError(t, err)
	_, err = first.SaveScore(ScoreEntry{Mode: "normal", Score: 42})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(dbPath)
	require.NoError(t, err)
	defer second.Close()

	high, err := second.HighScore("normal")
	require.NoError(t, err)
	assert.Equal(t, 42, high)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveScore(ScoreEntry{Mode: "normal", Score: score, Level: 2})
		require.NoError(t, err)
	}
	_, err := store.SaveScore(ScoreEntry{
		Mode:          "hard",
		Score:         500,
		Level:         4,
		JelliesPopped: 160,
		Seed:          7,
		Duration:      95 * time.Second,
	})
	require.NoError(t, err)

	scores, err := store.TopScores("normal", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.Equal(t, 2, scores[0].Level)

	hard, err := store.TopScores("hard", 10)
	require.NoError(t, err)
	require.Len(t, hard, 1)
	assert.Equal(t, "hard", hard[0].Mode)
	assert.Equal(t, 160, hard[0].JelliesPopped)
	assert.Equal(t, int64(7), hard[0].Seed)
	assert.Equal(t, 95*time.Second, hard[0].Duration)
	assert.False(t, hard[0].CreatedAt.IsZero())
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		_, err := store.SaveScore(ScoreEntry{Mode: "test", Score: (i + 1) * 100})
		require.NoError(t, err)
	}

	scores, err := store.TopScores("test", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{500, 400, 300}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	require.NoError(t, err)
	assert.Equal(t, 0, high, "empty table has no high score")

	_, err = store.SaveScore(ScoreEntry{Mode: "normal", Score: 30})
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{Mode: "normal", Score: 90})
	require.NoError(t, err)

	high, err = store.HighScore("normal")
	require.NoError(t, err)
	assert.Equal(t, 90, high)
}

func TestStoreModesAndClear(t *testing.T) {
	store := openTestStore(t)

	for _, mode := range []string{"normal", "easy", "normal", "preset:pillars"} {
		_, err := store.SaveScore(ScoreEntry{Mode: mode, Score: 10})
		require.NoError(t, err)
	}

	modes, err := store.Modes()
	require.NoError(t, err)
	assert.Equal(t, []string{"easy", "normal", "preset:pillars"}, modes)

	require.NoError(t, store.ClearScores("normal"))

	scores, err := store.TopScores("normal", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	modes, err = store.Modes()
	require.NoError(t, err)
	assert.Equal(t, []string{"easy", "preset:pillars"}, modes)
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	assert.Equal(t, now, parseTime(now))
	assert.Equal(t, now, parseTime("2024-03-01 12:30:00"))
	assert.True(t, parseTime("garbage").IsZero())
	assert.True(t, parseTime(nil).IsZero())
}

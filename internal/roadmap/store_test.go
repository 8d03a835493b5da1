package roadmap

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoadmap() *Roadmap {
	skills := NewKeywordExtractor().Extract(context.Background(), "Python and SQL, 3+ years", "Data Scientist")
	return Assemble(skills, Profile("Microsoft"), "Data Scientist")
}

func TestDefaultFilename(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	r := &Roadmap{Company: "TechFlow (Startup)", Role: "Full Stack/Backend Developer"}

	assert.Equal(t, "roadmap_TechFlow_(Startup)_Full_Stack_Backend_Developer_20240309_140507.json", DefaultFilename(r, at))
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	store.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	original := sampleRoadmap()
	path, err := store.Save(original, "")
	require.NoError(t, err)
	assert.Equal(t, "roadmap_Microsoft_Data_Scientist_20240102_030405.json", filepath.Base(path))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestStoreSaveWithCustomName(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	path, err := store.Save(sampleRoadmap(), "demo_microsoft_roadmap.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Dir, "demo_microsoft_roadmap.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"company\": \"Microsoft\""))
	assert.Contains(t, string(data), "\"weight\": null")
}

func TestStoreSaveRejectsInvalidRoadmap(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Save(&Roadmap{Difficulty: DifficultyHard}, "")
	require.Error(t, err)

	_, err = store.Save(nil, "")
	require.Error(t, err)
}

func TestStoreLoadRejectsSchemaViolations(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "roadmap_bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"company": "Acme", "rounds": []}`), 0o644))

	_, err := NewStore(dir).Load(path)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.NotEmpty(t, schemaErr.Violations)
}

func TestStoreLatest(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Latest()
	require.ErrorIs(t, err, ErrNoRoadmaps)

	older, err := store.Save(sampleRoadmap(), "roadmap_older.json")
	require.NoError(t, err)
	newer, err := store.Save(sampleRoadmap(), "roadmap_newer.json")
	require.NoError(t, err)
	_, err = store.Save(sampleRoadmap(), "other.json")
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	latest, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, newer, latest)
}

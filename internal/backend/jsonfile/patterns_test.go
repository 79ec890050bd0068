package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"todo/internal/service"
)

func newTestPatternStore(t *testing.T) (*PatternStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.json")
	return NewPatternStore(path), path
}

func TestPatternStore_AddAndGet(t *testing.T) {
	store, _ := newTestPatternStore(t)
	require.NoError(t, store.Add("mtg", "Meeting with team"))

	got, ok := store.Get("mtg")
	require.True(t, ok)
	require.Equal(t, "Meeting with team", got)

	_, ok = store.Get("nope")
	require.False(t, ok)
}

func TestPatternStore_UpsertKeepsPosition(t *testing.T) {
	store, _ := newTestPatternStore(t)
	require.NoError(t, store.Add("a", "first"))
	require.NoError(t, store.Add("b", "second"))
	require.NoError(t, store.Add("a", "updated"))

	patterns := store.List()
	require.Len(t, patterns, 2)
	require.Equal(t, service.Pattern{Prefix: "a", Expansion: "updated"}, patterns[0])
	require.Equal(t, service.Pattern{Prefix: "b", Expansion: "second"}, patterns[1])
}

func TestPatternStore_Remove(t *testing.T) {
	store, _ := newTestPatternStore(t)
	require.NoError(t, store.Add("a", "1"))
	require.NoError(t, store.Add("b", "2"))
	require.NoError(t, store.Add("c", "3"))

	removed, err := store.Remove("b")
	require.NoError(t, err)
	require.True(t, removed)

	patterns := store.List()
	require.Len(t, patterns, 2)
	require.Equal(t, "a", patterns[0].Prefix)
	require.Equal(t, "c", patterns[1].Prefix)

	// Positions stay consistent after the shift.
	got, ok := store.Get("c")
	require.True(t, ok)
	require.Equal(t, "3", got)
}

func TestPatternStore_RemoveUnknown(t *testing.T) {
	store, _ := newTestPatternStore(t)
	removed, err := store.Remove("ghost")
	require.NoError(t, err)
	require.False(t, removed)
}

func TestPatternStore_ListReturnsCopy(t *testing.T) {
	store, _ := newTestPatternStore(t)
	require.NoError(t, store.Add("a", "original"))

	patterns := store.List()
	patterns[0].Expansion = "mutated"

	got, _ := store.Get("a")
	require.Equal(t, "original", got)
}

func TestPatternStore_FindMatching(t *testing.T) {
	store, _ := newTestPatternStore(t)
	require.NoError(t, store.Add("mt", "Meeting"))
	require.NoError(t, store.Add("call", "Call with"))
	require.NoError(t, store.Add("mtg", "Meeting with team"))

	matches := store.FindMatching("mt")
	require.Len(t, matches, 2)
	require.Equal(t, "mt", matches[0].Prefix)
	require.Equal(t, "mtg", matches[1].Prefix)

	require.Empty(t, store.FindMatching("zzz"))
}

func TestPatternStore_ExpandWithSuffix(t *testing.T) {
	store, _ := newTestPatternStore(t)
	require.NoError(t, store.Add("mtg", "Meeting with team"))

	require.Equal(t, "Meeting with team at 3pm", store.Expand("mtg at 3pm"))
	require.Equal(t, "Meeting with team", store.Expand("mtg"))
}

func TestPatternStore_ExpandFirstMatchWins(t *testing.T) {
	store, _ := newTestPatternStore(t)
	require.NoError(t, store.Add("mt", "Meeting"))
	require.NoError(t, store.Add("mtg", "Meeting with team"))

	// The earlier, shorter prefix wins over the longer exact one.
	require.Equal(t, "Meetingg", store.Expand("mtg"))
}

func TestPatternStore_ExpandNoMatch(t *testing.T) {
	store, _ := newTestPatternStore(t)
	require.NoError(t, store.Add("mtg", "Meeting with team"))

	require.Equal(t, "lunch at noon", store.Expand("lunch at noon"))
	// Matches only at the start of the text.
	require.Equal(t, "after mtg", store.Expand("after mtg"))
}

func TestPatternStore_RoundTripPreservesOrder(t *testing.T) {
	store, path := newTestPatternStore(t)
	require.NoError(t, store.Add("zz", "last alphabetically, first inserted"))
	require.NoError(t, store.Add("aa", "first alphabetically, second inserted"))
	require.NoError(t, store.Add("mm", "middle"))

	reloaded := NewPatternStore(path)
	patterns := reloaded.List()
	require.Len(t, patterns, 3)
	require.Equal(t, "zz", patterns[0].Prefix)
	require.Equal(t, "aa", patterns[1].Prefix)
	require.Equal(t, "mm", patterns[2].Prefix)
}

func TestPatternStore_FileFormat(t *testing.T) {
	store, path := newTestPatternStore(t)
	require.NoError(t, store.Add("mt", "Meeting"))
	require.NoError(t, store.Add("mtg", "Meeting with team"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "{\n  \"mt\": \"Meeting\",\n  \"mtg\": \"Meeting with team\"\n}"
	require.Equal(t, want, string(data))
}

func TestPatternStore_EmptyFileFormat(t *testing.T) {
	store, path := newTestPatternStore(t)
	require.NoError(t, store.Add("a", "1"))
	removed, err := store.Remove("a")
	require.NoError(t, err)
	require.True(t, removed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{}", string(data))
}

func TestPatternStore_UnicodeRoundTrip(t *testing.T) {
	store, path := newTestPatternStore(t)
	require.NoError(t, store.Add("שלום", "שלום עולם 🌍"))

	reloaded := NewPatternStore(path)
	got, ok := reloaded.Get("שלום")
	require.True(t, ok)
	require.Equal(t, "שלום עולם 🌍", got)
}

func TestPatternStore_MissingFileIsEmpty(t *testing.T) {
	store := NewPatternStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Empty(t, store.List())
}

func TestPatternStore_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	for _, content := range []string{"[1, 2]", "{broken", `{"k": 42}`} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		store := NewPatternStore(path)
		require.Empty(t, store.List(), "content %q should load as empty", content)
	}
}

func TestPatternStore_TrailingGarbageIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	for _, content := range []string{
		`{"mtg": "Meeting"} garbage`,
		`{"mtg": "Meeting"}{}`,
		`{"mtg": "Meeting"`,
	} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		store := NewPatternStore(path)
		require.Empty(t, store.List(), "content %q should load as empty", content)
	}
}

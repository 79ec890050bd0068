package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"todo/internal/service"
)

// The compiler enforces the interface; the tests below cover the wiring.
var _ service.Service = (*Store)(nil)
var _ service.Reloader = (*Store)(nil)

func TestStore_IndependentFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "items.json"), filepath.Join(dir, "patterns.json"))

	_, err := store.AddItem("task")
	require.NoError(t, err)
	require.NoError(t, store.AddPattern("mtg", "Meeting with team"))

	require.Equal(t, 1, store.ItemCount())
	require.Len(t, store.ListPatterns(), 1)

	// Expanding does not touch the item store.
	require.Equal(t, "Meeting with team at 3pm", store.ExpandText("mtg at 3pm"))
	require.Equal(t, 1, store.ItemCount())
}

func TestStore_ReloadPicksUpExternalChanges(t *testing.T) {
	dir := t.TempDir()
	itemPath := filepath.Join(dir, "items.json")
	store := New(itemPath, filepath.Join(dir, "patterns.json"))
	require.Equal(t, 0, store.ItemCount())

	other := New(itemPath, filepath.Join(dir, "patterns.json"))
	_, err := other.AddItem("written elsewhere")
	require.NoError(t, err)

	require.Equal(t, 0, store.ItemCount())
	store.Reload()
	require.Equal(t, 1, store.ItemCount())
	require.Equal(t, "written elsewhere", store.ListItems(service.FilterAll)[0].Text)
}

func TestStore_SaveFailureSurfacesError(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "items.json"), filepath.Join(dir, "patterns.json"))

	// Turn the item path into a directory so the rewrite fails.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "items.json"), 0755))

	_, err := store.AddItem("task")
	require.Error(t, err)
}

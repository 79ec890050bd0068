package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) (home, xdg string) {
	t.Helper()
	home = t.TempDir()
	xdg = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("TODO_FILE", "")
	t.Setenv("TODO_PATTERN_FILE", "")
	return home, xdg
}

func writeConfigFile(t *testing.T, xdg, content string) string {
	t.Helper()
	dir := filepath.Join(xdg, AppName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	home, _ := isolateEnv(t)

	cfg, err := Load("", "", "")
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, ItemFile), cfg.TodoFile)
	require.Equal(t, filepath.Join(home, PatternFile), cfg.PatternFile)
	require.False(t, cfg.Quiet)
}

func TestLoad_ConfigFile(t *testing.T) {
	_, xdg := isolateEnv(t)
	writeConfigFile(t, xdg, "todo_file = \"/data/items.json\"\npattern_file = \"/data/patterns.json\"\n")

	cfg, err := Load("", "", "")
	require.NoError(t, err)

	require.Equal(t, "/data/items.json", cfg.TodoFile)
	require.Equal(t, "/data/patterns.json", cfg.PatternFile)
}

func TestLoad_ConfigFileTildeExpansion(t *testing.T) {
	home, xdg := isolateEnv(t)
	writeConfigFile(t, xdg, "todo_file = \"~/notes/items.json\"\n")

	cfg, err := Load("", "", "")
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, "notes", "items.json"), cfg.TodoFile)
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	_, xdg := isolateEnv(t)
	writeConfigFile(t, xdg, "todo_file = \"/from/file.json\"\n")
	t.Setenv("TODO_FILE", "/from/env.json")

	cfg, err := Load("", "", "")
	require.NoError(t, err)

	require.Equal(t, "/from/env.json", cfg.TodoFile)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TODO_FILE", "/from/env.json")
	t.Setenv("TODO_PATTERN_FILE", "/from/env-patterns.json")

	cfg, err := Load("", "/from/flag.json", "/from/flag-patterns.json")
	require.NoError(t, err)

	require.Equal(t, "/from/flag.json", cfg.TodoFile)
	require.Equal(t, "/from/flag-patterns.json", cfg.PatternFile)
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	home, _ := isolateEnv(t)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("todo_file = \"/custom/items.json\"\n"), 0644))

	cfg, err := Load(path, "", "")
	require.NoError(t, err)

	require.Equal(t, "/custom/items.json", cfg.TodoFile)
}

func TestLoad_ExplicitConfigPathMissing(t *testing.T) {
	isolateEnv(t)

	_, err := Load("/nonexistent/config.toml", "", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file not found")
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	_, xdg := isolateEnv(t)
	writeConfigFile(t, xdg, "todo_file = [this is not toml")

	_, err := Load("", "", "")
	require.Error(t, err)
}

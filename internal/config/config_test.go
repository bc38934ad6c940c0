package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.False(t, cfg.Output.Pretty)
	assert.Equal(t, "    ", cfg.Output.Indent)
	assert.True(t, cfg.Naming.SnakeCaseKeys)
	assert.Empty(t, cfg.Naming.KeyMappings)
	assert.True(t, cfg.Convert.SortKeys)
	assert.False(t, cfg.Dev.Debug)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".armago.yml")
	content := `
output:
  pretty: true
  indent: "  "
naming:
  snake_case_keys: false
  key_mappings:
    unitName: callsign
convert:
  sort_keys: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Output.Pretty)
	assert.Equal(t, "  ", cfg.Output.Indent)
	assert.False(t, cfg.Naming.SnakeCaseKeys)
	assert.Equal(t, "callsign", cfg.Naming.KeyMappings["unitName"])
	assert.False(t, cfg.Convert.SortKeys)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/does/not/exist.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: [not a mapping"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestGetKeyName(t *testing.T) {
	cfg := NewConfig()
	cfg.Naming.KeyMappings["unitName"] = "callsign"

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{name: "explicit mapping wins", key: "unitName", expected: "callsign"},
		{name: "camel case converts", key: "groupSize", expected: "group_size"},
		{name: "pascal case converts", key: "MagCount", expected: "mag_count"},
		{name: "already snake", key: "in_reserve", expected: "in_reserve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.GetKeyName(tt.key))
		})
	}
}

func TestGetKeyName_SnakeCaseDisabled(t *testing.T) {
	cfg := NewConfig()
	cfg.Naming.SnakeCaseKeys = false

	assert.Equal(t, "groupSize", cfg.GetKeyName("groupSize"))
}

func TestLoadConfigWithCLI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".armago.yml")
	content := `
output:
  indent: "\t"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// CLI flags layer over the file values.
	cfg, err := LoadConfigWithCLI(path, "", true, true)
	require.NoError(t, err)
	assert.Equal(t, "\t", cfg.Output.Indent, "file indent survives unset flag")
	assert.True(t, cfg.Output.Pretty)
	assert.False(t, cfg.Convert.SortKeys)

	// Explicit CLI indent wins over the file.
	cfg, err = LoadConfigWithCLI(path, "  ", false, false)
	require.NoError(t, err)
	assert.Equal(t, "  ", cfg.Output.Indent)

	// No config file at all: pure defaults plus flags.
	cfg, err = LoadConfigWithCLI("", "", false, false)
	require.NoError(t, err)
	assert.Equal(t, "    ", cfg.Output.Indent)
	assert.False(t, cfg.Output.Pretty)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))
	path := filepath.Join(dir, ".armago.yml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(cwd))
	}()

	require.NoError(t, os.Chdir(sub))
	found := FindConfigFile()
	// Resolve symlinks so macOS /private/var temp paths compare equal.
	wantReal, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	foundReal, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, wantReal, foundReal)
}

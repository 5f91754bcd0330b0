package config

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/require"
)

const pluginName = "schemakit"

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestLoad_PrefersTOML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, pluginName, pluginName+".toml"), `schema_path = "server.schm"`)
	writeFile(t, filepath.Join(root, pluginName, pluginName+".json"), `{"schema_path": "other.json"}`)

	cfg, path, err := Load(root, pluginName)
	require.NoError(t, err)
	require.Equal(t, "server.schm", cfg.SchemaPath)
	require.True(t, strings.HasSuffix(path, ".toml"))

	// Unset keys keep their defaults.
	require.Equal(t, "panic", cfg.FailurePolicy)
	require.Equal(t, Default().CacheCapacity, cfg.CacheCapacity)
}

func TestLoad_JSONWithComments(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, pluginName, pluginName+".json"), `// generated
{
  // where the dump lives
  "schema_path": "gamedata.toml",
  "failure_policy": "exit",
  "cache_capacity": 0
}`)

	cfg, _, err := Load(root, pluginName)
	require.NoError(t, err)
	require.Equal(t, "gamedata.toml", cfg.SchemaPath)
	require.Equal(t, "exit", cfg.FailurePolicy)
	require.Zero(t, cfg.CacheCapacity)
}

func TestLoad_CopiesExample(t *testing.T) {
	root := t.TempDir()
	example := filepath.Join(root, pluginName, pluginName+".example.toml")
	writeFile(t, example, `schema_path = "example.schm"`)

	cfg, path, err := Load(root, pluginName)
	require.NoError(t, err)
	require.Equal(t, "example.schm", cfg.SchemaPath)
	require.Equal(t, filepath.Join(root, pluginName, pluginName+".toml"), path)

	_, err = os.Stat(path)
	require.NoError(t, err, "example must be copied into place")
	_, err = os.Stat(example)
	require.NoError(t, err, "example must be kept")
}

func TestLoad_CopiesExampleUnderDottedRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "plugins.example")
	example := filepath.Join(root, pluginName, pluginName+".example.toml")
	writeFile(t, example, "cache_capacity = 7\n")

	cfg, path, err := Load(root, pluginName)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.CacheCapacity)
	require.Equal(t, filepath.Join(root, pluginName, pluginName+".toml"), path)
}

func TestLoad_GeneratesDefault(t *testing.T) {
	root := t.TempDir()

	cfg, path, err := Load(root, pluginName)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "# This configuration was automatically generated by schemakit"))

	// The generated file loads back to the same config.
	again, _, err := Load(root, pluginName)
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestLoad_EnvOverrides(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, pluginName, pluginName+".toml"), "schema_path = \"file.schm\"\nlog_level = \"warn\"\n")

	t.Setenv("SCHEMAKIT_SCHEMA_PATH", "/srv/env.schm")
	t.Setenv("SCHEMAKIT_CACHE_CAPACITY", "128")
	t.Setenv("SCHEMAKIT_LOG_ENABLED", "true")

	cfg, _, err := Load(root, pluginName)
	require.NoError(t, err)
	require.Equal(t, "/srv/env.schm", cfg.SchemaPath)
	require.Equal(t, 128, cfg.CacheCapacity)
	require.True(t, cfg.LogEnabled)
	require.Equal(t, "warn", cfg.LogLevel, "unset env keeps file value")
}

func TestLoad_Invalid(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, pluginName, pluginName+".toml"), "cache_capacity = -1\n")
	_, _, err := Load(root, pluginName)
	require.Error(t, err)

	root = t.TempDir()
	writeFile(t, filepath.Join(root, pluginName, pluginName+".toml"), "log_level = \"loud\"\n")
	_, _, err = Load(root, pluginName)
	require.Error(t, err)

	root = t.TempDir()
	writeFile(t, filepath.Join(root, pluginName, pluginName+".toml"), "schema_path = [\n")
	_, _, err = Load(root, pluginName)
	require.Error(t, err)
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemakit.yaml")
	writeFile(t, path, "schema_path: x")
	_, err := ReadFile(path)
	require.Error(t, err)
}

func TestWriteDefault_Header(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, writeDefault(path, "demo", Default(), now))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "for 'demo', at 2026/01/02 03:04:05")

	cfg, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestConfig_Logger(t *testing.T) {
	cfg := Default()
	cfg.LogEnabled = true
	cfg.LogLevel = "debug"
	opts := cfg.Logger()
	require.True(t, opts.Enabled)
	require.Equal(t, "DEBUG", opts.Level.String())
}

func TestStripLineComments(t *testing.T) {
	out, err := stripLineComments(strings.NewReader("  // note\n{\"a\": 1}\n"))
	require.NoError(t, err)
	require.Equal(t, "\n{\"a\": 1}\n", string(out))
}

func TestStripLineComments_ReportsScanErrors(t *testing.T) {
	_, err := stripLineComments(iotest.ErrReader(errors.New("disk gone")))
	require.EqualError(t, err, "disk gone")

	_, err = stripLineComments(strings.NewReader(strings.Repeat("x", maxLineSize+1)))
	require.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestReadFile_OverlongJSONLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemakit.json")
	writeFile(t, path, `{"schema_path": "`+strings.Repeat("x", maxLineSize)+`"}`)
	_, err := ReadFile(path)
	require.ErrorIs(t, err, bufio.ErrTooLong)
}

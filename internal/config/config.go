// Package config loads schemakit runtime configuration.
//
// Configuration lives next to the plugin that embeds schemakit:
//
//	<root>/<name>/<name>.toml     (preferred)
//	<root>/<name>/<name>.json
//
// When neither exists, a shipped <name>.example.toml|json is copied into
// place; failing that a default TOML file is generated. Environment
// variables (SCHEMAKIT_*) override whatever the file says.
package config

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/joshuapare/schemakit/internal/logger"
	"github.com/joshuapare/schemakit/schema/keycache"
)

// Config is the runtime configuration.
type Config struct {
	// SchemaPath is a .schm dump or a .toml/.json gamedata file.
	SchemaPath string `toml:"schema_path" json:"schema_path" env:"SCHEMAKIT_SCHEMA_PATH"`
	// FailurePolicy is "panic" or "exit".
	FailurePolicy string `toml:"failure_policy" json:"failure_policy" env:"SCHEMAKIT_FAILURE_POLICY"`
	// CacheCapacity bounds the hot-key LRU; 0 disables it. Resolved keys
	// stay pinned regardless.
	CacheCapacity int `toml:"cache_capacity" json:"cache_capacity" env:"SCHEMAKIT_CACHE_CAPACITY"`

	LogEnabled bool   `toml:"log_enabled" json:"log_enabled" env:"SCHEMAKIT_LOG_ENABLED"`
	LogLevel   string `toml:"log_level"   json:"log_level"   env:"SCHEMAKIT_LOG_LEVEL"`
	LogDir     string `toml:"log_dir"     json:"log_dir"     env:"SCHEMAKIT_LOG_DIR"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FailurePolicy: "panic",
		CacheCapacity: keycache.DefaultCapacity,
		LogLevel:      "info",
	}
}

// Validate rejects values no component can use.
func (c Config) Validate() error {
	if c.CacheCapacity < 0 {
		return fmt.Errorf("config: cache_capacity must be >= 0, got %d", c.CacheCapacity)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Logger returns the logger options described by c.
func (c Config) Logger() logger.Options {
	level, _ := logger.ParseLevel(c.LogLevel)
	return logger.Options{Enabled: c.LogEnabled, LogDir: c.LogDir, Level: level}
}

// ApplyEnv overrides fields from SCHEMAKIT_* environment variables.
// Unset variables leave the field alone.
func ApplyEnv(c *Config) error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Load finds, reads (or creates) the configuration for name under root,
// applies environment overrides and validates the result. It returns the
// file the configuration came from.
func Load(root, name string) (Config, string, error) {
	cfg, path, err := loadFile(root, name)
	if err != nil {
		return Config{}, "", err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, "", err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

func loadFile(root, name string) (Config, string, error) {
	dir := filepath.Join(root, name)
	base := filepath.Join(dir, name)

	for _, path := range []string{base + ".toml", base + ".json"} {
		if fileExists(path) {
			cfg, err := ReadFile(path)
			return cfg, path, err
		}
	}

	for _, example := range []string{base + ".example.toml", base + ".example.json"} {
		if !fileExists(example) {
			continue
		}
		dest := filepath.Join(dir, strings.Replace(filepath.Base(example), ".example", "", 1))
		logger.Info("copying example configuration", "name", name, "from", example)
		if err := copyFile(example, dest); err != nil {
			logger.Error("failed to copy example configuration", "name", name, "err", err)
			continue
		}
		cfg, err := ReadFile(dest)
		return cfg, dest, err
	}

	cfg := Default()
	path := base + ".toml"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("failed to generate configuration", "name", name, "err", err)
		return cfg, "", nil
	}
	if err := writeDefault(path, name, cfg, time.Now()); err != nil {
		logger.Error("failed to generate configuration", "name", name, "err", err)
		return cfg, "", nil
	}
	return cfg, path, nil
}

// ReadFile decodes a single TOML or JSON configuration file on top of the
// defaults. JSON files may contain // line comments.
func ReadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".json":
		stripped, err := stripLineComments(bytes.NewReader(data))
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := json.Unmarshal(stripped, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("config: unsupported configuration file format %q", filepath.Ext(path))
	}
	return cfg, nil
}

func writeDefault(path, name string, cfg Config, now time.Time) error {
	var out bytes.Buffer
	fmt.Fprintf(&out, "# This configuration was automatically generated by schemakit for '%s', at %s\n",
		name, now.Format("2006/01/02 15:04:05"))
	if err := toml.NewEncoder(&out).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(path, out.Bytes(), 0o644)
}

// maxLineSize bounds a single configuration line.
const maxLineSize = 1 << 20

// stripLineComments blanks lines whose first non-space characters are "//".
func stripLineComments(r io.Reader) ([]byte, error) {
	var out bytes.Buffer
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := sc.Bytes()
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("//")) {
			out.WriteByte('\n')
			continue
		}
		out.Write(line)
		out.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		return errors.Join(err, out.Close())
	}
	return out.Close()
}

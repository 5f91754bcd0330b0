package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/schemakit/internal/config"
	"github.com/joshuapare/schemakit/internal/logger"
	"github.com/joshuapare/schemakit/schema"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string
	configDir  string
	configName string
)

var rootCmd = &cobra.Command{
	Use:   "schemactl",
	Short: "Inspect and compile host schema tables",
	Long: `schemactl resolves class and member names against a schema dump or
gamedata file, prints name fingerprints, converts between gamedata and the
binary .schm dump format, and dry-runs the change notification gate.`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Configuration file (.toml or .json)")
	rootCmd.PersistentFlags().
		StringVar(&configDir, "config-dir", "", "Configuration root; loads <root>/<name>/<name>.toml|json, creating it if missing")
	rootCmd.PersistentFlags().
		StringVar(&configName, "name", "schemakit", "Configuration name under --config-dir")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig returns the configuration found under --config-dir, else the
// file named by --config, else the defaults. SCHEMAKIT_* overrides apply in
// every case.
func loadConfig() (config.Config, error) {
	if configDir != "" {
		cfg, path, err := config.Load(configDir, configName)
		if err != nil {
			return config.Config{}, err
		}
		printVerbose("Using configuration: %s\n", path)
		return cfg, nil
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.ReadFile(configPath); err != nil {
			return config.Config{}, err
		}
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := cfg.Logger()
	if verbose {
		opts.Enabled = true
		opts.Writer = os.Stderr
		opts.Level = slog.LevelDebug
	}
	return logger.Init(opts)
}

// openResolver loads the schema at path using the configured policy and
// cache settings.
func openResolver(path string) (*schema.Resolver, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cfg.SchemaPath = path
	printVerbose("Opening schema: %s\n", path)
	r, err := schema.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema: %w", err)
	}
	return r, nil
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

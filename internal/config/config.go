package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the optional project configuration file looked up in the
// working directory.
const FileName = ".envctl.toml"

// Built-in defaults, used when no config file overrides them.
const (
	DefaultEnvFile     = ".env"
	DefaultExampleFile = ".env.example"
	DefaultStrategy    = "merge"
	DefaultTypegenOut  = "env.types.ts"
	DefaultFormat      = "interface"
)

// DefaultExtensions are the file extensions scanned for variable usage.
var DefaultExtensions = []string{".ts", ".tsx", ".js", ".jsx"}

// DefaultExcludes are directory names skipped while scanning.
var DefaultExcludes = []string{"node_modules", ".git", "dist", "build", ".next"}

// Config holds project-level defaults for envctl commands. Command-line
// flags override config values; config values override built-ins.
type Config struct {
	Env     string        `toml:"env"`
	Example string        `toml:"example"`
	Sync    SyncConfig    `toml:"sync"`
	Typegen TypegenConfig `toml:"typegen"`
	Scan    ScanConfig    `toml:"scan"`
}

// SyncConfig configures the sync command.
type SyncConfig struct {
	Strategy string `toml:"strategy"`
	Backup   bool   `toml:"backup"`
}

// TypegenConfig configures the typegen command.
type TypegenConfig struct {
	Output string `toml:"output"`
	Format string `toml:"format"`
}

// ScanConfig configures the scan command.
type ScanConfig struct {
	Path       string   `toml:"path"`
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Env:     DefaultEnvFile,
		Example: DefaultExampleFile,
		Sync: SyncConfig{
			Strategy: DefaultStrategy,
			Backup:   false,
		},
		Typegen: TypegenConfig{
			Output: DefaultTypegenOut,
			Format: DefaultFormat,
		},
		Scan: ScanConfig{
			Path:       ".",
			Extensions: append([]string(nil), DefaultExtensions...),
			Exclude:    append([]string(nil), DefaultExcludes...),
		},
	}
}

// Load reads .envctl.toml from dir when present, layered over the built-in
// defaults. A missing file is not an error; a malformed or invalid file is.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the Config holds usable values.
func (c *Config) Validate() error {
	if c.Env == "" {
		return fmt.Errorf("env path cannot be empty")
	}
	if c.Example == "" {
		return fmt.Errorf("example path cannot be empty")
	}

	validStrategies := map[string]bool{"merge": true, "overwrite": true, "preserve": true}
	if !validStrategies[c.Sync.Strategy] {
		return fmt.Errorf("invalid sync strategy: %s (must be merge, overwrite, or preserve)", c.Sync.Strategy)
	}

	validFormats := map[string]bool{"interface": true, "type": true, "const": true}
	if !validFormats[c.Typegen.Format] {
		return fmt.Errorf("invalid typegen format: %s (must be interface, type, or const)", c.Typegen.Format)
	}

	if c.Scan.Path == "" {
		return fmt.Errorf("scan path cannot be empty")
	}
	for _, ext := range c.Scan.Extensions {
		if ext == "" || ext[0] != '.' {
			return fmt.Errorf("invalid scan extension %q (must start with a dot)", ext)
		}
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dshills/scout/internal/catalog"
)

// Config represents the scout configuration.
type Config struct {
	Provider     string        `yaml:"provider"`
	Model        string        `yaml:"model"`
	Format       string        `yaml:"format"`
	Limit        int           `yaml:"limit"`        // max files per run; 0 = unlimited
	MaxFileChars int           `yaml:"maxFileChars"` // per-file prompt content cap
	Extensions   []string      `yaml:"extensions"`
	ExcludedDirs []string      `yaml:"excludedDirs"`
	Markers      []string      `yaml:"markers"` // importance name patterns for budgeting
	Privacy      PrivacyConfig `yaml:"privacy"`
}

// PrivacyConfig controls privacy/redaction behavior.
type PrivacyConfig struct {
	RedactSecrets bool     `yaml:"redactSecrets"`
	RedactPaths   []string `yaml:"redactPaths,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:     "ollama",
		Model:        "qwen2.5-coder",
		Format:       "text",
		Limit:        0,
		MaxFileChars: 3000,
		Extensions:   catalog.DefaultExtensions,
		ExcludedDirs: catalog.DefaultExcludedDirs,
		Markers:      catalog.DefaultMarkers,
		Privacy: PrivacyConfig{
			RedactSecrets: true,
			RedactPaths:   []string{"**/.env", "**/*secrets*"},
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for scout.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "scout"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "scout"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "scout"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "scout"), nil
	default:
		return filepath.Join(home, ".config", "scout"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Limit > 0 {
		dst.Limit = src.Limit
	}
	if src.MaxFileChars > 0 {
		dst.MaxFileChars = src.MaxFileChars
	}
	if len(src.Extensions) > 0 {
		dst.Extensions = src.Extensions
	}
	if len(src.ExcludedDirs) > 0 {
		dst.ExcludedDirs = src.ExcludedDirs
	}
	if len(src.Markers) > 0 {
		dst.Markers = src.Markers
	}
	// An absent privacy section unmarshals to false, indistinguishable from
	// an explicit false. The file can add redaction paths but never turn
	// redaction off; disabling it requires the explicit --no-redact flag.
	if len(src.Privacy.RedactPaths) > 0 {
		dst.Privacy.RedactPaths = src.Privacy.RedactPaths
	}
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("SCOUT_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("SCOUT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SCOUT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("SCOUT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCOUT_LIMIT must be an integer: %w", err)
		}
		cfg.Limit = n
	}
	if v := os.Getenv("SCOUT_MAX_FILE_CHARS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCOUT_MAX_FILE_CHARS must be an integer: %w", err)
		}
		cfg.MaxFileChars = n
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Provider = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["limit"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limit = n
		}
	}
	if v, ok := overrides["maxFileChars"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxFileChars = n
		}
	}
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "format":
		cfg.Format = value
	case "limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("limit must be an integer: %w", err)
		}
		cfg.Limit = n
	case "maxFileChars":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxFileChars must be an integer: %w", err)
		}
		cfg.MaxFileChars = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Package config handles loading and saving nb configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/nb/config.yaml
//   - Data:    ~/.local/share/nb/ (notebooks live in notebooks/ by default)
//   - State:   ~/.local/state/nb/ (nb.log)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const appName = "nb"

// Translation providers.
const (
	ProviderGoogle = "google"
	ProviderGemini = "gemini"
)

// TranslateConfig selects and configures the translation provider.
type TranslateConfig struct {
	Provider       string `yaml:"provider,omitempty"`        // google, gemini
	TargetLanguage string `yaml:"target_language,omitempty"` // ISO-639 code, e.g. "es"
	APIKeyEnv      string `yaml:"api_key_env,omitempty"`     // env var holding the key
	Endpoint       string `yaml:"endpoint,omitempty"`        // google only
	Model          string `yaml:"model,omitempty"`           // gemini only
}

// UIConfig holds UI preference settings.
type UIConfig struct {
	Pace           time.Duration `yaml:"pace,omitempty"`            // Pause between a flow and the next menu
	RenderMarkdown bool          `yaml:"render_markdown,omitempty"` // Render note content with glamour
	Accessible     bool          `yaml:"accessible,omitempty"`      // Plain-text prompts
	Editor         string        `yaml:"editor,omitempty"`          // External editor for ctrl+e in the edit prompt
	Watch          *bool         `yaml:"watch,omitempty"`           // Report on-disk changes between menus
}

// LogConfig controls where the log file goes.
type LogConfig struct {
	File string `yaml:"file,omitempty"`
}

// Config is the top-level configuration for nb.
type Config struct {
	BaseDir   string          `yaml:"base_dir,omitempty"`
	Translate TranslateConfig `yaml:"translate,omitempty"`
	UI        UIConfig        `yaml:"ui,omitempty"`
	Log       LogConfig       `yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	cfg := Config{
		Translate: TranslateConfig{
			Provider:       ProviderGoogle,
			TargetLanguage: "es",
		},
		UI: UIConfig{
			Pace: 500 * time.Millisecond,
		},
	}
	if dir := DataDir(); dir != "" {
		cfg.BaseDir = filepath.Join(dir, "notebooks")
	}
	if dir := StateDir(); dir != "" {
		cfg.Log.File = filepath.Join(dir, appName+".log")
	}
	return cfg
}

// ConfigDir returns the XDG config directory for nb.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// DataDir returns the XDG data directory for nb.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", appName)
}

// StateDir returns the XDG state directory for nb.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", appName)
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig().withEnv(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path, then applies environment
// overrides. Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg.withEnv(), nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.BaseDir = expandHome(cfg.BaseDir)
	cfg.Log.File = expandHome(cfg.Log.File)

	return cfg.withEnv(), nil
}

// withEnv applies NB_DIR and NB_TARGET_LANG.
func (c Config) withEnv() Config {
	if dir := strings.TrimSpace(os.Getenv("NB_DIR")); dir != "" {
		c.BaseDir = expandHome(dir)
	}
	if lang := strings.TrimSpace(os.Getenv("NB_TARGET_LANG")); lang != "" {
		c.Translate.TargetLanguage = lang
	}
	return c
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// WatchEnabled reports whether on-disk change notices are on (default true).
func (c Config) WatchEnabled() bool {
	return c.UI.Watch == nil || *c.UI.Watch
}

// KeyEnv returns the environment variable the translator key is read from.
func (t TranslateConfig) KeyEnv() string {
	if t.APIKeyEnv != "" {
		return t.APIKeyEnv
	}
	if t.Provider == ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "GOOGLE_API_KEY"
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseDir) == "" {
		return fmt.Errorf("base_dir is empty and no home directory is available")
	}
	switch c.Translate.Provider {
	case "", ProviderGoogle, ProviderGemini:
	default:
		return fmt.Errorf("unknown translate.provider %q (want %q or %q)",
			c.Translate.Provider, ProviderGoogle, ProviderGemini)
	}
	if c.UI.Pace < 0 {
		return fmt.Errorf("ui.pace must not be negative")
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

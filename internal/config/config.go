// Package config loads assetpick configuration.
//
// Configuration comes from a single YAML file chosen by, in order:
//   - the --config flag,
//   - the ASSETPICK_CONFIG environment variable,
//   - $XDG_CONFIG_HOME/assetpick/config.yaml (or ~/.config/...) when present.
//
// Without a file the built-in defaults apply. Command-line flags override
// file values after loading.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/kk-code-lab/assetpick/internal/asset"
	"github.com/kk-code-lab/assetpick/internal/category"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "ASSETPICK_CONFIG"

// ErrInvalidConfig wraps every configuration error.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete assetpick configuration.
type Config struct {
	// Root is the asset directory. Default: the working directory.
	Root string `yaml:"root"`

	// PageSize caps the visible list. Default: 32
	PageSize int `yaml:"page_size"`

	// Matcher selects the ranking engine: fuzzy or fzf.
	Matcher string `yaml:"matcher"`

	// Locale formats modification times, e.g. en-US or de_DE.UTF-8.
	// Default: LC_ALL, LC_TIME or LANG.
	Locale string `yaml:"locale"`

	// Watch marks the collection stale when files under Root change.
	Watch bool `yaml:"watch"`

	// Opener is the command used to open files and folders, e.g. "xdg-open".
	// Default: the platform opener.
	Opener string `yaml:"opener"`

	Noise NoiseConfig `yaml:"noise"`
	Link  LinkConfig  `yaml:"link"`
	Tabs  []TabConfig `yaml:"tabs"`
	Log   LogConfig   `yaml:"log"`
}

// NoiseConfig tunes timestamp-noise stripping in display names.
type NoiseConfig struct {
	// MinRun is the shortest [0-9_] run stripped before a dot or the end.
	MinRun int `yaml:"min_run"`

	// MinNameLength only strips names longer than this. 0 strips always.
	MinNameLength int `yaml:"min_name_length"`

	// StripNoiseOnlyNames reduces all-noise names to their extension.
	StripNoiseOnlyNames bool `yaml:"strip_noise_only_names"`
}

// LinkConfig configures the Markdown link inserted on commit.
type LinkConfig struct {
	// Marker is the path segment the link target is taken after.
	Marker string `yaml:"marker"`

	// Prefix is prepended to the link target.
	Prefix string `yaml:"prefix"`

	// RichExtensions get the ! embed prefix.
	RichExtensions []string `yaml:"rich_extensions"`
}

// TabConfig declares one file-type tab.
type TabConfig struct {
	ID         string   `yaml:"id"`
	Label      string   `yaml:"label"`
	Extensions []string `yaml:"extensions"`
}

// LogConfig configures the log file.
type LogConfig struct {
	// File is the log path. Empty disables logging.
	File   string `yaml:"file"`
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	specs := category.DefaultSpecs()
	tabs := make([]TabConfig, len(specs))
	for i, spec := range specs {
		tabs[i] = TabConfig{ID: string(spec.ID), Label: spec.Label, Extensions: slices.Clone(spec.Extensions)}
	}

	return &Config{
		PageSize: 32,
		Matcher:  "fuzzy",
		Watch:    true,
		Noise: NoiseConfig{
			MinRun:        asset.DefaultNoiseMinRun,
			MinNameLength: asset.DefaultNoiseMinNameLength,
		},
		Link: LinkConfig{
			Marker:         "/assets/",
			Prefix:         "assets/",
			RichExtensions: slices.Clone(asset.DefaultRichExtensions),
		},
		Tabs: tabs,
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Resolve returns the config file to load, or "" for built-in defaults.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	candidate := filepath.Join(base, "assetpick", "config.yaml")
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return ""
}

// Load resolves and loads the configuration. It returns the file used, if any.
func Load(explicit string) (*Config, string, error) {
	path := Resolve(explicit)
	if path == "" {
		cfg := Default()
		cfg.expandVariables()
		return cfg, "", nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// LoadFile loads configuration from a specific file path, on top of Default.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// expandVariables expands ~ and ${VAR} / ${VAR:-default} in paths.
func (c *Config) expandVariables() {
	c.Root = expandPath(c.Root)
	c.Log.File = expandPath(c.Log.File)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}

func expandPath(p string) string {
	p = expandVars(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", c.PageSize))
	}

	matchers := []string{"fuzzy", "fzf"}
	if !slices.Contains(matchers, c.Matcher) {
		errs = append(errs, fmt.Errorf("matcher must be one of: %v", matchers))
	}

	if c.Noise.MinRun < 1 {
		errs = append(errs, fmt.Errorf("noise.min_run must be at least 1, got %d", c.Noise.MinRun))
	}
	if c.Noise.MinNameLength < 0 {
		errs = append(errs, fmt.Errorf("noise.min_name_length must not be negative, got %d", c.Noise.MinNameLength))
	}

	if _, err := category.NewIndex(c.TabSpecs()); err != nil {
		errs = append(errs, fmt.Errorf("tabs: %w", err))
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", levels))
	}
	formats := []string{"json", "console"}
	if !slices.Contains(formats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", formats))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// TabSpecs converts the tab list for category.NewIndex.
func (c *Config) TabSpecs() []category.Spec {
	specs := make([]category.Spec, len(c.Tabs))
	for i, tab := range c.Tabs {
		specs[i] = category.Spec{ID: category.Tab(tab.ID), Label: tab.Label, Extensions: tab.Extensions}
	}
	return specs
}

// NoiseOptions converts the noise section for asset.NewNormalizer.
func (c *Config) NoiseOptions() asset.NoiseOptions {
	return asset.NoiseOptions{
		MinRun:              c.Noise.MinRun,
		MinNameLength:       c.Noise.MinNameLength,
		StripNoiseOnlyNames: c.Noise.StripNoiseOnlyNames,
	}
}

// LocaleName returns the configured locale, falling back to the environment.
func (c *Config) LocaleName() string {
	if c.Locale != "" {
		return c.Locale
	}
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

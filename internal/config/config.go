// Package config loads the optional folio configuration file.
//
// The file is TOML. It supplies default imposition parameters and lets
// users register extra N-up presets and paper sizes on top of the
// built-in tables:
//
//	[defaults]
//	paper   = "a4"
//	preset  = "4up"
//	spacing = 6
//	margin  = 18
//	fit     = "fit"
//
//	[presets]
//	"3up" = "3x1"
//
//	[papers]
//	postcard = "288x432"
//
// A missing file is not an error; Load returns the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tsawler/folio/geom"
	"github.com/tsawler/folio/layout"
)

// EnvConfigPath overrides the default configuration file location.
const EnvConfigPath = "FOLIO_CONFIG"

// Defaults holds the fallback imposition parameters applied when a flag
// is not given on the command line.
type Defaults struct {
	Paper   string  `toml:"paper"`
	Preset  string  `toml:"preset"`
	Spacing float64 `toml:"spacing"`
	Margin  float64 `toml:"margin"`
	Fit     string  `toml:"fit"`
}

// Config is the decoded configuration file.
type Config struct {
	Defaults Defaults          `toml:"defaults"`
	Presets  map[string]string `toml:"presets"`
	Papers   map[string]string `toml:"papers"`
}

// New returns the configuration used when no file is present.
func New() *Config {
	return &Config{
		Defaults: Defaults{
			Paper:  "a4",
			Preset: "2up",
			Fit:    "fit",
		},
	}
}

// Load reads the configuration file at path. A nonexistent file yields
// the built-in defaults.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the configuration from $FOLIO_CONFIG, or from
// ~/.config/folio/config.toml when the variable is unset.
func LoadDefault() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return New(), nil
	}
	return Load(filepath.Join(home, ".config", "folio", "config.toml"))
}

// PresetTable returns the built-in preset table extended with the
// configured presets. Custom entries shadow built-ins of the same name.
func (c *Config) PresetTable() (layout.PresetTable, error) {
	table := layout.DefaultPresets()
	for name, spec := range c.Presets {
		grid, err := layout.ParseGrid(spec)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		table[name] = grid
	}
	return table, nil
}

// PaperTable returns the built-in paper table extended with the
// configured paper sizes.
func (c *Config) PaperTable() (layout.PaperTable, error) {
	table := layout.DefaultPapers()
	for name, spec := range c.Papers {
		size, err := layout.ParseSize(spec)
		if err != nil {
			return nil, fmt.Errorf("paper %q: %w", name, err)
		}
		table[name] = size
	}
	return table, nil
}

// ResolvePaper resolves a paper name or "WIDTHxHEIGHT" spec against the
// configured paper table. An empty spec resolves the configured default.
func (c *Config) ResolvePaper(spec string) (geom.Size, error) {
	if spec == "" {
		spec = c.Defaults.Paper
	}

	table, err := c.PaperTable()
	if err != nil {
		return geom.Size{}, err
	}
	if size, ok := table.Lookup(spec); ok {
		return size, nil
	}
	return layout.ParseSize(spec)
}

// ResolveGrid resolves a preset name or "COLSxROWS" spec against the
// configured preset table. An empty spec resolves the configured default.
func (c *Config) ResolveGrid(spec string) (layout.Grid, error) {
	if spec == "" {
		spec = c.Defaults.Preset
	}

	table, err := c.PresetTable()
	if err != nil {
		return layout.Grid{}, err
	}
	if grid, ok := table.Lookup(spec); ok {
		return grid, nil
	}
	return layout.ParseGrid(spec)
}

// ResolveFit resolves a fit mode name, falling back to the configured
// default when empty.
func (c *Config) ResolveFit(spec string) (geom.FitMode, error) {
	if spec == "" {
		spec = c.Defaults.Fit
	}
	return geom.ParseFitMode(spec)
}

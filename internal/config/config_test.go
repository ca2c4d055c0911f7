package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/folio/geom"
	"github.com/tsawler/folio/layout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Writing config: %v", err)
	}
	return path
}

// ============================================================================
// Load
// ============================================================================

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(New(), cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[defaults]
paper = "letter"
preset = "4up"
spacing = 6
margin = 18
fit = "fill"

[presets]
"3up" = "3x1"

[papers]
postcard = "288x432"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Defaults.Paper != "letter" || cfg.Defaults.Preset != "4up" {
		t.Errorf("Defaults = %+v", cfg.Defaults)
	}
	if cfg.Defaults.Spacing != 6 || cfg.Defaults.Margin != 18 {
		t.Errorf("Spacing/Margin = %g/%g, want 6/18", cfg.Defaults.Spacing, cfg.Defaults.Margin)
	}
	if cfg.Presets["3up"] != "3x1" {
		t.Errorf(`Presets["3up"] = %q, want "3x1"`, cfg.Presets["3up"])
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, `defaults = "not a table`)
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed TOML")
	}
}

func TestLoadDefaultHonorsEnv(t *testing.T) {
	path := writeConfig(t, `
[defaults]
preset = "9up"
`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if cfg.Defaults.Preset != "9up" {
		t.Errorf("Preset = %q, want 9up", cfg.Defaults.Preset)
	}
}

// ============================================================================
// Resolution
// ============================================================================

func TestResolvePaper(t *testing.T) {
	cfg := New()
	cfg.Papers = map[string]string{"postcard": "288x432"}

	tests := []struct {
		spec string
		want geom.Size
	}{
		{"a4", layout.A4},
		{"postcard", geom.Size{Width: 288, Height: 432}},
		{"500x700", geom.Size{Width: 500, Height: 700}},
		{"", layout.A4}, // configured default
	}

	for _, tt := range tests {
		got, err := cfg.ResolvePaper(tt.spec)
		if err != nil {
			t.Fatalf("ResolvePaper(%q): %v", tt.spec, err)
		}
		if got != tt.want {
			t.Errorf("ResolvePaper(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestResolvePaperUnknown(t *testing.T) {
	if _, err := New().ResolvePaper("b9"); err == nil {
		t.Error("Expected error for unknown paper name")
	}
}

func TestResolveGrid(t *testing.T) {
	cfg := New()
	cfg.Presets = map[string]string{"3up": "3x1"}

	tests := []struct {
		spec string
		want layout.Grid
	}{
		{"4up", layout.Grid{Cols: 2, Rows: 2}},
		{"3up", layout.Grid{Cols: 3, Rows: 1}},
		{"5x2", layout.Grid{Cols: 5, Rows: 2}},
		{"", layout.Grid{Cols: 2, Rows: 1}}, // configured default "2up"
	}

	for _, tt := range tests {
		got, err := cfg.ResolveGrid(tt.spec)
		if err != nil {
			t.Fatalf("ResolveGrid(%q): %v", tt.spec, err)
		}
		if got != tt.want {
			t.Errorf("ResolveGrid(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestResolveGridShadowsBuiltin(t *testing.T) {
	cfg := New()
	cfg.Presets = map[string]string{"4up": "4x1"}

	got, err := cfg.ResolveGrid("4up")
	if err != nil {
		t.Fatalf("ResolveGrid: %v", err)
	}
	if got != (layout.Grid{Cols: 4, Rows: 1}) {
		t.Errorf("ResolveGrid = %+v, want custom 4x1", got)
	}
}

func TestResolveFit(t *testing.T) {
	cfg := New()

	mode, err := cfg.ResolveFit("")
	if err != nil {
		t.Fatalf("ResolveFit: %v", err)
	}
	if mode != geom.FitModeFit {
		t.Errorf("ResolveFit(\"\") = %v, want FitModeFit", mode)
	}

	if _, err := cfg.ResolveFit("bogus"); err == nil {
		t.Error("Expected error for unknown fit mode")
	}
}

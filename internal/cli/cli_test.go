package cli

import (
	"bytes"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/internal/config"
)

// ============================================================================
// Flag Resolution
// ============================================================================

func TestConfigureImposer(t *testing.T) {
	cfg := config.New()
	opts := nupOpts{grid: "4up", paper: "a3", spacing: 6, margin: 12, fit: "fill"}

	im, err := configureImposer(folio.Open("doc.pdf"), cfg, &opts)
	if err != nil {
		t.Fatalf("configureImposer: %v", err)
	}
	if im == nil {
		t.Fatal("Expected configured imposer")
	}
}

func TestConfigureImposerDefaults(t *testing.T) {
	cfg := config.New()
	opts := nupOpts{} // everything falls back to configured defaults

	if _, err := configureImposer(folio.Open("doc.pdf"), cfg, &opts); err != nil {
		t.Fatalf("configureImposer with defaults: %v", err)
	}
}

func TestConfigureImposerRejectsUnknownValues(t *testing.T) {
	cfg := config.New()

	tests := []struct {
		name string
		opts nupOpts
	}{
		{"unknown grid", nupOpts{grid: "17up"}},
		{"unknown paper", nupOpts{paper: "b9"}},
		{"unknown fit", nupOpts{fit: "squish"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := configureImposer(folio.Open("doc.pdf"), cfg, &tt.opts); err == nil {
				t.Errorf("Expected error for %+v", tt.opts)
			}
		})
	}
}

// ============================================================================
// Command Wiring
// ============================================================================

func TestNUpRequiresOutput(t *testing.T) {
	cmd := newNUpCmd(config.New())
	cmd.SetArgs([]string{"doc.pdf"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "--output") {
		t.Errorf("Execute error = %v, want missing --output", err)
	}
}

func TestRotateRejectsNonMultipleOf90(t *testing.T) {
	cmd := newRotateCmd()
	cmd.SetArgs([]string{"doc.pdf", "45", "-o", "out.pdf"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for 45 degree rotation")
	}
}

// ============================================================================
// Logging
// ============================================================================

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, charmlog.InfoLevel)

	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Debug message should be filtered at info level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("Info message should be logged at info level")
	}
}

func TestLoggerFromContextFallback(t *testing.T) {
	if loggerFromContext(t.Context()) == nil {
		t.Error("Expected default logger for bare context")
	}
}

package geom

import (
	"math"
	"testing"
)

func TestFitScaleFit(t *testing.T) {
	tests := []struct {
		name       string
		content    Size
		container  Size
		wantScale  float64
		wantOffset Point
	}{
		{"wide content letterboxed", Size{100, 50}, Size{200, 200}, 2, Point{0, 50}},
		{"tall content pillarboxed", Size{50, 100}, Size{200, 200}, 2, Point{50, 0}},
		{"exact match", Size{200, 200}, Size{200, 200}, 1, Point{0, 0}},
		{"downscale", Size{400, 400}, Size{100, 200}, 0.25, Point{0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitScale(tt.content, tt.container, FitModeFit)
			if got.Scale != tt.wantScale {
				t.Errorf("Scale = %v, want %v", got.Scale, tt.wantScale)
			}
			if got.Offset != tt.wantOffset {
				t.Errorf("Offset = %+v, want %+v", got.Offset, tt.wantOffset)
			}
		})
	}
}

func TestFitScaleFill(t *testing.T) {
	got := FitScale(Size{100, 50}, Size{200, 200}, FitModeFill)
	if got.Scale != 4 {
		t.Errorf("Scale = %v, want 4", got.Scale)
	}
	// The 400x200 scaled content is centered: it overflows horizontally by
	// 200, half of which hangs off each side.
	if got.Offset != (Point{-100, 0}) {
		t.Errorf("Offset = %+v, want {-100, 0}", got.Offset)
	}
}

func TestFitScaleStretchFallsBackToFit(t *testing.T) {
	content := Size{100, 50}
	container := Size{200, 200}

	stretch := FitScale(content, container, FitModeStretch)
	fit := FitScale(content, container, FitModeFit)
	if stretch != fit {
		t.Errorf("stretch = %+v, fit = %+v, want equal", stretch, fit)
	}
}

func TestFitScaleDegenerate(t *testing.T) {
	// Zero-sized inputs follow ordinary floating-point division; the caller
	// is responsible for guarding them.
	got := FitScale(Size{0, 0}, Size{100, 100}, FitModeFit)
	if !math.IsInf(got.Scale, 1) {
		t.Errorf("Scale for zero content = %v, want +Inf", got.Scale)
	}

	got = FitScale(Size{100, 100}, Size{0, 0}, FitModeFit)
	if got.Scale != 0 {
		t.Errorf("Scale for zero container = %v, want 0", got.Scale)
	}
}

func TestFitScaleDeterministic(t *testing.T) {
	content := Size{123.4, 567.8}
	container := Size{345.6, 78.9}

	first := FitScale(content, container, FitModeFill)
	for i := 0; i < 10; i++ {
		if got := FitScale(content, container, FitModeFill); got != first {
			t.Fatalf("FitScale not deterministic: %+v != %+v", got, first)
		}
	}
}

func TestFitModeString(t *testing.T) {
	tests := []struct {
		mode     FitMode
		expected string
	}{
		{FitModeFit, "fit"},
		{FitModeFill, "fill"},
		{FitModeStretch, "stretch"},
		{FitMode(99), "unknown"},
	}

	for _, tt := range tests {
		if tt.mode.String() != tt.expected {
			t.Errorf("FitMode(%d).String() = %v, want %v", tt.mode, tt.mode.String(), tt.expected)
		}
	}
}

func TestParseFitMode(t *testing.T) {
	for _, mode := range []FitMode{FitModeFit, FitModeFill, FitModeStretch} {
		got, err := ParseFitMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseFitMode(%q) = %v, %v", mode.String(), got, err)
		}
	}

	if _, err := ParseFitMode("cover"); err == nil {
		t.Error("ParseFitMode(\"cover\") should fail")
	}
}

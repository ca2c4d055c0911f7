package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/tsawler/folio/geom"
	"github.com/tsawler/folio/impose"
	"github.com/tsawler/folio/layout"
)

// ============================================================================
// Test Helpers
// ============================================================================

func twoUpSheet(t *testing.T) impose.Sheet {
	t.Helper()

	nup := layout.NUp{
		Grid:  layout.Grid{Cols: 2, Rows: 1},
		Sheet: geom.Size{Width: 842, Height: 595},
	}
	pages := []geom.Size{
		{Width: 595, Height: 842},
		{Width: 595, Height: 842},
	}
	sheets, err := impose.NUpSheets(pages, nup, geom.FitModeFit)
	if err != nil {
		t.Fatalf("NUpSheets: %v", err)
	}
	if len(sheets) != 1 {
		t.Fatalf("Expected 1 sheet, got %d", len(sheets))
	}
	return sheets[0]
}

// ============================================================================
// RenderSheet
// ============================================================================

func TestRenderSheetDimensions(t *testing.T) {
	sheet := twoUpSheet(t)

	img, err := RenderSheet(sheet, Options{Width: 400})
	if err != nil {
		t.Fatalf("RenderSheet: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 400 {
		t.Errorf("Width = %d, want 400", bounds.Dx())
	}
	width := 400.0
	wantH := int(width * 595.0 / 842.0)
	if bounds.Dy() != wantH {
		t.Errorf("Height = %d, want %d", bounds.Dy(), wantH)
	}
}

func TestRenderSheetDefaults(t *testing.T) {
	sheet := twoUpSheet(t)

	img, err := RenderSheet(sheet, Options{})
	if err != nil {
		t.Fatalf("RenderSheet: %v", err)
	}
	if img.Bounds().Dx() != 600 {
		t.Errorf("Default width = %d, want 600", img.Bounds().Dx())
	}
}

func TestRenderSheetDrawsPlacements(t *testing.T) {
	sheet := twoUpSheet(t)

	img, err := RenderSheet(sheet, Options{Width: 400, Oversample: 1})
	if err != nil {
		t.Fatalf("RenderSheet: %v", err)
	}

	// The center of the left cell falls inside a page footprint, so it
	// must not be background white.
	bounds := img.Bounds()
	c := img.At(bounds.Dx()/4, bounds.Dy()/2)
	r, g, b, _ := c.RGBA()
	white := color.RGBA{255, 255, 255, 255}
	wr, wg, wb, _ := white.RGBA()
	if r == wr && g == wg && b == wb {
		t.Error("Expected page footprint pixel at left cell center, got background")
	}
}

func TestRenderSheetRejectsDegenerateSize(t *testing.T) {
	sheet := impose.Sheet{Size: geom.Size{Width: 0, Height: 595}}
	if _, err := RenderSheet(sheet, Options{}); err == nil {
		t.Error("Expected error for zero-width sheet")
	}
}

// ============================================================================
// WritePNG
// ============================================================================

func TestWritePNG(t *testing.T) {
	sheet := twoUpSheet(t)

	var buf bytes.Buffer
	if err := WritePNG(&buf, sheet, Options{Width: 200}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decoding output: %v", err)
	}
	if img.Bounds().Dx() != 200 {
		t.Errorf("Decoded width = %d, want 200", img.Bounds().Dx())
	}
}

//go:build ocr

package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// createTestPNG creates a simple PNG image with a block pattern for testing.
func createTestPNG(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))

	// Fill with white
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}

	// Draw some black pixels (simple pattern)
	for x := 10; x < 50; x++ {
		for y := 10; y < 30; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if client == nil {
		t.Error("Expected non-nil client")
	}
}

func TestRecognize(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	pngData := createTestPNG(100, 50)

	// The test image is just a rectangle, so only verify the call succeeds.
	if _, err := client.Recognize(pngData); err != nil {
		t.Errorf("Recognize failed: %v", err)
	}
}

func TestWords(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	words, err := client.Words(createTestPNG(100, 50))
	if err != nil {
		t.Fatalf("Words failed: %v", err)
	}

	for _, w := range words {
		if w.Text == "" {
			t.Error("Words returned an empty word")
		}
		if w.Box.Width < 0 || w.Box.Height < 0 {
			t.Errorf("word %q has negative box %+v", w.Text, w.Box)
		}
	}
}

func TestSetLanguage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	// English should always be available
	if err := client.SetLanguage("eng"); err != nil {
		t.Errorf("SetLanguage failed: %v", err)
	}
}

func TestClose(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}

	// First close should succeed
	if err := client.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	// Second close should also be safe (nil inner client)
	client.client = nil
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client failed: %v", err)
	}
}

//go:build ocr

// Package ocr provides the text-recognition capability for scanned pages.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/folio/geom"
)

// Client wraps Tesseract for text recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. The client should be closed when no longer
// needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Recognize performs OCR on image data (PNG, TIFF, JPEG, etc.) and returns
// the recognized text with leading/trailing whitespace trimmed.
func (c *Client) Recognize(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// Words performs OCR on image data and returns the recognized words with
// their bounding boxes in image pixel coordinates (top-left origin, as
// reported by Tesseract).
func (c *Client) Words(imageData []byte) ([]Word, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		words = append(words, Word{
			Text:       text,
			Confidence: b.Confidence,
			Box: geom.Rect{
				X:      float64(b.Box.Min.X),
				Y:      float64(b.Box.Min.Y),
				Width:  float64(b.Box.Dx()),
				Height: float64(b.Box.Dy()),
			},
		})
	}

	return words, nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages can
// be specified as a "+" separated string (e.g., "eng+fra"). Default is
// "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

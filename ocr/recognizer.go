package ocr

import "github.com/tsawler/folio/geom"

// Word is one recognized word with its bounding box in image pixel
// coordinates.
type Word struct {
	Text       string
	Confidence float64
	Box        geom.Rect
}

// Recognizer is the text-recognition capability consumed by callers that
// want to search or index page images. Client implements it when OCR
// support is compiled in.
type Recognizer interface {
	// Recognize returns the text recognized in an image.
	Recognize(imageData []byte) (string, error)
	// Words returns the recognized words with their bounding boxes.
	Words(imageData []byte) ([]Word, error)
	// Close releases recognition resources.
	Close() error
}

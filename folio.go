// Package folio provides a fluent API for imposing PDF pages onto larger
// sheets: N-up arrangements, and poster tiling that splits oversized pages
// across multiple smaller sheets.
//
// Basic usage:
//
//	err := folio.Open("slides.pdf").
//	    Grid(2, 2).
//	    Paper("a3").
//	    NUp(ctx, "handout.pdf")
//
// Poster tiling:
//
//	err := folio.Open("plan.pdf").
//	    Tile(595, 842).
//	    Overlap(18).
//	    Poster(ctx, "tiles.pdf")
//
// For direct access to the placement math, the geom, layout, and impose
// packages are also available.
package folio

import (
	"github.com/tsawler/folio/document"
)

// Open prepares an imposition of the given PDF file and returns an Imposer
// for fluent configuration. Nothing is read until a terminal operation such
// as [Imposer.NUp] or [Imposer.Plan] runs.
//
// Example:
//
//	err := folio.Open("slides.pdf").Grid(2, 2).NUp(ctx, "out.pdf")
func Open(filename string) *Imposer {
	return &Imposer{
		filename: filename,
		backend:  document.NewPDFCPUBackend(),
		options:  defaultOptions(),
	}
}

// WithBackend creates an Imposer using a caller-supplied document backend.
// This is how tests substitute a fake backend, and how alternative PDF
// engines plug in.
func WithBackend(filename string, b document.Backend) *Imposer {
	return &Imposer{
		filename: filename,
		backend:  b,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	sheets := folio.Must(folio.Open("doc.pdf").Grid(2, 2).Plan(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

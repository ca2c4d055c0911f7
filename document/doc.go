// Package document defines the document backend capability: the external
// collaborator that owns PDF parsing, serialization and page lifecycle.
//
// The layout engine never touches document objects; it consumes
// [PageGeometry] values describing page boxes and rotation, and produces
// placement plans that a [Backend] executes. The [Backend] interface is the
// boundary; everything above it is pure.
//
// [PDFCPUBackend] implements the interface with pdfcpu. Imposition sheets
// are assembled by extracting each source page, rewriting its media box to
// the sheet size and wrapping its content stream in a transformation
// (q/cm/Q), then overlaying any further placements as PDF stamps and
// merging the finished sheets.
package document

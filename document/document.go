package document

import (
	"context"

	"github.com/tsawler/folio/geom"
	"github.com/tsawler/folio/impose"
)

// PageGeometry describes one page's boxes and rotation. The layout engine
// reads the media box dimensions; the optional boxes are carried through
// for callers that need them. Pages themselves stay owned by the backend.
type PageGeometry struct {
	MediaBox geom.Rect
	CropBox  *geom.Rect
	TrimBox  *geom.Rect
	BleedBox *geom.Rect
	ArtBox   *geom.Rect
	Rotation int // 0, 90, 180 or 270, per PDF convention
}

// Size returns the media box dimensions.
func (g PageGeometry) Size() geom.Size {
	return g.MediaBox.Size()
}

// EffectiveBox returns the crop box when present, the media box otherwise.
func (g PageGeometry) EffectiveBox() geom.Rect {
	if g.CropBox != nil {
		return *g.CropBox
	}
	return g.MediaBox
}

// RotatedSize returns the media box dimensions as displayed, with width and
// height swapped for 90 and 270 degree rotations.
func (g PageGeometry) RotatedSize() geom.Size {
	s := g.Size()
	if g.Rotation%180 != 0 {
		return geom.Size{Width: s.Height, Height: s.Width}
	}
	return s
}

// Backend is the document manipulation capability. Implementations own all
// PDF I/O; the layout engine only ever hands them placement plans and file
// paths.
type Backend interface {
	// Geometry reads the page geometry of every page in the document.
	Geometry(ctx context.Context, path string) ([]PageGeometry, error)

	// Impose writes a new document with one page per sheet, each source
	// page drawn at its planned position and scale.
	Impose(ctx context.Context, src string, sheets []impose.Sheet, out string) error

	// Merge concatenates the input documents into one.
	Merge(ctx context.Context, inputs []string, out string) error

	// Split writes the document out in files of span pages each.
	Split(ctx context.Context, src string, span int, outDir string) error

	// Rotate rotates the selected pages (all pages when selection is nil)
	// by the given multiple of 90 degrees.
	Rotate(ctx context.Context, src string, rotation int, pages []string, out string) error

	// StampImage draws an image file onto one page at the given position
	// and scale.
	StampImage(ctx context.Context, src, image string, page int, pos geom.Point, scale float64, out string) error
}

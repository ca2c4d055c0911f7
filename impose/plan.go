package impose

import (
	"fmt"

	"github.com/tsawler/folio/geom"
	"github.com/tsawler/folio/layout"
)

// Placement positions one source page on one output sheet.
type Placement struct {
	// Page is the 0-based index of the source page.
	Page int
	// Cell is the destination cell on the sheet, bottom-left origin.
	Cell geom.Rect
	// Scale is the uniform factor applied to the source page.
	Scale float64
	// Offset is the absolute position of the scaled page's lower-left
	// corner on the sheet.
	Offset geom.Point
}

// Matrix returns the affine transform realizing the placement: the page is
// scaled first, then translated to its offset.
func (p Placement) Matrix() geom.Matrix {
	return geom.Scale(p.Scale, p.Scale).Multiply(geom.Translate(p.Offset.X, p.Offset.Y))
}

// Sheet is the placement plan for one output page.
type Sheet struct {
	Size       geom.Size
	Placements []Placement
}

// NUpSheets plans an N-up imposition: every source page is fitted into its
// grid cell according to mode, and consecutive runs of n.Grid.PerSheet()
// pages are grouped onto one sheet. pageSizes holds the dimensions of each
// source page in order; pages with degenerate dimensions are rejected.
func NUpSheets(pageSizes []geom.Size, n layout.NUp, mode geom.FitMode) ([]Sheet, error) {
	cells, err := n.BottomOriginCells(len(pageSizes))
	if err != nil {
		return nil, err
	}

	perSheet := n.Grid.PerSheet()
	sheets := make([]Sheet, 0, n.SheetCount(len(pageSizes)))

	for i, size := range pageSizes {
		if !size.IsPositive() {
			return nil, fmt.Errorf("page %d has degenerate size %gx%g: %w",
				i+1, size.Width, size.Height, layout.ErrInvalidGeometry)
		}

		if i%perSheet == 0 {
			sheets = append(sheets, Sheet{Size: n.Sheet})
		}
		sheet := &sheets[len(sheets)-1]

		cell := cells[i]
		fit := geom.FitScale(size, cell.Size(), mode)
		sheet.Placements = append(sheet.Placements, Placement{
			Page:  i,
			Cell:  cell,
			Scale: fit.Scale,
			Offset: geom.Point{
				X: cell.X + fit.Offset.X,
				Y: cell.Y + fit.Offset.Y,
			},
		})
	}

	return sheets, nil
}

// PosterSheets plans a poster imposition: one sheet per tile, each the size
// of its (possibly clamped) tile, with the single source page translated so
// the tile's region lands at the sheet origin. The page is never scaled.
func PosterSheets(pageSize geom.Size, p layout.Poster) ([]Sheet, error) {
	if p.Page == (geom.Size{}) {
		p.Page = pageSize
	}
	if p.Page != pageSize {
		return nil, fmt.Errorf("poster page size %gx%g does not match source page %gx%g: %w",
			p.Page.Width, p.Page.Height, pageSize.Width, pageSize.Height,
			layout.ErrInvalidParameters)
	}

	tiles, err := p.Tiles()
	if err != nil {
		return nil, err
	}

	sheets := make([]Sheet, len(tiles))
	for i, tile := range tiles {
		sheets[i] = Sheet{
			Size: tile.Size(),
			Placements: []Placement{{
				Page:   0,
				Cell:   geom.Rect{Width: tile.Width, Height: tile.Height},
				Scale:  1,
				Offset: geom.Point{X: -tile.X, Y: -tile.Y},
			}},
		}
	}

	return sheets, nil
}

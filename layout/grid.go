package layout

import (
	"fmt"
	"math"

	"github.com/tsawler/folio/geom"
)

// Grid describes an N-up arrangement shape.
type Grid struct {
	Cols int
	Rows int
}

// PerSheet returns the number of cells on one sheet.
func (g Grid) PerSheet() int {
	return g.Cols * g.Rows
}

// Validate checks that the grid has at least one column and one row.
func (g Grid) Validate() error {
	if g.Cols < 1 || g.Rows < 1 {
		return fmt.Errorf("grid must have at least 1x1 cells, got %dx%d: %w",
			g.Cols, g.Rows, ErrInvalidParameters)
	}
	return nil
}

// String returns the grid as "COLSxROWS".
func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Cols, g.Rows)
}

// NUp computes destination cells for arranging source pages on output
// sheets in a grid.
//
// Each sheet is divided into Grid.Cols x Grid.Rows cells of
// Sheet.Width/Cols x Sheet.Height/Rows. Spacing is subtracted from every
// cell's content size uniformly, so it also shrinks the outermost cells
// rather than appearing only between cells; the cell pitch is
// cellSize+Spacing. Margin offsets every cell's position on both axes.
// Zero spacing and margin yield a tight, gapless grid.
type NUp struct {
	Grid    Grid
	Sheet   geom.Size
	Spacing float64
	Margin  float64
}

// Validate checks the layout parameters, returning an error wrapping
// ErrInvalidParameters or ErrInvalidGeometry for degenerate input.
func (n NUp) Validate() error {
	if err := n.Grid.Validate(); err != nil {
		return err
	}
	if !n.Sheet.IsPositive() || !isFinite(n.Sheet.Width) || !isFinite(n.Sheet.Height) {
		return fmt.Errorf("sheet size %gx%g must be positive and finite: %w",
			n.Sheet.Width, n.Sheet.Height, ErrInvalidGeometry)
	}
	if !isFinite(n.Spacing) || !isFinite(n.Margin) {
		return fmt.Errorf("spacing and margin must be finite: %w", ErrInvalidGeometry)
	}
	return nil
}

// CellSize returns the content size of one cell, with spacing subtracted.
func (n NUp) CellSize() geom.Size {
	return geom.Size{
		Width:  n.Sheet.Width/float64(n.Grid.Cols) - n.Spacing,
		Height: n.Sheet.Height/float64(n.Grid.Rows) - n.Spacing,
	}
}

// Cells returns one destination rectangle per source page, in source-page
// order, in a top-origin coordinate space: page 0 occupies the top-left
// cell at y = Margin, and cells fill left-to-right, then top-to-bottom,
// wrapping back to the first cell every Grid.PerSheet() pages. Grouping
// consecutive runs of Grid.PerSheet() cells onto output sheets is the
// caller's job; see SheetCount.
//
// For bottom-left-origin output coordinates use BottomOriginCells.
func (n NUp) Cells(pageCount int) ([]geom.Rect, error) {
	return n.cells(pageCount, false)
}

// BottomOriginCells returns the same cells as Cells, converted to a
// bottom-left-origin sheet coordinate system: row 0 keeps the visually
// topmost position, which is the highest y on the sheet.
func (n NUp) BottomOriginCells(pageCount int) ([]geom.Rect, error) {
	return n.cells(pageCount, true)
}

func (n NUp) cells(pageCount int, bottomOrigin bool) ([]geom.Rect, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if pageCount < 0 {
		return nil, fmt.Errorf("page count %d must not be negative: %w",
			pageCount, ErrInvalidParameters)
	}

	cellW := n.Sheet.Width / float64(n.Grid.Cols)
	cellH := n.Sheet.Height / float64(n.Grid.Rows)

	cells := make([]geom.Rect, pageCount)
	for i := 0; i < pageCount; i++ {
		col := i % n.Grid.Cols
		row := (i / n.Grid.Cols) % n.Grid.Rows

		x := n.Margin + float64(col)*(cellW+n.Spacing)
		var y float64
		if bottomOrigin {
			y = n.Sheet.Height - n.Margin - float64(row+1)*cellH - float64(row)*n.Spacing
		} else {
			y = n.Margin + float64(row)*(cellH+n.Spacing)
		}

		cells[i] = geom.Rect{
			X:      x,
			Y:      y,
			Width:  cellW - n.Spacing,
			Height: cellH - n.Spacing,
		}
	}

	return cells, nil
}

// SheetCount returns the number of output sheets needed for pageCount
// source pages.
func (n NUp) SheetCount(pageCount int) int {
	per := n.Grid.PerSheet()
	if per < 1 || pageCount < 1 {
		return 0
	}
	return (pageCount + per - 1) / per
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

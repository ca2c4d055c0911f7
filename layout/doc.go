// Package layout computes page placement for imposition: N-up grid layouts
// that arrange several source pages on one output sheet, and poster layouts
// that split one oversized page across several output tiles.
//
// The policies here are pure: they map layout parameters to ordered
// sequences of [geom.Rect] destination cells and perform no I/O. Applying
// the cells to an actual document is the job of the document backend.
//
// # N-up
//
// [NUp] divides a sheet into a cols x rows grid and assigns source pages to
// cells left-to-right, top-to-bottom, wrapping to a conceptual next sheet
// every cols*rows pages:
//
//	n := layout.NUp{Grid: layout.Grid{Cols: 2, Rows: 2}, Sheet: layout.A4}
//	cells, err := n.Cells(pageCount)
//
// [NUp.Cells] returns cells in a top-origin coordinate space (row 0 at
// y = margin). [NUp.BottomOriginCells] performs the conversion for
// bottom-left-origin output such as PDF, keeping row 0 visually topmost.
// The conversion is deliberately a separate step so the grid math stays
// coordinate-system-agnostic.
//
// # Poster
//
// [Poster] covers a page with a grid of tiles of a fixed size, optionally
// overlapping by a constant amount along shared edges to support trimming
// and reassembly of the printed tiles:
//
//	p := layout.Poster{Page: pageSize, Tile: layout.A4, Overlap: 18}
//	tiles, err := p.Tiles()
//
// # Validation
//
// Degenerate parameters (grids without at least one row and column, tiles
// that do not exceed the overlap, non-positive sheet or page sizes) fail
// fast with an error wrapping [ErrInvalidParameters] before any cells are
// produced.
package layout

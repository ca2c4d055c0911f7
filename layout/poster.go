package layout

import (
	"fmt"
	"math"

	"github.com/tsawler/folio/geom"
)

// Poster decomposes one oversized page into a grid of tiles sized for a
// smaller output medium.
//
// Tiles advance by Tile-Overlap along each axis, so adjacent tiles overlap
// by exactly Overlap units along their shared edge; an overlap of zero
// yields a perfect partition. Tiles in the last column and row are clamped
// to the remaining page area and may be narrower or shorter than Tile.
type Poster struct {
	Page    geom.Size
	Tile    geom.Size
	Overlap float64
}

// Validate checks the tiling parameters. The tile must be strictly larger
// than the overlap on both axes; otherwise the tile count would be infinite
// or negative.
func (p Poster) Validate() error {
	if !p.Page.IsPositive() || !isFinite(p.Page.Width) || !isFinite(p.Page.Height) {
		return fmt.Errorf("page size %gx%g must be positive and finite: %w",
			p.Page.Width, p.Page.Height, ErrInvalidGeometry)
	}
	if p.Overlap < 0 || !isFinite(p.Overlap) {
		return fmt.Errorf("overlap %g must be non-negative and finite: %w",
			p.Overlap, ErrInvalidParameters)
	}
	if p.Tile.Width <= p.Overlap || p.Tile.Height <= p.Overlap {
		return fmt.Errorf("tile size %gx%g must exceed overlap %g: %w",
			p.Tile.Width, p.Tile.Height, p.Overlap, ErrInvalidParameters)
	}
	return nil
}

// TileGrid returns the number of tile columns and rows needed to cover the
// page.
func (p Poster) TileGrid() (Grid, error) {
	if err := p.Validate(); err != nil {
		return Grid{}, err
	}
	return Grid{
		Cols: int(math.Ceil(p.Page.Width / (p.Tile.Width - p.Overlap))),
		Rows: int(math.Ceil(p.Page.Height / (p.Tile.Height - p.Overlap))),
	}, nil
}

// Tiles returns the tile rectangles covering the page, in row-major order
// (row 0 all columns, then row 1, and so on), measured from the page
// origin. No padding is introduced: the last column and row are clamped to
// the page edge.
func (p Poster) Tiles() ([]geom.Rect, error) {
	grid, err := p.TileGrid()
	if err != nil {
		return nil, err
	}

	stepX := p.Tile.Width - p.Overlap
	stepY := p.Tile.Height - p.Overlap

	tiles := make([]geom.Rect, 0, grid.PerSheet())
	for row := 0; row < grid.Rows; row++ {
		y := float64(row) * stepY
		for col := 0; col < grid.Cols; col++ {
			x := float64(col) * stepX
			tiles = append(tiles, geom.Rect{
				X:      x,
				Y:      y,
				Width:  math.Min(p.Tile.Width, p.Page.Width-x),
				Height: math.Min(p.Tile.Height, p.Page.Height-y),
			})
		}
	}

	return tiles, nil
}

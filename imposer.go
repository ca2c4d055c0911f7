package folio

import (
	"context"
	"fmt"

	"github.com/tsawler/folio/document"
	"github.com/tsawler/folio/geom"
	"github.com/tsawler/folio/impose"
	"github.com/tsawler/folio/layout"
)

// Imposer provides a fluent interface for arranging the pages of a PDF on
// output sheets. Each configuration method returns a new Imposer instance,
// making it safe for concurrent use and allowing method chaining.
type Imposer struct {
	// Source
	filename string

	// Document engine
	backend document.Backend

	// Configuration
	options imposeOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Imposer with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (im *Imposer) clone() *Imposer {
	return &Imposer{
		filename: im.filename,
		backend:  im.backend,
		options:  im.options.clone(),
		err:      im.err,
	}
}

// ============================================================================
// Configuration Methods (return new Imposer instance)
// ============================================================================

// Grid sets the N-up arrangement to cols x rows cells per sheet.
//
// Example:
//
//	err := folio.Open("doc.pdf").Grid(3, 2).NUp(ctx, "out.pdf")
func (im *Imposer) Grid(cols, rows int) *Imposer {
	newImp := im.clone()
	newImp.options.grid = layout.Grid{Cols: cols, Rows: rows}
	return newImp
}

// Preset sets the N-up arrangement from a named preset such as "2up",
// "4up", or "9up".
func (im *Imposer) Preset(name string) *Imposer {
	newImp := im.clone()
	grid, ok := newImp.options.presets.Lookup(name)
	if !ok {
		newImp.setErr(fmt.Errorf("unknown preset %q: %w", name, layout.ErrInvalidParameters))
		return newImp
	}
	newImp.options.grid = grid
	return newImp
}

// Sheet sets the output sheet size in points.
func (im *Imposer) Sheet(width, height float64) *Imposer {
	newImp := im.clone()
	newImp.options.sheet = geom.Size{Width: width, Height: height}
	return newImp
}

// Paper sets the output sheet size from a named paper size such as "a4" or
// "letter".
func (im *Imposer) Paper(name string) *Imposer {
	newImp := im.clone()
	size, ok := newImp.options.papers.Lookup(name)
	if !ok {
		newImp.setErr(fmt.Errorf("unknown paper size %q: %w", name, layout.ErrInvalidParameters))
		return newImp
	}
	newImp.options.sheet = size
	return newImp
}

// Spacing sets the gap subtracted from each cell, in points.
func (im *Imposer) Spacing(points float64) *Imposer {
	newImp := im.clone()
	newImp.options.spacing = points
	return newImp
}

// Margin sets the offset applied to every cell position, in points.
func (im *Imposer) Margin(points float64) *Imposer {
	newImp := im.clone()
	newImp.options.margin = points
	return newImp
}

// Fit sets how pages scale into their cells.
func (im *Imposer) Fit(mode geom.FitMode) *Imposer {
	newImp := im.clone()
	newImp.options.fit = mode
	return newImp
}

// Tile sets the tile size for poster output, in points.
func (im *Imposer) Tile(width, height float64) *Imposer {
	newImp := im.clone()
	newImp.options.tile = geom.Size{Width: width, Height: height}
	return newImp
}

// Overlap sets the glue overlap between adjacent poster tiles, in points.
func (im *Imposer) Overlap(points float64) *Imposer {
	newImp := im.clone()
	newImp.options.overlap = points
	return newImp
}

// Presets replaces the preset table consulted by Preset. This is how
// configuration files register custom presets.
func (im *Imposer) Presets(table layout.PresetTable) *Imposer {
	newImp := im.clone()
	if table != nil {
		newImp.options.presets = table
	}
	return newImp
}

// Papers replaces the paper table consulted by Paper.
func (im *Imposer) Papers(table layout.PaperTable) *Imposer {
	newImp := im.clone()
	if table != nil {
		newImp.options.papers = table
	}
	return newImp
}

// setErr records the first configuration error; later errors are dropped.
func (im *Imposer) setErr(err error) {
	if im.err == nil {
		im.err = err
	}
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Plan computes the N-up placement plan without writing any output.
func (im *Imposer) Plan(ctx context.Context) ([]impose.Sheet, error) {
	if im.err != nil {
		return nil, im.err
	}

	sizes, err := im.pageSizes(ctx)
	if err != nil {
		return nil, err
	}
	return impose.NUpSheets(sizes, im.options.nup(), im.options.fit)
}

// NUp computes the N-up plan and writes the imposed document to out.
//
// Example:
//
//	err := folio.Open("slides.pdf").Grid(2, 2).Paper("a3").NUp(ctx, "out.pdf")
func (im *Imposer) NUp(ctx context.Context, out string) error {
	sheets, err := im.Plan(ctx)
	if err != nil {
		return err
	}
	return im.backend.Impose(ctx, im.filename, sheets, out)
}

// PosterPlan computes the poster tiling plan for the first page without
// writing any output.
func (im *Imposer) PosterPlan(ctx context.Context) ([]impose.Sheet, error) {
	if im.err != nil {
		return nil, im.err
	}

	sizes, err := im.pageSizes(ctx)
	if err != nil {
		return nil, err
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%s has no pages: %w", im.filename, layout.ErrInvalidParameters)
	}
	return impose.PosterSheets(sizes[0], im.options.poster(sizes[0]))
}

// Poster tiles the first page of the document across multiple sheets and
// writes them to out. Adjacent tiles repeat Overlap points of content for
// gluing.
func (im *Imposer) Poster(ctx context.Context, out string) error {
	sheets, err := im.PosterPlan(ctx)
	if err != nil {
		return err
	}
	return im.backend.Impose(ctx, im.filename, sheets, out)
}

// PageSizes reads the displayed size of every page, with rotation applied.
func (im *Imposer) PageSizes(ctx context.Context) ([]geom.Size, error) {
	if im.err != nil {
		return nil, im.err
	}
	return im.pageSizes(ctx)
}

func (im *Imposer) pageSizes(ctx context.Context) ([]geom.Size, error) {
	if im.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}

	geos, err := im.backend.Geometry(ctx, im.filename)
	if err != nil {
		return nil, fmt.Errorf("reading page geometry: %w", err)
	}

	sizes := make([]geom.Size, len(geos))
	for i, g := range geos {
		sizes[i] = g.RotatedSize()
	}
	return sizes, nil
}

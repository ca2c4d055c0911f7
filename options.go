package folio

import (
	"github.com/tsawler/folio/geom"
	"github.com/tsawler/folio/layout"
)

// imposeOptions holds configuration for an imposition run.
type imposeOptions struct {
	// N-up arrangement
	grid    layout.Grid
	sheet   geom.Size
	spacing float64
	margin  float64
	fit     geom.FitMode

	// Poster tiling
	tile    geom.Size
	overlap float64

	// Name tables consulted by Preset and Paper
	presets layout.PresetTable
	papers  layout.PaperTable
}

// defaultOptions returns the default imposition options: 2-up on A4
// landscape-equivalent sheets with no spacing or margin, proportional fit.
func defaultOptions() imposeOptions {
	return imposeOptions{
		grid:    layout.Grid{Cols: 2, Rows: 1},
		sheet:   layout.A4,
		fit:     geom.FitModeFit,
		presets: layout.DefaultPresets(),
		papers:  layout.DefaultPapers(),
	}
}

// clone creates a deep copy of imposeOptions.
func (o imposeOptions) clone() imposeOptions {
	newOpts := o

	newOpts.presets = make(layout.PresetTable, len(o.presets))
	for k, v := range o.presets {
		newOpts.presets[k] = v
	}
	newOpts.papers = make(layout.PaperTable, len(o.papers))
	for k, v := range o.papers {
		newOpts.papers[k] = v
	}

	return newOpts
}

// nup assembles the N-up layout described by the options.
func (o imposeOptions) nup() layout.NUp {
	return layout.NUp{
		Grid:    o.grid,
		Sheet:   o.sheet,
		Spacing: o.spacing,
		Margin:  o.margin,
	}
}

// poster assembles the poster tiling described by the options for a source
// page of the given size.
func (o imposeOptions) poster(page geom.Size) layout.Poster {
	return layout.Poster{
		Page:    page,
		Tile:    o.tile,
		Overlap: o.overlap,
	}
}

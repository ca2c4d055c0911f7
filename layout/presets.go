package layout

import "github.com/tsawler/folio/geom"

// Standard paper sizes in points (1/72 inch).
var (
	A3      = geom.Size{Width: 842, Height: 1191}
	A4      = geom.Size{Width: 595, Height: 842}
	A5      = geom.Size{Width: 420, Height: 595}
	Letter  = geom.Size{Width: 612, Height: 792}
	Legal   = geom.Size{Width: 612, Height: 1008}
	Tabloid = geom.Size{Width: 792, Height: 1224}
)

// PresetTable maps an N-up preset name to its grid shape. Tables are plain
// values built by constructor functions and passed into callers by
// reference; the layout policies hold no table state of their own.
type PresetTable map[string]Grid

// DefaultPresets returns the built-in N-up presets.
func DefaultPresets() PresetTable {
	return PresetTable{
		"2up":  {Cols: 2, Rows: 1},
		"4up":  {Cols: 2, Rows: 2},
		"6up":  {Cols: 3, Rows: 2},
		"9up":  {Cols: 3, Rows: 3},
		"16up": {Cols: 4, Rows: 4},
	}
}

// Lookup returns the grid for a preset name.
func (t PresetTable) Lookup(name string) (Grid, bool) {
	g, ok := t[name]
	return g, ok
}

// PaperTable maps a paper size name to its dimensions in points.
type PaperTable map[string]geom.Size

// DefaultPapers returns the built-in paper sizes.
func DefaultPapers() PaperTable {
	return PaperTable{
		"a3":      A3,
		"a4":      A4,
		"a5":      A5,
		"letter":  Letter,
		"legal":   Legal,
		"tabloid": Tabloid,
	}
}

// Lookup returns the size for a paper name.
func (t PaperTable) Lookup(name string) (geom.Size, bool) {
	s, ok := t[name]
	return s, ok
}

package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/folio/geom"
)

// ParseGrid parses a grid spec of the form "COLSxROWS", such as "2x2".
// The inverse of Grid.String.
func ParseGrid(s string) (Grid, error) {
	cols, rows, err := splitDims(s)
	if err != nil {
		return Grid{}, fmt.Errorf("parsing grid %q: %w", s, ErrInvalidParameters)
	}

	g := Grid{Cols: int(cols), Rows: int(rows)}
	if float64(g.Cols) != cols || float64(g.Rows) != rows {
		return Grid{}, fmt.Errorf("grid %q must use whole numbers: %w", s, ErrInvalidParameters)
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// ParseSize parses a size spec of the form "WIDTHxHEIGHT" in points, such
// as "595x842".
func ParseSize(s string) (geom.Size, error) {
	w, h, err := splitDims(s)
	if err != nil {
		return geom.Size{}, fmt.Errorf("parsing size %q: %w", s, ErrInvalidGeometry)
	}

	size := geom.Size{Width: w, Height: h}
	if !size.IsPositive() {
		return geom.Size{}, fmt.Errorf("size %q must be positive: %w", s, ErrInvalidGeometry)
	}
	return size, nil
}

func splitDims(s string) (float64, float64, error) {
	a, b, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("missing %q separator", "x")
	}
	first, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, err
	}
	second, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

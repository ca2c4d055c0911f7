package geom

import (
	"fmt"
	"math"
)

// FitMode selects how content is scaled to a container.
type FitMode int

const (
	// FitModeFit scales content to be fully contained within the container
	// (letterboxing).
	FitModeFit FitMode = iota
	// FitModeFill scales content to fully cover the container (overflow is
	// cropped by the caller).
	FitModeFill
	// FitModeStretch currently behaves like FitModeFit. True stretching
	// would need independent horizontal and vertical factors; the uniform
	// fallback keeps the result aspect-preserving.
	FitModeStretch
)

// String returns the mode's name.
func (m FitMode) String() string {
	switch m {
	case FitModeFit:
		return "fit"
	case FitModeFill:
		return "fill"
	case FitModeStretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// ParseFitMode converts a mode name ("fit", "fill", "stretch") to a FitMode.
func ParseFitMode(s string) (FitMode, error) {
	switch s {
	case "fit":
		return FitModeFit, nil
	case "fill":
		return FitModeFill, nil
	case "stretch":
		return FitModeStretch, nil
	default:
		return FitModeFit, fmt.Errorf("unknown fit mode %q", s)
	}
}

// FitResult holds the uniform scale factor and the offset that centers the
// scaled content within the container on both axes.
type FitResult struct {
	Scale  float64
	Offset Point
}

// FitScale computes the uniform scale that maps content into container
// according to mode, and the offset centering the scaled content.
//
// Fit takes the smaller of the horizontal and vertical ratios, fill the
// larger. Stretch falls back to fit; see FitModeStretch.
//
// All inputs are assumed positive and finite. A zero-sized content or
// container yields an infinite or zero scale per ordinary floating-point
// division; callers must guard degenerate sizes before calling.
func FitScale(content, container Size, mode FitMode) FitResult {
	sx := container.Width / content.Width
	sy := container.Height / content.Height

	var scale float64
	switch mode {
	case FitModeFill:
		scale = math.Max(sx, sy)
	default:
		scale = math.Min(sx, sy)
	}

	return FitResult{
		Scale: scale,
		Offset: Point{
			X: (container.Width - content.Width*scale) / 2,
			Y: (container.Height - content.Height*scale) / 2,
		},
	}
}

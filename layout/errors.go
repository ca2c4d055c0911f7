package layout

import "errors"

var (
	// ErrInvalidParameters reports layout parameters that cannot produce a
	// valid arrangement, such as a grid without rows or a tile size that
	// does not exceed the overlap.
	ErrInvalidParameters = errors.New("invalid layout parameters")

	// ErrInvalidGeometry reports input geometry with non-positive or
	// non-finite dimensions.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

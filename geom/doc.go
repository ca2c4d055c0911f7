// Package geom provides the 2D geometry primitives used by the layout
// engine: points, axis-aligned rectangles, affine transformation matrices,
// and fit/fill scale computation.
//
// All types are immutable values and all functions are pure: they perform no
// I/O, hold no state, and may be called concurrently without coordination.
// Coordinates follow the PDF convention of a bottom-left origin measured in
// points (1/72 inch), though nothing in this package depends on the unit.
//
// # Rectangles
//
// [Rect] is an axis-aligned rectangle anchored at its lower-left corner.
// Boundary comparisons are inclusive: a point on an edge is contained, and
// two rectangles that merely touch are considered intersecting (their
// intersection then has zero width or height). Rectangles passed into this
// package must have non-negative dimensions; behavior for negative sizes is
// undefined.
//
// # Matrices
//
// [Matrix] is a 2x3 affine transformation in the PDF column order
// [a b c d e f], mapping (x, y) to (a*x+c*y+e, b*x+d*y+f).
// [Matrix.Multiply] composes left-to-right: m.Multiply(n) applies m first,
// then n. Composition is not commutative.
//
// # Fitting
//
// [FitScale] computes the uniform scale and centering offset that places
// content of one size inside a container of another, for fit (contain) and
// fill (cover) modes.
package geom

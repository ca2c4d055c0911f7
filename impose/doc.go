// Package impose turns layout cells into executable placement plans.
//
// The layout package answers "where does each cell sit"; this package
// answers "which source page goes on which sheet, at what scale and
// position". It groups N-up cells into sheets, fits each source page into
// its cell with [geom.FitScale], converts cell coordinates to the
// bottom-left-origin convention of PDF output, and emits one [Sheet] per
// output page. For posters it emits one sheet per tile with the source page
// shifted so the tile region lands at the sheet origin.
//
// Plans are pure values; executing them against a document is the document
// backend's job. Each [Placement] carries a ready-composed transformation
// matrix (scale first, then translate) for backends that consume matrices
// directly.
package impose

// Package preview renders a schematic image of an imposition plan: the
// sheet outline, each destination cell, the scaled page footprint within
// it, and the source page number.
//
// Previews draw layout geometry only, never document content, so they are
// cheap enough for interactive configuration surfaces. Rendering happens at
// a supersampled resolution and is downscaled with a Catmull-Rom kernel for
// clean edges.
package preview

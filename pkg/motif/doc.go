// Package motif finds a small pixel template inside an assembled image.
//
// A [Motif] is a set of dark cells relative to its top-left corner. Every
// other cell of its bounding box matches anything. [Parse] reads one from
// text where '#' marks a required dark cell and ' ' or '.' a free cell;
// [SeaMonster] is the built-in template.
//
// # Search
//
// [Search] tries the image in each of the eight orientations, the four
// rotations of the unmirrored image first, then the four rotations of the
// mirrored image. It transforms the image in place and stops at the first
// orientation with at least one occurrence, leaving the image in that
// orientation. When no orientation matches, the image ends where it started
// and [ErrNotFound] is returned.
//
// Occurrences may overlap. Covered cells are counted once, so the
// [Match.Roughness] of an image is its dark cell count minus the number of
// distinct cells covered by any occurrence.
package motif

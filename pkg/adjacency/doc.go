// Package adjacency indexes tiles by the border patterns they can present.
//
// # Index
//
// [Build] inserts every tile under all eight patterns it can show on any
// side in any orientation: each raw border and its mirror. Two tiles can
// share a seam exactly when they appear together in some bucket, so the
// bucket for a pattern holds every candidate neighbour for a side showing
// that pattern.
//
//	idx, err := adjacency.Build(tiles)
//	ids := idx.Candidates(p)
//
// The index is read-only after construction and never shared across puzzle
// instances.
//
// # Classification
//
// A tile's neighbour count is the number of distinct other tiles sharing any
// of its borders. In a uniquely tileable square grid corners have two,
// edge tiles three and interior tiles four. [Index.Classify] rejects any
// other count and [Index.Corners] additionally checks the census of a
// √N×√N grid, so a malformed or ambiguous tile set fails before the solver
// places a single tile.
package adjacency

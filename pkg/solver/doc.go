// Package solver places oriented tiles into a square grid.
//
// # Algorithm
//
// [Solve] is deterministic and never backtracks. It assumes the tile set has
// exactly one tiling up to a global rotation or mirror of the whole picture,
// which the adjacency census has already checked:
//
//  1. The lowest-id corner becomes the top-left anchor and is rotated until
//     its right and bottom borders are the ones shared with other tiles.
//  2. Each row is filled left to right. The next tile is the only other tile
//     that can present the mirror of the previous tile's right border, and it
//     is oriented so that its left border shows exactly that pattern.
//  3. A new row starts below the previous row's first tile, oriented by its
//     top border. If its right border is then unshared, the row start has
//     the wrong handedness and is mirrored.
//  4. After the last row nothing may fit below the last row start.
//
// Any missing, ambiguous or reused neighbour aborts the solve. The finished
// grid is checked seam by seam with [Grid.Validate] before it is returned.
//
// # Rebuilding
//
// A solved grid is fully described by its tile ids and orientations.
// [Rebuild] replays those onto freshly parsed tiles, which is how cached
// solutions are restored without solving again.
package solver

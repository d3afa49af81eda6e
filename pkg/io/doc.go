// Package io reads tile sets and motifs and reads and writes solution
// documents.
//
// # Tile Files
//
// A tile file is a sequence of blocks separated by blank lines. Each block
// is a "Tile <id>:" header followed by a square of '#' and '.' rows:
//
//	Tile 2311:
//	..##.#..#.
//	##..#.....
//	...
//
// Use [ImportTiles] to read a file, or [ReadTiles] for any io.Reader.
// Both reject input larger than the given limit before parsing.
//
// # Solution Documents
//
// A [Solution] records everything needed to restore a solved puzzle without
// solving again: the grid of tile ids, each tile's orientation and the motif
// match.
//
//	{
//	  "id": "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed",
//	  "tiles_hash": "9f86d0...",
//	  "size": 3,
//	  "grid": [[1171, 2473, 3079], ...],
//	  "orientations": [[{"rotations": 1, "flipped": false}, ...], ...],
//	  "corner_product": 20899048083289,
//	  "match": {"motif": "sea monster", "orientation": {...}, "positions": [...], "roughness": 273}
//	}
//
// [Solution.Rebuild] replays the recorded orientations onto freshly parsed
// tiles and validates every seam.
package io

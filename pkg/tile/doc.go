// Package tile models a square puzzle tile: four encoded borders plus the
// interior pixels that end up in the stitched image.
//
// # Sides
//
// Borders are stored clockwise as [Top], [Right], [Bottom], [Left], each read
// in clockwise direction: the top left to right, the right top to bottom, the
// bottom right to left and the left bottom to top. With this convention two
// neighbouring tiles fit when one side equals the mirror of the other.
//
// # Transforms
//
// [Tile.Rotate] turns the tile 90° clockwise and [Tile.Flip] mirrors it
// horizontally. Both update the borders, the interior and the recorded
// [Tile.Orientation] together, so a tile is always consistent and any
// orientation can be replayed on a freshly parsed tile with [Tile.Apply].
//
// # Text Format
//
//	Tile 2311:
//	..##.#..#.
//	##..#.....
//	...
//
// [ParseAll] reads blank-line separated blocks and checks that every tile has
// the same width; that width fixes the [edge.Codec] for the whole instance.
package tile

// Package raster provides the binary pixel matrix shared by tiles, the
// stitched image and motif templates.
//
// # Overview
//
// A [Block] is a rectangular, row-major matrix of [Pixel] values. Pixels are
// either [Dark] (written as '#') or [Light] (written as '.'). Blocks are the
// interior of a tile, the assembled image, and the canvas searched for motifs.
//
// # Orientation Group
//
// The eight symmetries of a square (four clockwise rotations, each with or
// without a horizontal mirror) are modelled by [Orientation]. An orientation
// reads as "mirror first if Flipped, then rotate clockwise Rotations times".
// [Block.Rotate] and [Block.FlipX] transform a block in place, and
// [Orientation.AfterRotate] / [Orientation.AfterFlip] track the resulting
// group element so that any sequence of transforms can be replayed later
// with [Block.Apply].
//
//	b, _ := raster.ParseBlock("#.\n..")
//	b.Rotate()
//	fmt.Println(b) // .#
//	               // ..
//
// # Concurrency
//
// Blocks are not safe for concurrent mutation. Clone a block before handing
// it to another goroutine.
package raster

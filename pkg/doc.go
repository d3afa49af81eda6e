// Package pkg provides the core libraries for tilestitch.
//
// # Overview
//
// Tilestitch reassembles a square image from scrambled square tiles whose
// borders match their neighbours, strips the borders and searches the stitched
// picture for a motif such as the sea monster. The pkg directory is organized
// into three areas:
//
//  1. Domain logic: [raster], [edge], [tile], [adjacency], [solver],
//     [assemble], [motif]
//  2. Outputs: [render], [render/nodelink], [io]
//  3. Infrastructure: [pipeline], [cache], [errors], [observability],
//     [buildinfo]
//
// # Architecture
//
// The data flow through tilestitch:
//
//	Tile text ("Tile 2311:" + '#'/'.' rows)
//	         ↓
//	    [tile] package (parse, border patterns, rotate/flip)
//	         ↓
//	    [adjacency] package (edge index, corner/edge/interior classes)
//	         ↓
//	    [solver] package (place and orient every tile)
//	         ↓
//	    [assemble] package (strip borders, stitch one image)
//	         ↓
//	    [motif] package (search all orientations, roughness)
//	         ↓
//	    txt/PNG/JSON/DOT/SVG/PDF output
//
// # Quick Start
//
//	tiles, _ := tile.ParseAll(input)
//	idx, _ := adjacency.Build(tiles)
//	g, _ := solver.Solve(idx)
//	img, _ := assemble.Assemble(g)
//	match, err := motif.Search(img, motif.SeaMonster)
//	if err == nil {
//	    fmt.Println(match.Roughness)
//	}
//
// [pipeline.Runner] runs the same stages with caching and is shared by the
// CLI and the HTTP server.
//
// # Main Packages
//
// [raster] - Pixels, rectangular blocks and the eight orientations of the
// dihedral group. Blocks rotate clockwise and flip horizontally in place.
//
// [edge] - Width-checked codec between border pixel runs and integer
// patterns, plus pattern mirroring.
//
// [tile] - A tile's id, four clockwise border patterns and interior, kept
// consistent under rotation and flipping.
//
// [adjacency] - Multimap from edge pattern (and its mirror) to tiles; finds
// corners and the corner id product without solving.
//
// [solver] - Places tiles row by row from an anchored corner and verifies
// every seam.
//
// [motif] - Motif templates, occurrence search and water roughness.
//
// [render] - Text, styled terminal and PNG sinks; [render/nodelink] draws
// the adjacency graph with Graphviz.
//
// [cache] - File, Redis and null caches for solutions and artifacts.
//
// [raster]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/raster
// [edge]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/edge
// [tile]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/tile
// [adjacency]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/adjacency
// [solver]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/solver
// [assemble]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/assemble
// [motif]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/motif
// [render]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/tilestitch/pkg/buildinfo
package pkg

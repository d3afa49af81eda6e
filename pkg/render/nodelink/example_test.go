package nodelink_test

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/tilestitch/internal/fixture"
	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/render/nodelink"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

func ExampleToDOT() {
	tiles, _ := tile.ParseAll(fixture.Tiles)

	// Keep the bottom-right 2×2 block of the puzzle.
	tiles = slices.DeleteFunc(tiles, func(t *tile.Tile) bool {
		return !slices.Contains([]int{1427, 1951, 2311, 2729}, t.ID)
	})
	idx, _ := adjacency.Build(tiles)

	for _, line := range strings.Split(nodelink.ToDOT(idx, nodelink.Options{}), "\n") {
		if strings.Contains(line, "--") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// "1427" -- "2311";
	// "1427" -- "2729";
	// "1951" -- "2311";
	// "1951" -- "2729";
}

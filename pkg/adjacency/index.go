package adjacency

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/tilestitch/pkg/edge"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

var (
	// ErrDuplicateTile is returned by [Build] when two tiles share an id.
	ErrDuplicateTile = errors.New("duplicate tile id")

	// ErrUnknownTile is returned for lookups of ids that were never indexed.
	ErrUnknownTile = errors.New("unknown tile id")

	// ErrNeighborCount is returned by [Index.Classify] for a tile whose
	// neighbour count is not 2, 3 or 4.
	ErrNeighborCount = errors.New("tile has impossible neighbour count")

	// ErrCensus is returned by [Index.Corners] when the tile classes do not
	// fit a square grid.
	ErrCensus = errors.New("tile classes do not form a square grid")
)

// Class is a tile's position class in the finished grid.
type Class int

const (
	Corner Class = iota
	EdgeTile
	Interior
)

func (c Class) String() string {
	switch c {
	case Corner:
		return "corner"
	case EdgeTile:
		return "edge"
	case Interior:
		return "interior"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// Index maps border patterns to the ids of tiles that can present them.
type Index struct {
	buckets map[edge.Pattern]map[int]struct{}
	tiles   map[int]*tile.Tile
}

// Build indexes tiles under all of their possible sides.
func Build(tiles []*tile.Tile) (*Index, error) {
	idx := &Index{
		buckets: make(map[edge.Pattern]map[int]struct{}),
		tiles:   make(map[int]*tile.Tile, len(tiles)),
	}
	for _, t := range tiles {
		if _, ok := idx.tiles[t.ID]; ok {
			return nil, fmt.Errorf("tile %d: %w", t.ID, ErrDuplicateTile)
		}
		idx.tiles[t.ID] = t
		for _, p := range t.PossibleSides() {
			b := idx.buckets[p]
			if b == nil {
				b = make(map[int]struct{})
				idx.buckets[p] = b
			}
			b[t.ID] = struct{}{}
		}
	}
	return idx, nil
}

// Candidates returns the sorted ids of tiles that can present p.
func (idx *Index) Candidates(p edge.Pattern) []int {
	return slices.Sorted(maps.Keys(idx.buckets[p]))
}

// Count returns how many tiles can present p.
func (idx *Index) Count(p edge.Pattern) int { return len(idx.buckets[p]) }

// Others returns the sorted ids of tiles other than id that can present p.
func (idx *Index) Others(p edge.Pattern, id int) []int {
	out := make([]int, 0, len(idx.buckets[p]))
	for other := range idx.buckets[p] {
		if other != id {
			out = append(out, other)
		}
	}
	slices.Sort(out)
	return out
}

// Tile returns the indexed tile with the given id, as parsed.
func (idx *Index) Tile(id int) (*tile.Tile, bool) {
	t, ok := idx.tiles[id]
	return t, ok
}

// Len returns the number of indexed tiles.
func (idx *Index) Len() int { return len(idx.tiles) }

// IDs returns all indexed tile ids in ascending order.
func (idx *Index) IDs() []int { return slices.Sorted(maps.Keys(idx.tiles)) }

// NeighborsOf returns the sorted ids of tiles sharing any border of id.
// Buckets hold both a pattern and its mirror, so looking up the raw sides
// covers every orientation of the neighbour.
func (idx *Index) NeighborsOf(id int) ([]int, error) {
	t, ok := idx.tiles[id]
	if !ok {
		return nil, fmt.Errorf("tile %d: %w", id, ErrUnknownTile)
	}
	set := make(map[int]struct{})
	for _, s := range t.Sides {
		for other := range idx.buckets[s] {
			if other != id {
				set[other] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(set)), nil
}

// Classify returns the grid class implied by id's neighbour count.
func (idx *Index) Classify(id int) (Class, error) {
	ns, err := idx.NeighborsOf(id)
	if err != nil {
		return 0, err
	}
	switch len(ns) {
	case 2:
		return Corner, nil
	case 3:
		return EdgeTile, nil
	case 4:
		return Interior, nil
	}
	return 0, fmt.Errorf("tile %d: %d neighbours %v: %w", id, len(ns), ns, ErrNeighborCount)
}

// Corners classifies every tile and returns the corner ids in ascending
// order. The census must match a √N×√N grid with side at least 2: four
// corners, 4(n-2) edge tiles and (n-2)² interior tiles.
func (idx *Index) Corners() ([]int, error) {
	n, ok := GridSide(idx.Len())
	if !ok {
		return nil, fmt.Errorf("%w: %d tiles is not a square of at least 2×2", ErrCensus, idx.Len())
	}

	var corners []int
	var counts [3]int
	for _, id := range idx.IDs() {
		c, err := idx.Classify(id)
		if err != nil {
			return nil, err
		}
		counts[c]++
		if c == Corner {
			corners = append(corners, id)
		}
	}

	want := [3]int{4, 4 * (n - 2), (n - 2) * (n - 2)}
	if counts != want {
		return nil, fmt.Errorf("%w: got %d corner, %d edge, %d interior; want %d, %d, %d",
			ErrCensus, counts[Corner], counts[EdgeTile], counts[Interior],
			want[Corner], want[EdgeTile], want[Interior])
	}
	return corners, nil
}

// CornerProduct multiplies the ids of the four corner tiles.
func (idx *Index) CornerProduct() (uint64, error) {
	corners, err := idx.Corners()
	if err != nil {
		return 0, err
	}
	product := uint64(1)
	for _, id := range corners {
		product *= uint64(id)
	}
	return product, nil
}

// GridSide returns n such that n*n == count, if n is at least 2.
func GridSide(count int) (int, bool) {
	n := 0
	for (n+1)*(n+1) <= count {
		n++
	}
	return n, n >= 2 && n*n == count
}

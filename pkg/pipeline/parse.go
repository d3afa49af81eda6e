package pipeline

import (
	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// Parse reads tile blocks from input and indexes their borders.
func Parse(input []byte) ([]*tile.Tile, *adjacency.Index, error) {
	tiles, err := tile.ParseAll(string(input))
	if err != nil {
		return nil, nil, classify(err, "parse tiles")
	}
	idx, err := adjacency.Build(tiles)
	if err != nil {
		return nil, nil, classify(err, "index tiles")
	}
	return tiles, idx, nil
}

// CornerReport is the corner census of a tile set.
type CornerReport struct {
	Corners  []int  `json:"corners"`
	Product  uint64 `json:"product"`
	GridSize int    `json:"grid_size"`
}

// Corners finds the four corner tiles of input without solving the grid.
func Corners(input []byte) (*CornerReport, error) {
	_, idx, err := Parse(input)
	if err != nil {
		return nil, err
	}
	corners, err := idx.Corners()
	if err != nil {
		return nil, classify(err, "classify tiles")
	}
	product, err := idx.CornerProduct()
	if err != nil {
		return nil, classify(err, "classify tiles")
	}
	n, _ := adjacency.GridSide(idx.Len())
	return &CornerReport{Corners: corners, Product: product, GridSize: n}, nil
}

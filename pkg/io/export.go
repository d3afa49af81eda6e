package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/tilestitch/pkg/motif"
	"github.com/matzehuels/tilestitch/pkg/raster"
	"github.com/matzehuels/tilestitch/pkg/solver"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// Solution is the serialized form of a solved puzzle.
type Solution struct {
	ID            string                 `json:"id"`
	TilesHash     string                 `json:"tiles_hash"`
	Size          int                    `json:"size"`
	Grid          [][]int                `json:"grid"`
	Orientations  [][]raster.Orientation `json:"orientations"`
	CornerProduct uint64                 `json:"corner_product"`
	Match         *motif.Match           `json:"match,omitempty"`
}

// NewSolution records g and its motif match. m may be nil.
func NewSolution(id, tilesHash string, g *solver.Grid, cornerProduct uint64, m *motif.Match) *Solution {
	return &Solution{
		ID:            id,
		TilesHash:     tilesHash,
		Size:          g.Size,
		Grid:          g.IDs(),
		Orientations:  g.Orientations(),
		CornerProduct: cornerProduct,
		Match:         m,
	}
}

// Rebuild restores the solved grid from freshly parsed tiles.
func (s *Solution) Rebuild(tiles []*tile.Tile) (*solver.Grid, error) {
	return solver.Rebuild(tiles, s.Grid, s.Orientations)
}

// WriteSolution encodes s as indented JSON.
func WriteSolution(s *Solution, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalSolution returns the JSON encoding of s.
func MarshalSolution(s *Solution) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ExportSolution writes s to a JSON file at path.
func ExportSolution(s *Solution, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSolution(s, f)
}

package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/assemble"
	pkgio "github.com/matzehuels/tilestitch/pkg/io"
	"github.com/matzehuels/tilestitch/pkg/motif"
	"github.com/matzehuels/tilestitch/pkg/raster"
	"github.com/matzehuels/tilestitch/pkg/solver"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

// Solved is a solved puzzle together with everything the render stage
// needs.
type Solved struct {
	// ID identifies the solution in JSON output and logs.
	ID string
	// TilesHash is the content hash of the tile input, if known.
	TilesHash string

	Tiles         []*tile.Tile
	Index         *adjacency.Index
	Grid          *solver.Grid
	CornerProduct uint64

	// Image is the stitched picture, oriented so that Match applies. When
	// Match is nil it is in the orientation produced by the solver.
	Image *raster.Block
	Match *motif.Match
}

// Covered returns the motif cells of Image, or nil without a match.
func (s *Solved) Covered() []motif.Point {
	if s.Match == nil {
		return nil
	}
	return s.Match.Covered
}

// Matches returns the number of motif occurrences.
func (s *Solved) Matches() int {
	if s.Match == nil {
		return 0
	}
	return len(s.Match.Positions)
}

// Roughness returns the match roughness, or the dark cell count of the
// image without a match.
func (s *Solved) Roughness() int {
	if s.Match == nil {
		return s.Image.Count(raster.Dark)
	}
	return s.Match.Roughness
}

// Document returns the serializable form of s.
func (s *Solved) Document() *pkgio.Solution {
	return pkgio.NewSolution(s.ID, s.TilesHash, s.Grid, s.CornerProduct, s.Match)
}

// Solve places the indexed tiles, stitches the image and searches it for m.
// A picture without the motif is an error.
func Solve(tiles []*tile.Tile, idx *adjacency.Index, m *motif.Motif) (*Solved, error) {
	g, err := solver.Solve(idx)
	if err != nil {
		return nil, classify(err, "solve grid")
	}
	img, err := assemble.Assemble(g)
	if err != nil {
		return nil, classify(err, "assemble image")
	}
	match, err := motif.Search(img, m)
	if err != nil {
		return nil, classify(err, "search %s", m.Name)
	}
	return &Solved{
		ID:            uuid.NewString(),
		Tiles:         tiles,
		Index:         idx,
		Grid:          g,
		CornerProduct: g.CornerProduct(),
		Image:         img,
		Match:         match,
	}, nil
}

// FromSolution restores a solved puzzle from a solution document and the
// tiles it was computed from. A recorded match is re-applied and checked
// against m.
func FromSolution(tiles []*tile.Tile, idx *adjacency.Index, doc *pkgio.Solution, m *motif.Motif) (*Solved, error) {
	g, err := doc.Rebuild(tiles)
	if err != nil {
		return nil, classify(err, "rebuild solution %s", doc.ID)
	}
	img, err := assemble.Assemble(g)
	if err != nil {
		return nil, classify(err, "assemble image")
	}

	s := &Solved{
		ID:            doc.ID,
		TilesHash:     doc.TilesHash,
		Tiles:         tiles,
		Index:         idx,
		Grid:          g,
		CornerProduct: doc.CornerProduct,
		Image:         img,
	}
	if doc.Match == nil {
		return s, nil
	}

	img.Apply(doc.Match.Orientation)
	for _, p := range doc.Match.Positions {
		if !m.MatchesAt(img, p.Row, p.Col) {
			err := fmt.Errorf("%w: %s not at %d,%d in %s", solver.ErrInvalidSolution, m.Name, p.Row, p.Col, doc.Match.Orientation)
			return nil, classify(err, "rebuild solution %s", doc.ID)
		}
	}
	covered := m.Cover(doc.Match.Positions)
	s.Match = &motif.Match{
		Motif:       m.Name,
		Orientation: doc.Match.Orientation,
		Positions:   doc.Match.Positions,
		Covered:     covered,
		Roughness:   motif.Roughness(img, covered),
	}
	return s, nil
}

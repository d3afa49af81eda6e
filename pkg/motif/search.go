package motif

import "github.com/matzehuels/tilestitch/pkg/raster"

// Match is the outcome of a successful [Search].
type Match struct {
	Motif       string             `json:"motif"`
	Orientation raster.Orientation `json:"orientation"`
	Positions   []Point            `json:"positions"`
	Covered     []Point            `json:"-"`
	Roughness   int                `json:"roughness"`
}

// Search looks for m in every orientation of img, transforming img in place.
// On success img is left in the matching orientation.
func Search(img *raster.Block, m *Motif) (*Match, error) {
	o := raster.Identity
	for flip := 0; flip < 2; flip++ {
		for rot := 0; rot < 4; rot++ {
			if positions := m.Find(img); len(positions) > 0 {
				covered := m.Cover(positions)
				return &Match{
					Motif:       m.Name,
					Orientation: o,
					Positions:   positions,
					Covered:     covered,
					Roughness:   Roughness(img, covered),
				}, nil
			}
			img.Rotate()
			o = o.AfterRotate()
		}
		img.FlipX()
		o = o.AfterFlip()
	}
	return nil, ErrNotFound
}

// Roughness counts the dark cells of img not in covered.
func Roughness(img *raster.Block, covered []Point) int {
	n := img.Count(raster.Dark)
	for _, p := range covered {
		if img.At(p.Row, p.Col) == raster.Dark {
			n--
		}
	}
	return n
}

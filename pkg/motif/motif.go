package motif

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/tilestitch/pkg/raster"
)

var (
	// ErrEmptyMotif is returned by [Parse] for text without dark cells.
	ErrEmptyMotif = errors.New("motif has no dark cells")

	// ErrInvalidMotif is returned by [Parse] for characters other than
	// '#', '.' and ' '.
	ErrInvalidMotif = errors.New("invalid motif character")

	// ErrNotFound is returned by [Search] when no orientation contains the
	// motif.
	ErrNotFound = errors.New("motif not found in any orientation")
)

const seaMonster = "" +
	"                  # \n" +
	"#    ##    ##    ###\n" +
	" #  #  #  #  #  #   "

// SeaMonster is the default motif.
var SeaMonster = MustParse("sea monster", seaMonster)

// Point is a cell position in an image or motif.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Motif is a template of dark cells inside a Width×Height bounding box.
type Motif struct {
	Name   string
	Width  int
	Height int
	Cells  []Point
}

// Parse reads a motif from text. Lines shorter than the longest are padded
// with free cells. Leading and trailing newlines are ignored; leading spaces
// are significant.
func Parse(name, text string) (*Motif, error) {
	m := &Motif{Name: name}
	lines := strings.Split(strings.Trim(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), "\n")
	for r, line := range lines {
		for c, ch := range []rune(line) {
			switch ch {
			case '#':
				m.Cells = append(m.Cells, Point{Row: r, Col: c})
			case ' ', '.':
			default:
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidMotif, ch, r+1, c+1)
			}
			m.Width = max(m.Width, c+1)
		}
	}
	if len(m.Cells) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyMotif)
	}
	m.Height = len(lines)
	return m, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(name, text string) *Motif {
	m, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	return m
}

// String renders the motif with '#' for dark and ' ' for free cells.
func (m *Motif) String() string {
	grid := make([][]rune, m.Height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", m.Width))
	}
	for _, p := range m.Cells {
		grid[p.Row][p.Col] = '#'
	}
	lines := make([]string, m.Height)
	for r, row := range grid {
		lines[r] = string(row)
	}
	return strings.Join(lines, "\n")
}

// MatchesAt reports whether the motif's top-left corner fits at (r, c).
func (m *Motif) MatchesAt(img *raster.Block, r, c int) bool {
	if r < 0 || c < 0 || r+m.Height > img.Height() || c+m.Width > img.Width() {
		return false
	}
	for _, p := range m.Cells {
		if img.At(r+p.Row, c+p.Col) != raster.Dark {
			return false
		}
	}
	return true
}

// Find returns every top-left position where the motif occurs in img as it
// is currently oriented, in row-major order.
func (m *Motif) Find(img *raster.Block) []Point {
	var out []Point
	for r := 0; r+m.Height <= img.Height(); r++ {
		for c := 0; c+m.Width <= img.Width(); c++ {
			if m.MatchesAt(img, r, c) {
				out = append(out, Point{Row: r, Col: c})
			}
		}
	}
	return out
}

// Cover returns the distinct cells covered by occurrences at positions,
// sorted row-major.
func (m *Motif) Cover(positions []Point) []Point {
	seen := make(map[Point]struct{}, len(positions)*len(m.Cells))
	var out []Point
	for _, pos := range positions {
		for _, p := range m.Cells {
			q := Point{Row: pos.Row + p.Row, Col: pos.Col + p.Col}
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			out = append(out, q)
		}
	}
	slices.SortFunc(out, comparePoints)
	return out
}

func comparePoints(a, b Point) int {
	if a.Row != b.Row {
		return cmp.Compare(a.Row, b.Row)
	}
	return cmp.Compare(a.Col, b.Col)
}
